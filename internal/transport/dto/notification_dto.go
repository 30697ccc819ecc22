package dto

import (
	"time"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

type ListNotificationsRequest struct {
	UserID uuid.UUID `json:"-"`
	Unread bool      `form:"unread"`
	Limit  int       `form:"limit,default=20" validate:"omitempty,gte=0,lte=100"`
	Offset int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// CreateNotificationRequest is the admin broadcast body; only SYSTEM notifications can be created directly.
type CreateNotificationRequest struct {
	UserID uuid.UUID               `json:"user_id" validate:"required"`
	Type   models.NotificationType `json:"type" validate:"omitempty,oneof=SYSTEM"`
	Title  string                  `json:"title" validate:"required,min=1,max=200"`
	Body   string                  `json:"body" validate:"required,min=1,max=2000"`
}

// MarkNotificationsReadRequest marks the listed ids, or everything when All is set.
type MarkNotificationsReadRequest struct {
	UserID uuid.UUID   `json:"-"`
	IDs    []uuid.UUID `json:"ids" validate:"required_without=All,omitempty,max=500"`
	All    bool        `json:"all"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

type NotificationResponse struct {
	ID          uuid.UUID               `json:"id"`
	Type        models.NotificationType `json:"type"`
	Title       string                  `json:"title"`
	Body        string                  `json:"body"`
	ReferenceID *uuid.UUID              `json:"reference_id,omitempty"`
	Read        bool                    `json:"read"`
	ReadAt      *time.Time              `json:"read_at,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}
