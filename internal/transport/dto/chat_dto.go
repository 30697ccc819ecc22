package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ContractID uuid.UUID `json:"-"`
	SenderID   uuid.UUID `json:"-"`
	Body       string    `json:"body" validate:"required,min=1,max=4000"`
}

type ListMessagesRequest struct {
	ContractID uuid.UUID `json:"-"`
	UserID     uuid.UUID `json:"-"`
	Limit      int       `form:"limit,default=50" validate:"omitempty,gte=0,lte=200"`
	Offset     int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	ContractID uuid.UUID `json:"contract_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
