package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateGigRequest defines the structure for creating a new gig.
type CreateGigRequest struct {
	FreelancerID uuid.UUID `json:"-"`
	Title        string    `json:"title" validate:"required,min=3,max=200"`
	Description  string    `json:"description" validate:"required,min=10,max=5000"`
	Price        float64   `json:"price" validate:"required,gt=0"`
	DeliveryDays int       `json:"delivery_days" validate:"required,gt=0,lte=365"`
	Tags         []string  `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

// UpdateGigRequest defines the structure for updating an existing gig.
type UpdateGigRequest struct {
	ID           uuid.UUID `json:"-"`
	UserID       uuid.UUID `json:"-"`
	Title        *string   `json:"title" validate:"omitempty,min=3,max=200"`
	Description  *string   `json:"description" validate:"omitempty,min=10,max=5000"`
	Price        *float64  `json:"price" validate:"omitempty,gt=0"`
	DeliveryDays *int      `json:"delivery_days" validate:"omitempty,gt=0,lte=365"`
	Tags         []string  `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	Active       *bool     `json:"active"`
}

type GetGigRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

type DeleteGigRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// ListGigsRequest lists active gigs; a freelancer listing their own gigs also sees inactive ones.
type ListGigsRequest struct {
	FreelancerID string    `form:"freelancer_id" validate:"omitempty,uuid"`
	Tag          string    `form:"tag" validate:"omitempty,max=50"`
	Query        string    `form:"q" validate:"omitempty,max=200"`
	Limit        int       `form:"limit,default=10" validate:"omitempty,gte=0,lte=100"`
	Offset       int       `form:"offset,default=0" validate:"omitempty,gte=0"`
	UserID       uuid.UUID `json:"-"`
}

type GigResponse struct {
	ID           uuid.UUID `json:"id"`
	FreelancerID uuid.UUID `json:"freelancer_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DeliveryDays int       `json:"delivery_days"`
	Tags         []string  `json:"tags"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
