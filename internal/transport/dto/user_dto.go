package dto

import (
	"time"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

// RegisterRequest defines the structure for creating a new account.
type RegisterRequest struct {
	Name     string      `json:"name" validate:"required,min=2,max=100"`
	Email    string      `json:"email" validate:"required,email,max=254"`
	Password string      `json:"password" validate:"required,min=8,max=72"` // bcrypt ignores bytes past 72
	Role     models.Role `json:"role" validate:"required,oneof=CLIENT FREELANCER"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	SessionID string `json:"-"`
}

// GetUserByIDRequest defines the structure for getting a user by id.
type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// UpdateProfileRequest defines the editable profile fields. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	UserID        uuid.UUID `json:"-"`
	Name          *string   `json:"name" validate:"omitempty,min=2,max=100"`
	Bio           *string   `json:"bio" validate:"omitempty,max=2000"`
	Skills        []string  `json:"skills" validate:"omitempty,max=50,dive,min=1,max=50"`
	HourlyRate    *float64  `json:"hourly_rate" validate:"omitempty,gte=0"`
	PortfolioLink *string   `json:"portfolio_link" validate:"omitempty,url"`
}

// UserResponse defines the user data returned to the client.
// Email is omitted on public profiles.
type UserResponse struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email,omitempty"`
	Role          models.Role `json:"role"`
	Bio           string      `json:"bio"`
	Skills        []string    `json:"skills"`
	HourlyRate    float64     `json:"hourly_rate"`
	PortfolioLink string      `json:"portfolio_link"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// AuthResponse is returned by login, register and refresh.
type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}
