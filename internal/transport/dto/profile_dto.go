package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Portfolio ---

type PortfolioProject struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	URL         string `json:"url" validate:"omitempty,url"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// SavePortfolioRequest is used for both create (POST) and full update (PUT).
type SavePortfolioRequest struct {
	UserID   uuid.UUID          `json:"-"`
	Headline string             `json:"headline" validate:"required,min=3,max=200"`
	About    string             `json:"about" validate:"omitempty,max=5000"`
	Projects []PortfolioProject `json:"projects" validate:"omitempty,max=50,dive"`
}

type PortfolioResponse struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Headline  string             `json:"headline"`
	About     string             `json:"about"`
	Projects  []PortfolioProject `json:"projects"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// --- Resume ---

type ResumeExperience struct {
	Company     string `json:"company" validate:"required,max=200"`
	Position    string `json:"position" validate:"required,max=200"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type ResumeEducation struct {
	Institution string `json:"institution" validate:"required,max=200"`
	Degree      string `json:"degree" validate:"required,max=200"`
	Year        string `json:"year" validate:"omitempty,len=4,numeric"`
}

type SaveResumeRequest struct {
	UserID     uuid.UUID          `json:"-"`
	Summary    string             `json:"summary" validate:"omitempty,max=5000"`
	Experience []ResumeExperience `json:"experience" validate:"omitempty,max=50,dive"`
	Education  []ResumeEducation  `json:"education" validate:"omitempty,max=20,dive"`
	Skills     []string           `json:"skills" validate:"omitempty,max=50,dive,min=1,max=50"`
}

type ResumeResponse struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Summary    string             `json:"summary"`
	Experience []ResumeExperience `json:"experience"`
	Education  []ResumeEducation  `json:"education"`
	Skills     []string           `json:"skills"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
