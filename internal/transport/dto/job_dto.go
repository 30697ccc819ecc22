package dto

import (
	"time"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Description string     `json:"description" validate:"required,min=10,max=10000"`
	Budget      float64    `json:"budget" validate:"required,gt=0"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Skills      []string   `json:"skills" validate:"omitempty,max=30,dive,min=1,max=50"`
	ClientID    uuid.UUID  `json:"-"` // Set internally by handler from auth context
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListJobsRequest defines the filters accepted by GET /jobs.
type ListJobsRequest struct {
	Status    *models.JobStatus `form:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS CLOSED"`
	ClientID  string            `form:"client_id" validate:"omitempty,uuid"`
	Skill     string            `form:"skill" validate:"omitempty,max=50"`
	Query     string            `form:"q" validate:"omitempty,max=200"`
	MinBudget *float64          `form:"min_budget" validate:"omitempty,gte=0"`
	MaxBudget *float64          `form:"max_budget" validate:"omitempty,gte=0"`
	Limit     int               `form:"limit,default=10" validate:"omitempty,gte=0,lte=100"`
	Offset    int               `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateJobRequest defines the fields a client may change. Detail fields are
// only editable while the job is OPEN; Status only accepts CLOSED.
type UpdateJobRequest struct {
	ID          uuid.UUID         `json:"-"`
	UserID      uuid.UUID         `json:"-"`
	Title       *string           `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string           `json:"description,omitempty" validate:"omitempty,min=10,max=10000"`
	Budget      *float64          `json:"budget,omitempty" validate:"omitempty,gt=0"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	Skills      []string          `json:"skills,omitempty" validate:"omitempty,max=30,dive,min=1,max=50"`
	Status      *models.JobStatus `json:"status,omitempty" validate:"omitempty,oneof=CLOSED"`
}

// HasDetailChanges reports whether any field other than Status is set.
func (r *UpdateJobRequest) HasDetailChanges() bool {
	return r.Title != nil || r.Description != nil || r.Budget != nil || r.Deadline != nil || r.Skills != nil
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID          uuid.UUID        `json:"id"`
	ClientID    uuid.UUID        `json:"client_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Budget      float64          `json:"budget"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
	Skills      []string         `json:"skills"`
	Status      models.JobStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
