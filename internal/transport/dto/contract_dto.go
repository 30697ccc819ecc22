package dto

import (
	"time"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

// CreateContractRequest accepts a proposal; it is the POST /contracts body.
type CreateContractRequest struct {
	ProposalID uuid.UUID `json:"proposal_id" validate:"required"`
	UserID     uuid.UUID `json:"-"`
}

type GetContractRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

type ListContractsRequest struct {
	Status *models.ContractStatus `form:"status" validate:"omitempty,oneof=PENDING ACTIVE COMPLETED CANCELLED"`
	Limit  int                    `form:"limit,default=10" validate:"omitempty,gte=0,lte=100"`
	Offset int                    `form:"offset,default=0" validate:"omitempty,gte=0"`
	UserID uuid.UUID              `json:"-"`
}

type UpdateContractStatusRequest struct {
	ID     uuid.UUID             `json:"-"`
	UserID uuid.UUID             `json:"-"`
	Status models.ContractStatus `json:"status" validate:"required,oneof=COMPLETED CANCELLED"`
}

type ContractResponse struct {
	ID           uuid.UUID             `json:"id"`
	JobID        uuid.UUID             `json:"job_id"`
	ProposalID   uuid.UUID             `json:"proposal_id"`
	ClientID     uuid.UUID             `json:"client_id"`
	FreelancerID uuid.UUID             `json:"freelancer_id"`
	Amount       float64               `json:"amount"`
	Status       models.ContractStatus `json:"status"`
	Progress     *ProgressResponse     `json:"progress,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// --- Milestones ---

type AddMilestoneRequest struct {
	ContractID  uuid.UUID `json:"-"` // From path
	UserID      uuid.UUID `json:"-"`
	Description string    `json:"description" validate:"required,min=3,max=1000"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
}

type UpdateMilestoneStatusRequest struct {
	ContractID  uuid.UUID              `json:"-"` // From path
	UserID      uuid.UUID              `json:"-"`
	MilestoneID uuid.UUID              `json:"milestone_id" validate:"required"`
	Status      models.MilestoneStatus `json:"status" validate:"required,oneof=PENDING COMPLETED"`
}

type GetProgressRequest struct {
	ContractID uuid.UUID `json:"-" validate:"required"`
	UserID     uuid.UUID `json:"-"`
}

type MilestoneResponse struct {
	ID          uuid.UUID              `json:"id"`
	ContractID  uuid.UUID              `json:"contract_id"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Status      models.MilestoneStatus `json:"status"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ProgressResponse is a contract's milestones with the derived completion percentage.
type ProgressResponse struct {
	ContractID uuid.UUID           `json:"contract_id"`
	Milestones []MilestoneResponse `json:"milestones"`
	Completed  int                 `json:"completed"`
	Total      int                 `json:"total"`
	Percentage float64             `json:"percentage"`
}
