package dto

import (
	"time"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

type CreateProposalRequest struct {
	JobID        uuid.UUID `json:"job_id" validate:"required"`
	CoverLetter  string    `json:"cover_letter" validate:"required,min=20,max=5000"`
	BidAmount    float64   `json:"bid_amount" validate:"required,gt=0"`
	FreelancerID uuid.UUID `json:"-"` // Set from user context
}

type GetProposalRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context for auth check
}

// ListProposalsRequest lists the caller's own proposals, or a job's proposals
// when JobID is set and the caller owns the job.
type ListProposalsRequest struct {
	JobID  string                 `form:"job_id" validate:"omitempty,uuid"`
	Status *models.ProposalStatus `form:"status" validate:"omitempty,oneof=PENDING ACCEPTED REJECTED"`
	Limit  int                    `form:"limit,default=10" validate:"omitempty,gte=0,lte=100"`
	Offset int                    `form:"offset,default=0" validate:"omitempty,gte=0"`
	UserID uuid.UUID              `json:"-"`
}

// UpdateProposalRequest is the PATCH /proposals/{id} body. A client sends
// Status (+Feedback); a freelancer edits CoverLetter / BidAmount.
type UpdateProposalRequest struct {
	ID          uuid.UUID              `json:"-"`
	UserID      uuid.UUID              `json:"-"`
	Status      *models.ProposalStatus `json:"status,omitempty" validate:"omitempty,oneof=ACCEPTED REJECTED"`
	Feedback    *string                `json:"feedback,omitempty" validate:"omitempty,max=2000"`
	CoverLetter *string                `json:"cover_letter,omitempty" validate:"omitempty,min=20,max=5000"`
	BidAmount   *float64               `json:"bid_amount,omitempty" validate:"omitempty,gt=0"`
}

type AcceptProposalRequest struct {
	ProposalID uuid.UUID `json:"-" validate:"required"` // From path or body
	UserID     uuid.UUID `json:"-"`                     // Set from user context (must be the job's client)
}

type RejectProposalRequest struct {
	ProposalID uuid.UUID `json:"-" validate:"required"`
	UserID     uuid.UUID `json:"-"`
	Feedback   *string   `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}

type WithdrawProposalRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context (must be the author)
}

type ProposalResponse struct {
	ID           uuid.UUID             `json:"id"`
	JobID        uuid.UUID             `json:"job_id"`
	FreelancerID uuid.UUID             `json:"freelancer_id"`
	CoverLetter  string                `json:"cover_letter"`
	BidAmount    float64               `json:"bid_amount"`
	Status       models.ProposalStatus `json:"status"`
	Feedback     *string               `json:"feedback,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ProposalDecisionResponse is returned when a client accepts or rejects a proposal.
type ProposalDecisionResponse struct {
	Proposal ProposalResponse  `json:"proposal"`
	Contract *ContractResponse `json:"contract,omitempty"`
}
