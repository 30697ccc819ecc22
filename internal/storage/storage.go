package storage

import (
	"context"
	"time"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

// Store groups the repositories and runs units of work across them.
type Store interface {
	Users() UserRepository
	Jobs() JobRepository
	Proposals() ProposalRepository
	Contracts() ContractRepository
	Milestones() MilestoneRepository
	Payments() PaymentRepository
	Messages() MessageRepository
	Notifications() NotificationRepository
	Portfolios() PortfolioRepository
	Resumes() ResumeRepository
	Gigs() GigRepository

	// InTx runs fn against a transaction-scoped Store. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	InTx(ctx context.Context, fn func(tx Store) error) error
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}

// JobFilter narrows job listings. Nil fields are ignored.
type JobFilter struct {
	Status    *models.JobStatus
	ClientID  *uuid.UUID
	Skill     string
	Query     string
	MinBudget *float64
	MaxBudget *float64
	Limit     int
	Offset    int
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	List(ctx context.Context, filter JobFilter) ([]models.Job, error)
	Update(ctx context.Context, job *models.Job) (*models.Job, error)
	// TransitionStatus moves the job from one status to another and returns
	// ErrStaleState if the job is not currently in `from`.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.JobStatus) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProposalFilter struct {
	JobID        *uuid.UUID
	FreelancerID *uuid.UUID
	Status       *models.ProposalStatus
	Limit        int
	Offset       int
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error)
	List(ctx context.Context, filter ProposalFilter) ([]models.Proposal, error)
	Update(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.ProposalStatus, feedback *string) (*models.Proposal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContractFilter struct {
	ParticipantID uuid.UUID
	Status        *models.ContractStatus
	Limit         int
	Offset        int
}

type ContractRepository interface {
	Create(ctx context.Context, contract *models.Contract) (*models.Contract, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*models.Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]models.Contract, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.ContractStatus) (*models.Contract, error)
}

type MilestoneRepository interface {
	Create(ctx context.Context, milestone *models.Milestone) (*models.Milestone, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Milestone, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]models.Milestone, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.MilestoneStatus, completedAt *time.Time) (*models.Milestone, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	GetByGatewayOrderID(ctx context.Context, provider models.PaymentProvider, orderID string) (*models.Payment, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]models.Payment, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.PaymentStatus, gatewayPaymentID *string) (*models.Payment, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	ListByContract(ctx context.Context, contractID uuid.UUID, limit, offset int) ([]models.Message, error)
}

type NotificationFilter struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int
	Offset     int
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	List(ctx context.Context, filter NotificationFilter) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type PortfolioRepository interface {
	Create(ctx context.Context, portfolio *models.Portfolio) (*models.Portfolio, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error)
	Update(ctx context.Context, portfolio *models.Portfolio) (*models.Portfolio, error)
}

type ResumeRepository interface {
	Upsert(ctx context.Context, resume *models.Resume) (*models.Resume, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Resume, error)
}

type GigFilter struct {
	FreelancerID    *uuid.UUID
	Tag             string
	Query           string
	IncludeInactive bool
	Limit           int
	Offset          int
}

type GigRepository interface {
	Create(ctx context.Context, gig *models.Gig) (*models.Gig, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Gig, error)
	List(ctx context.Context, filter GigFilter) ([]models.Gig, error)
	Update(ctx context.Context, gig *models.Gig) (*models.Gig, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
