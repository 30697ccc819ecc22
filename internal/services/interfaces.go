package services

import (
	"context"
	"net/http"

	"assuredgig/internal/models"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
)

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID    uuid.UUID
	Role      models.Role
	SessionID string
}

// AuthResult is what login, register and refresh hand back.
type AuthResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	SessionID    string
}

// UserService defines the interface for account and profile business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*AuthResult, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	// Authenticate validates an access token and its backing session.
	Authenticate(ctx context.Context, token string) (*Principal, error)
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ProposalService covers submission and the acceptance / rejection workflow.
type ProposalService interface {
	SubmitProposal(ctx context.Context, req *dto.CreateProposalRequest) (*models.Proposal, error)
	GetProposalByID(ctx context.Context, req *dto.GetProposalRequest) (*models.Proposal, error)
	ListProposals(ctx context.Context, req *dto.ListProposalsRequest) ([]models.Proposal, error)
	EditProposal(ctx context.Context, req *dto.UpdateProposalRequest) (*models.Proposal, error)
	AcceptProposal(ctx context.Context, req *dto.AcceptProposalRequest) (*models.Proposal, *models.Contract, error)
	RejectProposal(ctx context.Context, req *dto.RejectProposalRequest) (*models.Proposal, error)
	WithdrawProposal(ctx context.Context, req *dto.WithdrawProposalRequest) error
}

// ContractService covers contract reads, lifecycle changes and milestone progress.
type ContractService interface {
	GetContract(ctx context.Context, req *dto.GetContractRequest) (*models.Contract, *models.Progress, error)
	ListContracts(ctx context.Context, req *dto.ListContractsRequest) ([]models.Contract, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateContractStatusRequest) (*models.Contract, error)
	AddMilestone(ctx context.Context, req *dto.AddMilestoneRequest) (*models.Milestone, *models.Progress, error)
	UpdateMilestoneStatus(ctx context.Context, req *dto.UpdateMilestoneStatusRequest) (*models.Progress, error)
	GetProgress(ctx context.Context, req *dto.GetProgressRequest) (*models.Progress, error)
}

// Checkout is a freshly opened payment plus what the browser needs to pay it.
type Checkout struct {
	Payment      *models.Payment
	KeyID        string
	ClientSecret string
	AmountMinor  int64
}

// WebhookOutcome values reported back to the gateway and to metrics.
const (
	OutcomeApplied   = "applied"
	OutcomeDuplicate = "duplicate"
	OutcomeIgnored   = "ignored"
	OutcomeRejected  = "rejected"
)

type ReconcileResult struct {
	Outcome           string
	Payment           *models.Payment
	ContractActivated bool
}

// PaymentService opens gateway orders and reconciles gateway webhooks.
type PaymentService interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*Checkout, error)
	ListPayments(ctx context.Context, req *dto.ListPaymentsRequest) ([]models.Payment, error)
	HandleWebhook(ctx context.Context, provider models.PaymentProvider, payload []byte, header http.Header) (*ReconcileResult, error)
}

// Pusher pushes events to connected websocket clients.
type Pusher interface {
	SendToUser(ctx context.Context, userID uuid.UUID, channel, eventType string, data interface{})
	SendToContract(ctx context.Context, contractID, clientID, freelancerID uuid.UUID, eventType string, data interface{})
}

type ChatService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error)
	ListMessages(ctx context.Context, req *dto.ListMessagesRequest) ([]models.Message, error)
	// Authorize returns the contract if the user is one of its participants.
	Authorize(ctx context.Context, contractID, userID uuid.UUID) (*models.Contract, error)
}

type NotificationService interface {
	List(ctx context.Context, req *dto.ListNotificationsRequest) ([]models.Notification, error)
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error)
	MarkRead(ctx context.Context, req *dto.MarkNotificationsReadRequest) (int64, error)
	// Notify stores a notification and pushes it to the user's open sockets.
	Notify(ctx context.Context, n *models.Notification) (*models.Notification, error)
}

type ProfileService interface {
	GetPortfolio(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error)
	CreatePortfolio(ctx context.Context, req *dto.SavePortfolioRequest) (*models.Portfolio, error)
	UpdatePortfolio(ctx context.Context, req *dto.SavePortfolioRequest) (*models.Portfolio, error)
	GetResume(ctx context.Context, userID uuid.UUID) (*models.Resume, error)
	SaveResume(ctx context.Context, req *dto.SaveResumeRequest) (*models.Resume, error)
}

type GigService interface {
	CreateGig(ctx context.Context, req *dto.CreateGigRequest) (*models.Gig, error)
	GetGig(ctx context.Context, req *dto.GetGigRequest) (*models.Gig, error)
	ListGigs(ctx context.Context, req *dto.ListGigsRequest) ([]models.Gig, error)
	UpdateGig(ctx context.Context, req *dto.UpdateGigRequest) (*models.Gig, error)
	DeleteGig(ctx context.Context, req *dto.DeleteGigRequest) error
}
