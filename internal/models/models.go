package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// scanEnum decodes a text column into a string enum, rejecting unknown values.
func scanEnum[T ~string](dst *T, value interface{}, name string, valid ...T) error {
	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	default:
		return fmt.Errorf("failed to scan %s: value is not string or []byte", name)
	}
	for _, candidate := range valid {
		if T(strVal) == candidate {
			*dst = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid %s value: %s", name, strVal)
}

// --- Role Enum ---
type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleFreelancer Role = "FREELANCER"
	RoleAdmin      Role = "ADMIN"
)

func (r *Role) Scan(value interface{}) error {
	return scanEnum(r, value, "Role", RoleClient, RoleFreelancer, RoleAdmin)
}

func (r Role) Value() (driver.Value, error) { return string(r), nil }

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusOpen       JobStatus = "OPEN"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusClosed     JobStatus = "CLOSED"
)

func (s *JobStatus) Scan(value interface{}) error {
	return scanEnum(s, value, "JobStatus", JobStatusOpen, JobStatusInProgress, JobStatusClosed)
}

func (s JobStatus) Value() (driver.Value, error) { return string(s), nil }

// --- Proposal Status Enum ---
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "PENDING"
	ProposalStatusAccepted ProposalStatus = "ACCEPTED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
)

func (s *ProposalStatus) Scan(value interface{}) error {
	return scanEnum(s, value, "ProposalStatus", ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected)
}

func (s ProposalStatus) Value() (driver.Value, error) { return string(s), nil }

// --- Contract Status Enum ---
type ContractStatus string

const (
	ContractStatusPending   ContractStatus = "PENDING"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

func (s *ContractStatus) Scan(value interface{}) error {
	return scanEnum(s, value, "ContractStatus", ContractStatusPending, ContractStatusActive, ContractStatusCompleted, ContractStatusCancelled)
}

func (s ContractStatus) Value() (driver.Value, error) { return string(s), nil }

// IsTerminal reports whether no further work can happen on the contract.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusCompleted || s == ContractStatusCancelled
}

// --- Milestone Status Enum ---
type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "PENDING"
	MilestoneStatusCompleted MilestoneStatus = "COMPLETED"
)

func (s *MilestoneStatus) Scan(value interface{}) error {
	return scanEnum(s, value, "MilestoneStatus", MilestoneStatusPending, MilestoneStatusCompleted)
}

func (s MilestoneStatus) Value() (driver.Value, error) { return string(s), nil }

// --- Payment Status Enum ---
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

func (s *PaymentStatus) Scan(value interface{}) error {
	return scanEnum(s, value, "PaymentStatus", PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed)
}

func (s PaymentStatus) Value() (driver.Value, error) { return string(s), nil }

// --- Payment Provider Enum ---
type PaymentProvider string

const (
	ProviderRazorpay PaymentProvider = "razorpay"
	ProviderStripe   PaymentProvider = "stripe"
)

func (p *PaymentProvider) Scan(value interface{}) error {
	return scanEnum(p, value, "PaymentProvider", ProviderRazorpay, ProviderStripe)
}

func (p PaymentProvider) Value() (driver.Value, error) { return string(p), nil }

// --- Notification Type Enum ---
type NotificationType string

const (
	NotificationProposalReceived   NotificationType = "PROPOSAL_RECEIVED"
	NotificationProposalAccepted   NotificationType = "PROPOSAL_ACCEPTED"
	NotificationProposalRejected   NotificationType = "PROPOSAL_REJECTED"
	NotificationMilestoneCompleted NotificationType = "MILESTONE_COMPLETED"
	NotificationPaymentCompleted   NotificationType = "PAYMENT_COMPLETED"
	NotificationPaymentFailed      NotificationType = "PAYMENT_FAILED"
	NotificationContractCompleted  NotificationType = "CONTRACT_COMPLETED"
	NotificationMessage            NotificationType = "MESSAGE"
	NotificationSystem             NotificationType = "SYSTEM"
)

func (t *NotificationType) Scan(value interface{}) error {
	return scanEnum(t, value, "NotificationType",
		NotificationProposalReceived, NotificationProposalAccepted, NotificationProposalRejected,
		NotificationMilestoneCompleted, NotificationPaymentCompleted, NotificationPaymentFailed,
		NotificationContractCompleted, NotificationMessage, NotificationSystem)
}

func (t NotificationType) Value() (driver.Value, error) { return string(t), nil }

// User is an account holder; role decides which side of the marketplace they act on.
type User struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	Role          Role      `json:"role" db:"role"`
	Bio           string    `json:"bio" db:"bio"`
	Skills        []string  `json:"skills" db:"skills"`
	HourlyRate    float64   `json:"hourly_rate" db:"hourly_rate"`
	PortfolioLink string    `json:"portfolio_link" db:"portfolio_link"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Job is a client's posting that freelancers bid on.
type Job struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ClientID    uuid.UUID  `json:"client_id" db:"client_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Budget      float64    `json:"budget" db:"budget"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	Skills      []string   `json:"skills" db:"skills"`
	Status      JobStatus  `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Proposal is a freelancer's bid on a job.
type Proposal struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	JobID        uuid.UUID      `json:"job_id" db:"job_id"`
	FreelancerID uuid.UUID      `json:"freelancer_id" db:"freelancer_id"`
	CoverLetter  string         `json:"cover_letter" db:"cover_letter"`
	BidAmount    float64        `json:"bid_amount" db:"bid_amount"`
	Status       ProposalStatus `json:"status" db:"status"`
	Feedback     *string        `json:"feedback,omitempty" db:"feedback"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// Contract is created once per job, when its proposal is accepted.
type Contract struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	JobID        uuid.UUID      `json:"job_id" db:"job_id"`
	ProposalID   uuid.UUID      `json:"proposal_id" db:"proposal_id"`
	ClientID     uuid.UUID      `json:"client_id" db:"client_id"`
	FreelancerID uuid.UUID      `json:"freelancer_id" db:"freelancer_id"`
	Amount       float64        `json:"amount" db:"amount"`
	Status       ContractStatus `json:"status" db:"status"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// IsParticipant reports whether the user is the contract's client or freelancer.
func (c *Contract) IsParticipant(userID uuid.UUID) bool {
	return c.ClientID == userID || c.FreelancerID == userID
}

// Milestone is a unit of deliverable work under a contract.
type Milestone struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	ContractID  uuid.UUID       `json:"contract_id" db:"contract_id"`
	Description string          `json:"description" db:"description"`
	Amount      float64         `json:"amount" db:"amount"`
	Status      MilestoneStatus `json:"status" db:"status"`
	CompletedAt *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Payment records a gateway order opened against a contract.
type Payment struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	ContractID       uuid.UUID       `json:"contract_id" db:"contract_id"`
	PayerID          uuid.UUID       `json:"payer_id" db:"payer_id"`
	Amount           float64         `json:"amount" db:"amount"`
	Currency         string          `json:"currency" db:"currency"`
	Provider         PaymentProvider `json:"provider" db:"provider"`
	GatewayOrderID   string          `json:"gateway_order_id" db:"gateway_order_id"`
	GatewayPaymentID *string         `json:"gateway_payment_id,omitempty" db:"gateway_payment_id"`
	ClientSecret     *string         `json:"-" db:"client_secret"`
	Status           PaymentStatus   `json:"status" db:"status"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// Message is a chat line inside a contract.
type Message struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ContractID uuid.UUID `json:"contract_id" db:"contract_id"`
	SenderID   uuid.UUID `json:"sender_id" db:"sender_id"`
	Body       string    `json:"body" db:"body"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Notification struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	UserID      uuid.UUID        `json:"user_id" db:"user_id"`
	Type        NotificationType `json:"type" db:"type"`
	Title       string           `json:"title" db:"title"`
	Body        string           `json:"body" db:"body"`
	ReferenceID *uuid.UUID       `json:"reference_id,omitempty" db:"reference_id"`
	Read        bool             `json:"read" db:"is_read"`
	ReadAt      *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

type PortfolioProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
}

// Portfolio is a freelancer's public showcase; at most one per user.
type Portfolio struct {
	ID        uuid.UUID          `json:"id" db:"id"`
	UserID    uuid.UUID          `json:"user_id" db:"user_id"`
	Headline  string             `json:"headline" db:"headline"`
	About     string             `json:"about" db:"about"`
	Projects  []PortfolioProject `json:"projects" db:"projects"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" db:"updated_at"`
}

type ResumeExperience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type ResumeEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Resume is at most one per user; saving replaces it.
type Resume struct {
	ID         uuid.UUID          `json:"id" db:"id"`
	UserID     uuid.UUID          `json:"user_id" db:"user_id"`
	Summary    string             `json:"summary" db:"summary"`
	Experience []ResumeExperience `json:"experience" db:"experience"`
	Education  []ResumeEducation  `json:"education" db:"education"`
	Skills     []string           `json:"skills" db:"skills"`
	CreatedAt  time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" db:"updated_at"`
}

// Gig is a fixed-price service a freelancer offers directly.
type Gig struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FreelancerID uuid.UUID `json:"freelancer_id" db:"freelancer_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Price        float64   `json:"price" db:"price"`
	DeliveryDays int       `json:"delivery_days" db:"delivery_days"`
	Tags         []string  `json:"tags" db:"tags"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
