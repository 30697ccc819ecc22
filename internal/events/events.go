package events

import (
	"time"

	"github.com/google/uuid"

	evbus "github.com/asaskevich/EventBus"
)

// Topics published by the services once their transaction has committed.
const (
	TopicProposalSubmitted  = "proposal.submitted"
	TopicProposalAccepted   = "proposal.accepted"
	TopicProposalRejected   = "proposal.rejected"
	TopicMilestoneCompleted = "milestone.completed"
	TopicPaymentCompleted   = "payment.completed"
	TopicPaymentFailed      = "payment.failed"
	TopicContractCompleted  = "contract.completed"
	TopicMessageSent        = "message.sent"
)

// Publisher is the part of the bus the services need. evbus.Bus satisfies it.
type Publisher interface {
	Publish(topic string, args ...interface{})
}

// Subscriber is the part of the bus event consumers need.
type Subscriber interface {
	Subscribe(topic string, fn interface{}) error
	Unsubscribe(topic string, handler interface{}) error
}

// Bus is the in-process event bus shared by publishers and subscribers.
type Bus interface {
	Publisher
	Subscriber
}

// NewBus creates an in-process bus. Handlers subscribed with Subscribe run
// synchronously on the publishing goroutine.
func NewBus() Bus {
	return evbus.New()
}

// Nop discards every event. Useful for tests that don't care about side effects.
type Nop struct{}

func (Nop) Publish(string, ...interface{}) {}

type ProposalSubmitted struct {
	ProposalID   uuid.UUID
	JobID        uuid.UUID
	JobTitle     string
	ClientID     uuid.UUID
	FreelancerID uuid.UUID
	BidAmount    float64
}

// ProposalDecided is published on both acceptance and rejection.
// ContractID is set only for acceptances.
type ProposalDecided struct {
	ProposalID   uuid.UUID
	JobID        uuid.UUID
	JobTitle     string
	ClientID     uuid.UUID
	FreelancerID uuid.UUID
	ContractID   *uuid.UUID
	Feedback     *string
}

type MilestoneCompleted struct {
	MilestoneID  uuid.UUID
	ContractID   uuid.UUID
	ClientID     uuid.UUID
	FreelancerID uuid.UUID
	CompletedBy  uuid.UUID
	Description  string
	Percentage   float64
}

// PaymentSettled is published for both completed and failed payments.
type PaymentSettled struct {
	PaymentID         uuid.UUID
	ContractID        uuid.UUID
	ClientID          uuid.UUID
	FreelancerID      uuid.UUID
	Amount            float64
	Currency          string
	Provider          string
	Completed         bool
	ContractActivated bool
}

type ContractCompleted struct {
	ContractID   uuid.UUID
	JobID        uuid.UUID
	ClientID     uuid.UUID
	FreelancerID uuid.UUID
}

type MessageSent struct {
	MessageID   uuid.UUID
	ContractID  uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Body        string
	CreatedAt   time.Time
}
