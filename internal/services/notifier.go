package services

import (
	"context"
	"fmt"
	"time"

	"assuredgig/internal/events"
	"assuredgig/internal/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const notifyTimeout = 5 * time.Second

// Notifier turns domain events into stored, pushed notifications.
type Notifier struct {
	notifications NotificationService
	subscriptions map[string]interface{}
}

func NewNotifier(notifications NotificationService) *Notifier {
	return &Notifier{notifications: notifications}
}

// Subscribe registers the notifier's handlers on the bus.
func (n *Notifier) Subscribe(bus events.Subscriber) error {
	n.subscriptions = map[string]interface{}{
		events.TopicProposalSubmitted:  n.onProposalSubmitted,
		events.TopicProposalAccepted:   n.onProposalAccepted,
		events.TopicProposalRejected:   n.onProposalRejected,
		events.TopicMilestoneCompleted: n.onMilestoneCompleted,
		events.TopicPaymentCompleted:   n.onPaymentSettled,
		events.TopicPaymentFailed:      n.onPaymentSettled,
		events.TopicContractCompleted:  n.onContractCompleted,
		events.TopicMessageSent:        n.onMessageSent,
	}
	for topic, fn := range n.subscriptions {
		if err := bus.Subscribe(topic, fn); err != nil {
			return fmt.Errorf("subscribing notifier to %s: %w", topic, err)
		}
	}
	return nil
}

// Unsubscribe removes every handler registered by Subscribe.
func (n *Notifier) Unsubscribe(bus events.Subscriber) {
	for topic, fn := range n.subscriptions {
		if err := bus.Unsubscribe(topic, fn); err != nil {
			log.WithError(err).WithField("topic", topic).Warn("Notifier: unsubscribe failed")
		}
	}
	n.subscriptions = nil
}

func (n *Notifier) onProposalSubmitted(ev events.ProposalSubmitted) {
	ref := ev.ProposalID
	n.send(&models.Notification{
		UserID:      ev.ClientID,
		Type:        models.NotificationProposalReceived,
		Title:       "New proposal received",
		Body:        fmt.Sprintf("A freelancer bid %.2f on %q.", ev.BidAmount, ev.JobTitle),
		ReferenceID: &ref,
	})
}

func (n *Notifier) onProposalAccepted(ev events.ProposalDecided) {
	ref := ev.ProposalID
	if ev.ContractID != nil {
		ref = *ev.ContractID
	}
	n.send(&models.Notification{
		UserID:      ev.FreelancerID,
		Type:        models.NotificationProposalAccepted,
		Title:       "Proposal accepted",
		Body:        fmt.Sprintf("Your proposal for %q was accepted. A contract has been created.", ev.JobTitle),
		ReferenceID: &ref,
	})
}

func (n *Notifier) onProposalRejected(ev events.ProposalDecided) {
	body := fmt.Sprintf("Your proposal for %q was not accepted.", ev.JobTitle)
	if ev.Feedback != nil && *ev.Feedback != "" {
		body += " Feedback: " + *ev.Feedback
	}
	ref := ev.ProposalID
	n.send(&models.Notification{
		UserID:      ev.FreelancerID,
		Type:        models.NotificationProposalRejected,
		Title:       "Proposal rejected",
		Body:        body,
		ReferenceID: &ref,
	})
}

func (n *Notifier) onMilestoneCompleted(ev events.MilestoneCompleted) {
	recipient := counterpart(ev.ClientID, ev.FreelancerID, ev.CompletedBy)
	ref := ev.ContractID
	n.send(&models.Notification{
		UserID:      recipient,
		Type:        models.NotificationMilestoneCompleted,
		Title:       "Milestone completed",
		Body:        fmt.Sprintf("%q was marked complete. Contract progress is %.0f%%.", ev.Description, ev.Percentage),
		ReferenceID: &ref,
	})
}

func (n *Notifier) onPaymentSettled(ev events.PaymentSettled) {
	ref := ev.ContractID
	if !ev.Completed {
		n.send(&models.Notification{
			UserID:      ev.ClientID,
			Type:        models.NotificationPaymentFailed,
			Title:       "Payment failed",
			Body:        fmt.Sprintf("Your %s payment of %.2f %s failed.", ev.Provider, ev.Amount, ev.Currency),
			ReferenceID: &ref,
		})
		return
	}
	for _, userID := range []uuid.UUID{ev.ClientID, ev.FreelancerID} {
		body := fmt.Sprintf("A payment of %.2f %s was completed.", ev.Amount, ev.Currency)
		if ev.ContractActivated {
			body += " The contract is now active."
		}
		n.send(&models.Notification{
			UserID:      userID,
			Type:        models.NotificationPaymentCompleted,
			Title:       "Payment completed",
			Body:        body,
			ReferenceID: &ref,
		})
	}
}

func (n *Notifier) onContractCompleted(ev events.ContractCompleted) {
	ref := ev.ContractID
	n.send(&models.Notification{
		UserID:      ev.FreelancerID,
		Type:        models.NotificationContractCompleted,
		Title:       "Contract completed",
		Body:        "The client marked your contract as completed.",
		ReferenceID: &ref,
	})
}

func (n *Notifier) onMessageSent(ev events.MessageSent) {
	ref := ev.ContractID
	preview := ev.Body
	if r := []rune(preview); len(r) > 80 {
		preview = string(r[:80]) + "..."
	}
	n.send(&models.Notification{
		UserID:      ev.RecipientID,
		Type:        models.NotificationMessage,
		Title:       "New message",
		Body:        preview,
		ReferenceID: &ref,
	})
}

func (n *Notifier) send(notification *models.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if _, err := n.notifications.Notify(ctx, notification); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id": notification.UserID,
			"type":    notification.Type,
		}).Error("Notifier: failed to deliver notification")
	}
}

func counterpart(clientID, freelancerID, actor uuid.UUID) uuid.UUID {
	if actor == clientID {
		return freelancerID
	}
	return clientID
}
