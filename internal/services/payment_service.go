package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"assuredgig/internal/events"
	"assuredgig/internal/logger"
	"assuredgig/internal/metrics"
	"assuredgig/internal/models"
	"assuredgig/internal/payments"
	"assuredgig/internal/storage"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type paymentService struct {
	store    storage.Store
	gateways *payments.Registry
	dedup    payments.Deduplicator
	events   events.Publisher
	metrics  *metrics.Metrics
	currency string
}

// NewPaymentService creates a new instance of PaymentService. dedup may be nil,
// in which case redelivered webhooks are only caught by the payment's terminal status.
func NewPaymentService(store storage.Store, gateways *payments.Registry, dedup payments.Deduplicator, publisher events.Publisher, m *metrics.Metrics, currency string) PaymentService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if currency == "" {
		currency = "INR"
	}
	return &paymentService{
		store:    store,
		gateways: gateways,
		dedup:    dedup,
		events:   publisher,
		metrics:  m,
		currency: currency,
	}
}

// CreatePayment opens an order with the selected gateway and records a PENDING payment.
// Nothing is persisted when the gateway call fails.
func (s *paymentService) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*Checkout, error) {
	// 1. Fetch the Contract and check the caller is its client
	contract, err := participantContract(ctx, s.store, req.ContractID, req.UserID)
	if err != nil {
		return nil, err
	}
	if contract.ClientID != req.UserID {
		log.Warnf("CreatePayment: Forbidden attempt by freelancer %s on contract %s", req.UserID, contract.ID)
		return nil, fmt.Errorf("%w: only the client can pay a contract", ErrForbidden)
	}
	if contract.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: contract is %s", ErrConflict, contract.Status)
	}

	// 2. Resolve the gateway
	gateway, err := s.gateways.Gateway(req.Provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// 3. Open the order with the gateway
	paymentID := uuid.New()
	order, err := gateway.CreateOrder(ctx, payments.OrderRequest{
		PaymentID:  paymentID,
		ContractID: contract.ID,
		Amount:     req.Amount,
		Currency:   s.currency,
	})
	if err != nil {
		log.WithError(err).Errorf("CreatePayment: Gateway %s failed for contract %s", req.Provider, contract.ID)
		return nil, fmt.Errorf("internal error creating %s order: %w", req.Provider, err)
	}

	// 4. Persist the PENDING payment
	payment := &models.Payment{
		ID:             paymentID,
		ContractID:     contract.ID,
		PayerID:        req.UserID,
		Amount:         req.Amount,
		Currency:       s.currency,
		Provider:       req.Provider,
		GatewayOrderID: order.ID,
		Status:         models.PaymentStatusPending,
	}
	if order.ClientSecret != "" {
		secret := order.ClientSecret
		payment.ClientSecret = &secret
	}
	created, err := s.store.Payments().Create(ctx, payment)
	if err != nil {
		log.WithError(err).Errorf("CreatePayment: Error persisting payment for order %s", order.ID)
		return nil, MapRepoError(err, "creating payment")
	}

	s.metrics.RecordPaymentCreated(string(req.Provider))
	log.WithFields(log.Fields{
		"payment_id":  created.ID,
		"contract_id": contract.ID,
		"provider":    req.Provider,
		"order_id":    order.ID,
	}).Info("Payment order created")

	return &Checkout{
		Payment:      created,
		KeyID:        order.PublicKey,
		ClientSecret: order.ClientSecret,
		AmountMinor:  order.AmountMinor,
	}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, req *dto.ListPaymentsRequest) ([]models.Payment, error) {
	contract, err := participantContract(ctx, s.store, req.ContractID, req.UserID)
	if err != nil {
		return nil, err
	}
	list, err := s.store.Payments().ListByContract(ctx, contract.ID)
	if err != nil {
		return nil, MapRepoError(err, "listing payments")
	}
	return list, nil
}

// HandleWebhook verifies a gateway callback and settles the matching payment.
// A payment that is already COMPLETED or FAILED is acknowledged without change, so
// redelivery is harmless. On the first completed payment a PENDING contract becomes ACTIVE.
func (s *paymentService) HandleWebhook(ctx context.Context, provider models.PaymentProvider, payload []byte, header http.Header) (*ReconcileResult, error) {
	entry := logger.WithComponent("webhooks").WithField("provider", provider)

	parser, err := s.gateways.Parser(provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// 1. Verify and decode. Nothing is touched unless the signature matches.
	event, err := parser.ParseWebhook(payload, header)
	if err != nil {
		s.metrics.RecordWebhook(string(provider), OutcomeRejected)
		switch {
		case errors.Is(err, payments.ErrInvalidSignature):
			entry.Warn("Webhook rejected: invalid signature")
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		case errors.Is(err, payments.ErrMalformedPayload):
			entry.WithError(err).Warn("Webhook rejected: malformed payload")
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		default:
			return nil, fmt.Errorf("internal error parsing %s webhook: %w", provider, err)
		}
	}
	entry = entry.WithFields(log.Fields{"event_id": event.EventID, "event_type": event.Type, "order_id": event.OrderID})

	if event.Status == "" {
		entry.Debug("Webhook event does not settle a payment")
		s.metrics.RecordWebhook(string(provider), OutcomeIgnored)
		return &ReconcileResult{Outcome: OutcomeIgnored}, nil
	}

	// 2. Claim the delivery so concurrent redeliveries are short-circuited
	claimed := false
	if s.dedup != nil && event.EventID != "" {
		ok, err := s.dedup.Claim(ctx, string(provider), event.EventID)
		if err != nil {
			entry.WithError(err).Warn("Webhook dedup unavailable, relying on payment status")
		} else if !ok {
			entry.Info("Webhook event already processed")
			s.metrics.RecordWebhook(string(provider), OutcomeDuplicate)
			return &ReconcileResult{Outcome: OutcomeDuplicate}, nil
		} else {
			claimed = true
		}
	}

	result, contract, err := s.settle(ctx, provider, event)
	if err != nil {
		if claimed {
			if relErr := s.dedup.Release(ctx, string(provider), event.EventID); relErr != nil {
				entry.WithError(relErr).Warn("Failed to release webhook claim")
			}
		}
		return nil, passOrMap(err, "reconciling payment")
	}

	s.metrics.RecordWebhook(string(provider), result.Outcome)
	if result.Outcome != OutcomeApplied {
		entry.WithField("payment_id", result.Payment.ID).Info("Webhook acknowledged without change")
		return result, nil
	}

	topic := events.TopicPaymentFailed
	if result.Payment.Status == models.PaymentStatusCompleted {
		topic = events.TopicPaymentCompleted
	}
	s.events.Publish(topic, events.PaymentSettled{
		PaymentID:         result.Payment.ID,
		ContractID:        contract.ID,
		ClientID:          contract.ClientID,
		FreelancerID:      contract.FreelancerID,
		Amount:            result.Payment.Amount,
		Currency:          result.Payment.Currency,
		Provider:          string(provider),
		Completed:         result.Payment.Status == models.PaymentStatusCompleted,
		ContractActivated: result.ContractActivated,
	})

	entry.WithFields(log.Fields{
		"payment_id":         result.Payment.ID,
		"status":             result.Payment.Status,
		"contract_activated": result.ContractActivated,
	}).Info("Payment reconciled")
	return result, nil
}

// settle applies a verified event inside one transaction.
func (s *paymentService) settle(ctx context.Context, provider models.PaymentProvider, event *payments.WebhookEvent) (*ReconcileResult, *models.Contract, error) {
	result := &ReconcileResult{}
	var contract *models.Contract

	err := s.store.InTx(ctx, func(tx storage.Store) error {
		// 1. Find the payment the order belongs to
		payment, err := tx.Payments().GetByGatewayOrderID(ctx, provider, event.OrderID)
		if err != nil {
			return MapRepoError(err, "fetching payment by order")
		}
		result.Payment = payment

		// 2. Terminal payments are never changed again
		if payment.Status != models.PaymentStatusPending {
			result.Outcome = OutcomeDuplicate
			return nil
		}

		var gatewayPaymentID *string
		if event.PaymentID != "" {
			id := event.PaymentID
			gatewayPaymentID = &id
		}

		// 3. Settle the payment, conditional on it still being PENDING
		updated, err := tx.Payments().TransitionStatus(ctx, payment.ID, models.PaymentStatusPending, event.Status, gatewayPaymentID)
		if errors.Is(err, storage.ErrStaleState) {
			result.Outcome = OutcomeDuplicate
			return nil
		}
		if err != nil {
			return MapRepoError(err, "settling payment")
		}
		result.Payment = updated
		result.Outcome = OutcomeApplied

		contract, err = tx.Contracts().GetByID(ctx, payment.ContractID)
		if err != nil {
			return MapRepoError(err, "fetching contract for payment")
		}

		// 4. The first completed payment activates a PENDING contract
		if updated.Status == models.PaymentStatusCompleted && contract.Status == models.ContractStatusPending {
			activated, err := tx.Contracts().TransitionStatus(ctx, contract.ID, models.ContractStatusPending, models.ContractStatusActive)
			switch {
			case err == nil:
				contract = activated
				result.ContractActivated = true
			case errors.Is(err, storage.ErrStaleState):
				// moved on concurrently; nothing to activate
			default:
				return MapRepoError(err, "activating contract")
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return result, contract, nil
}
