package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"assuredgig/internal/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const HeaderStripeSignature = "Stripe-Signature"

// StripeGateway creates PaymentIntents and verifies Stripe webhook deliveries.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string, backends *stripe.Backends) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeGateway{api: api, webhookSecret: webhookSecret}
}

var (
	_ Gateway       = (*StripeGateway)(nil)
	_ WebhookParser = (*StripeGateway)(nil)
)

func (g *StripeGateway) Provider() models.PaymentProvider { return models.ProviderStripe }

func (g *StripeGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	amount := ToMinorUnits(req.Amount)
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.PaymentID.String())
	params.AddMetadata("contract_id", req.ContractID.String())
	params.AddMetadata("payment_id", req.PaymentID.String())

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}
	return &Order{ID: pi.ID, ClientSecret: pi.ClientSecret, AmountMinor: pi.Amount, Currency: string(pi.Currency)}, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, header http.Header) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, header.Get(HeaderStripeSignature), g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		if isSignatureError(err) {
			return nil, ErrInvalidSignature
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	out := &WebhookEvent{
		Provider: models.ProviderStripe,
		EventID:  event.ID,
		Type:     string(event.Type),
	}
	switch event.Type {
	case "payment_intent.succeeded":
		out.Status = models.PaymentStatusCompleted
	case "payment_intent.payment_failed":
		out.Status = models.PaymentStatusFailed
	default:
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	out.OrderID = pi.ID
	if pi.LatestCharge != nil {
		out.PaymentID = pi.LatestCharge.ID
	}
	return out, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrTooOld)
}
