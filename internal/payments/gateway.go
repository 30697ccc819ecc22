package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrProviderDisabled = errors.New("payment provider not configured")
)

// OrderRequest describes the order to open with a gateway.
type OrderRequest struct {
	PaymentID  uuid.UUID
	ContractID uuid.UUID
	Amount     float64
	Currency   string
}

// Order is the gateway's answer to CreateOrder.
type Order struct {
	ID           string
	ClientSecret string // Stripe only, confirms the PaymentIntent client side
	PublicKey    string // Razorpay key id handed to Checkout
	AmountMinor  int64
	Currency     string
}

// Gateway opens orders with an external payment provider.
//
//go:generate mockgen -destination=../mocks/mock_gateway.go -package=mocks assuredgig/internal/payments Gateway,WebhookParser
type Gateway interface {
	Provider() models.PaymentProvider
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}

// WebhookEvent is a verified gateway callback reduced to what reconciliation needs.
type WebhookEvent struct {
	Provider  models.PaymentProvider
	EventID   string
	Type      string
	OrderID   string
	PaymentID string
	// Status is empty when the event doesn't settle a payment.
	Status models.PaymentStatus
}

// WebhookParser verifies and decodes a provider's webhook delivery.
type WebhookParser interface {
	Provider() models.PaymentProvider
	ParseWebhook(payload []byte, header http.Header) (*WebhookEvent, error)
}

// MapGatewayStatus normalizes the status strings the gateways report.
func MapGatewayStatus(status string) (models.PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "captured", "succeeded", "paid", "completed":
		return models.PaymentStatusCompleted, true
	case "failed":
		return models.PaymentStatusFailed, true
	default:
		return "", false
	}
}

// ToMinorUnits converts a decimal amount to the smallest currency unit (paise, cents).
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// SignHex returns the hex HMAC-SHA256 of message under secret.
func SignHex(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHex compares signature against the expected HMAC in constant time.
func VerifyHex(message, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	expected := SignHex(message, secret)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// Registry holds the enabled gateways keyed by provider.
type Registry struct {
	gateways map[models.PaymentProvider]Gateway
	parsers  map[models.PaymentProvider]WebhookParser
}

func NewRegistry() *Registry {
	return &Registry{
		gateways: make(map[models.PaymentProvider]Gateway),
		parsers:  make(map[models.PaymentProvider]WebhookParser),
	}
}

// Register adds a gateway. If it can also parse webhooks it is registered for that too.
func (r *Registry) Register(g Gateway) {
	r.gateways[g.Provider()] = g
	if p, ok := g.(WebhookParser); ok {
		r.parsers[g.Provider()] = p
	}
}

func (r *Registry) RegisterParser(p WebhookParser) {
	r.parsers[p.Provider()] = p
}

func (r *Registry) Gateway(provider models.PaymentProvider) (Gateway, error) {
	g, ok := r.gateways[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderDisabled, provider)
	}
	return g, nil
}

func (r *Registry) Parser(provider models.PaymentProvider) (WebhookParser, error) {
	p, ok := r.parsers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderDisabled, provider)
	}
	return p, nil
}

// Providers lists the enabled providers.
func (r *Registry) Providers() []models.PaymentProvider {
	out := make([]models.PaymentProvider, 0, len(r.gateways))
	for p := range r.gateways {
		out = append(out, p)
	}
	return out
}
