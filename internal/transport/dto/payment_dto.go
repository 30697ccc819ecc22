package dto

import (
	"time"

	"assuredgig/internal/models"

	"github.com/google/uuid"
)

// CreatePaymentRequest opens a gateway order for a contract. ContractID comes from the path.
type CreatePaymentRequest struct {
	ContractID uuid.UUID              `json:"-"`
	UserID     uuid.UUID              `json:"-"`
	Amount     float64                `json:"amount" validate:"required,gt=0"`
	Provider   models.PaymentProvider `json:"provider" validate:"required,oneof=razorpay stripe"`
}

type ListPaymentsRequest struct {
	ContractID uuid.UUID `json:"-" validate:"required"`
	UserID     uuid.UUID `json:"-"`
}

type PaymentResponse struct {
	ID               uuid.UUID              `json:"id"`
	ContractID       uuid.UUID              `json:"contract_id"`
	PayerID          uuid.UUID              `json:"payer_id"`
	Amount           float64                `json:"amount"`
	Currency         string                 `json:"currency"`
	Provider         models.PaymentProvider `json:"provider"`
	GatewayOrderID   string                 `json:"gateway_order_id"`
	GatewayPaymentID *string                `json:"gateway_payment_id,omitempty"`
	Status           models.PaymentStatus   `json:"status"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// CheckoutResponse carries what the browser needs to complete the payment.
type CheckoutResponse struct {
	Payment      PaymentResponse `json:"payment"`
	KeyID        string          `json:"key_id,omitempty"`        // Razorpay Checkout
	ClientSecret string          `json:"client_secret,omitempty"` // Stripe Elements
	AmountMinor  int64           `json:"amount_minor"`
}

// WebhookAck is the body returned to gateways.
type WebhookAck struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome"`
}
