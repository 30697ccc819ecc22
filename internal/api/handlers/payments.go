package handlers

import (
	"io"
	"net/http"

	"assuredgig/internal/models"
	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// maxWebhookBody bounds what a gateway may post to us.
const maxWebhookBody = 1 << 20

// PaymentHandler opens payments for contracts and receives gateway webhooks.
type PaymentHandler struct {
	service   services.PaymentService
	validator *validator.Validate
}

func NewPaymentHandler(service services.PaymentService, validate *validator.Validate) *PaymentHandler {
	return &PaymentHandler{service: service, validator: validate}
}

// CreatePayment godoc
// @Summary      Open a gateway payment for a contract
// @Description  Client only. Returns the order plus what Razorpay Checkout or Stripe Elements needs.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" Format(uuid)
// @Param        body body dto.CreatePaymentRequest true "Amount and provider"
// @Success      201 {object}  dto.CheckoutResponse
// @Failure      400 {object}  map[string]string "Invalid input or contract closed"
// @Failure      403 {object}  map[string]string "Forbidden - not the contract's client"
// @Failure      503 {object}  map[string]string "Provider not configured"
// @Router       /contracts/{id}/payments [post]
// @Security     BearerAuth
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ContractID = contractID
	req.UserID = userID

	checkout, err := h.service.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create payment")
		return
	}
	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Payment:      MapPaymentModelToResponse(checkout.Payment),
		KeyID:        checkout.KeyID,
		ClientSecret: checkout.ClientSecret,
		AmountMinor:  checkout.AmountMinor,
	})
}

// ListPayments godoc
// @Summary      List a contract's payments
// @Tags         payments
// @Produce      json
// @Param        id path      string true  "Contract ID" Format(uuid)
// @Success      200 {array}   dto.PaymentResponse
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /contracts/{id}/payments [get]
// @Security     BearerAuth
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}

	payments, err := h.service.ListPayments(c.Request.Context(), &dto.ListPaymentsRequest{ContractID: contractID, UserID: userID})
	if err != nil {
		respondError(c, err, "retrieve payments")
		return
	}
	resp := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, MapPaymentModelToResponse(&payments[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// RazorpayWebhook handles POST /webhooks/razorpay.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200 {object}  dto.WebhookAck
// @Failure      400 {object}  map[string]string "Bad signature"
// @Failure      404 {object}  map[string]string "Unknown order"
// @Router       /webhooks/razorpay [post]
func (h *PaymentHandler) RazorpayWebhook(c *gin.Context) {
	h.handleWebhook(c, models.ProviderRazorpay)
}

// StripeWebhook handles POST /webhooks/stripe.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200 {object}  dto.WebhookAck
// @Failure      400 {object}  map[string]string "Bad signature"
// @Failure      503 {object}  map[string]string "Stripe not configured"
// @Router       /webhooks/stripe [post]
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	h.handleWebhook(c, models.ProviderStripe)
}

// handleWebhook passes the raw body to reconciliation; signatures are computed
// over the exact bytes, so the body must not be re-encoded.
func (h *PaymentHandler) handleWebhook(c *gin.Context, provider models.PaymentProvider) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read request body"})
		return
	}

	result, err := h.service.HandleWebhook(c.Request.Context(), provider, payload, c.Request.Header)
	if err != nil {
		log.WithError(err).WithField("provider", provider).Warn("Webhook rejected")
		respondError(c, err, "process webhook")
		return
	}
	c.JSON(http.StatusOK, dto.WebhookAck{Received: true, Outcome: result.Outcome})
}
