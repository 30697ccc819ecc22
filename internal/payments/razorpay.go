package payments

import (
	"context"
	"fmt"
	"net/http"

	"assuredgig/internal/models"

	"github.com/razorpay/razorpay-go"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	HeaderRazorpaySignature = "X-Razorpay-Signature"
	HeaderRazorpayEventID   = "X-Razorpay-Event-Id"
)

// razorpayOrders is the slice of the SDK's order resource we use.
type razorpayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayGateway creates Razorpay Orders and verifies both the checkout
// callback and native webhooks.
type RazorpayGateway struct {
	orders        razorpayOrders
	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayGateway(keyID, keySecret, webhookSecret string) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)
	return &RazorpayGateway{orders: client.Order, keyID: keyID, keySecret: keySecret, webhookSecret: webhookSecret}
}

var (
	_ Gateway       = (*RazorpayGateway)(nil)
	_ WebhookParser = (*RazorpayGateway)(nil)
)

func (g *RazorpayGateway) Provider() models.PaymentProvider { return models.ProviderRazorpay }

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	amount := ToMinorUnits(req.Amount)
	body, err := g.orders.Create(map[string]interface{}{
		"amount":   amount,
		"currency": req.Currency,
		"receipt":  req.PaymentID.String(),
		"notes": map[string]interface{}{
			"contract_id": req.ContractID.String(),
			"payment_id":  req.PaymentID.String(),
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("razorpay create order: response carried no order id")
	}
	log.WithFields(log.Fields{"order_id": orderID, "amount": amount}).Debug("Razorpay order created")
	return &Order{ID: orderID, PublicKey: g.keyID, AmountMinor: amount, Currency: req.Currency}, nil
}

// VerifyCheckoutSignature checks the signature Razorpay Checkout returns to the browser.
func (g *RazorpayGateway) VerifyCheckoutSignature(orderID, paymentID, signature string) bool {
	return VerifyHex(orderID+"|"+paymentID, signature, g.keySecret)
}

// ParseWebhook accepts either a native webhook (signed body, signature in the
// X-Razorpay-Signature header) or the checkout callback triple.
func (g *RazorpayGateway) ParseWebhook(payload []byte, header http.Header) (*WebhookEvent, error) {
	if !gjson.ValidBytes(payload) {
		return nil, ErrMalformedPayload
	}
	if sig := header.Get(HeaderRazorpaySignature); sig != "" {
		return g.parseNative(payload, sig, header.Get(HeaderRazorpayEventID))
	}
	return g.parseCheckout(payload)
}

func (g *RazorpayGateway) parseNative(payload []byte, signature, eventID string) (*WebhookEvent, error) {
	if !VerifyHex(string(payload), signature, g.webhookSecret) {
		return nil, ErrInvalidSignature
	}

	result := gjson.ParseBytes(payload)
	event := &WebhookEvent{
		Provider:  models.ProviderRazorpay,
		EventID:   eventID,
		Type:      result.Get("event").String(),
		PaymentID: result.Get("payload.payment.entity.id").String(),
		OrderID:   result.Get("payload.payment.entity.order_id").String(),
	}
	if event.OrderID == "" {
		event.OrderID = result.Get("payload.order.entity.id").String()
	}
	if event.EventID == "" {
		event.EventID = event.Type + ":" + event.PaymentID + ":" + event.OrderID
	}

	switch event.Type {
	case "payment.captured", "order.paid":
		event.Status = models.PaymentStatusCompleted
	case "payment.failed":
		event.Status = models.PaymentStatusFailed
	}
	if event.Status != "" && event.OrderID == "" {
		return nil, fmt.Errorf("%w: %s event without order id", ErrMalformedPayload, event.Type)
	}
	return event, nil
}

func (g *RazorpayGateway) parseCheckout(payload []byte) (*WebhookEvent, error) {
	fields := gjson.GetManyBytes(payload, "razorpay_order_id", "razorpay_payment_id", "razorpay_signature", "status")
	orderID, paymentID, signature := fields[0].String(), fields[1].String(), fields[2].String()
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, fmt.Errorf("%w: missing razorpay_order_id, razorpay_payment_id or razorpay_signature", ErrMalformedPayload)
	}
	if !g.VerifyCheckoutSignature(orderID, paymentID, signature) {
		return nil, ErrInvalidSignature
	}

	status := "captured"
	if fields[3].Exists() && fields[3].String() != "" {
		status = fields[3].String()
	}
	event := &WebhookEvent{
		Provider:  models.ProviderRazorpay,
		EventID:   "checkout:" + paymentID + ":" + status,
		Type:      "checkout." + status,
		OrderID:   orderID,
		PaymentID: paymentID,
	}
	if mapped, ok := MapGatewayStatus(status); ok {
		event.Status = mapped
	}
	return event, nil
}
