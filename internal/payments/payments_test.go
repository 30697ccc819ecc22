package payments_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"assuredgig/internal/models"
	"assuredgig/internal/payments"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	keySecret     = "rzp_key_secret"
	webhookSecret = "rzp_webhook_secret"
	stripeSecret  = "whsec_test_secret"
)

func TestMapGatewayStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   models.PaymentStatus
		wantOK bool
	}{
		{"captured", models.PaymentStatusCompleted, true},
		{"SUCCEEDED", models.PaymentStatusCompleted, true},
		{"paid", models.PaymentStatusCompleted, true},
		{"completed", models.PaymentStatusCompleted, true},
		{"failed", models.PaymentStatusFailed, true},
		{"authorized", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := payments.MapGatewayStatus(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(450000), payments.ToMinorUnits(4500))
	assert.Equal(t, int64(1999), payments.ToMinorUnits(19.99))
	assert.Equal(t, int64(1), payments.ToMinorUnits(0.005))
}

func TestVerifyHex(t *testing.T) {
	sig := payments.SignHex("order_1|pay_1", keySecret)
	assert.True(t, payments.VerifyHex("order_1|pay_1", sig, keySecret))
	assert.False(t, payments.VerifyHex("order_1|pay_2", sig, keySecret))
	assert.False(t, payments.VerifyHex("order_1|pay_1", sig, "other"))
	assert.False(t, payments.VerifyHex("order_1|pay_1", "", keySecret))
}

func TestRazorpay_CheckoutCallback(t *testing.T) {
	gw := payments.NewRazorpayGateway("rzp_test_key", keySecret, webhookSecret)
	sig := payments.SignHex("order_abc|pay_xyz", keySecret)

	t.Run("valid signature without status means captured", func(t *testing.T) {
		body := []byte(`{"razorpay_order_id":"order_abc","razorpay_payment_id":"pay_xyz","razorpay_signature":"` + sig + `"}`)
		ev, err := gw.ParseWebhook(body, http.Header{})
		require.NoError(t, err)
		assert.Equal(t, "order_abc", ev.OrderID)
		assert.Equal(t, "pay_xyz", ev.PaymentID)
		assert.Equal(t, models.PaymentStatusCompleted, ev.Status)
		assert.Equal(t, models.ProviderRazorpay, ev.Provider)
	})

	t.Run("explicit failed status", func(t *testing.T) {
		body := []byte(`{"razorpay_order_id":"order_abc","razorpay_payment_id":"pay_xyz","razorpay_signature":"` + sig + `","status":"failed"}`)
		ev, err := gw.ParseWebhook(body, http.Header{})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, ev.Status)
	})

	t.Run("unknown status is acknowledged without a settlement", func(t *testing.T) {
		body := []byte(`{"razorpay_order_id":"order_abc","razorpay_payment_id":"pay_xyz","razorpay_signature":"` + sig + `","status":"authorized"}`)
		ev, err := gw.ParseWebhook(body, http.Header{})
		require.NoError(t, err)
		assert.Empty(t, ev.Status)
	})

	t.Run("tampered payment id", func(t *testing.T) {
		body := []byte(`{"razorpay_order_id":"order_abc","razorpay_payment_id":"pay_other","razorpay_signature":"` + sig + `"}`)
		_, err := gw.ParseWebhook(body, http.Header{})
		assert.ErrorIs(t, err, payments.ErrInvalidSignature)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := gw.ParseWebhook([]byte(`{"razorpay_order_id":"order_abc"}`), http.Header{})
		assert.ErrorIs(t, err, payments.ErrMalformedPayload)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := gw.ParseWebhook([]byte(`not-json`), http.Header{})
		assert.ErrorIs(t, err, payments.ErrMalformedPayload)
	})
}

func TestRazorpay_NativeWebhook(t *testing.T) {
	gw := payments.NewRazorpayGateway("rzp_test_key", keySecret, webhookSecret)
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1","status":"captured"}}}}`)

	header := http.Header{}
	header.Set(payments.HeaderRazorpaySignature, payments.SignHex(string(body), webhookSecret))
	header.Set(payments.HeaderRazorpayEventID, "evt_1")

	ev, err := gw.ParseWebhook(body, header)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.EventID)
	assert.Equal(t, "order_1", ev.OrderID)
	assert.Equal(t, "pay_1", ev.PaymentID)
	assert.Equal(t, models.PaymentStatusCompleted, ev.Status)

	failed := []byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_2","order_id":"order_1"}}}}`)
	header.Set(payments.HeaderRazorpaySignature, payments.SignHex(string(failed), webhookSecret))
	ev, err = gw.ParseWebhook(failed, header)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, ev.Status)

	// Signed with the key secret instead of the webhook secret
	header.Set(payments.HeaderRazorpaySignature, payments.SignHex(string(body), keySecret))
	_, err = gw.ParseWebhook(body, header)
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)
}

func TestStripe_ParseWebhook(t *testing.T) {
	gw := payments.NewStripeGateway("sk_test_dummy", stripeSecret, nil)

	sign := func(payload string, secret string) http.Header {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   []byte(payload),
			Secret:    secret,
			Timestamp: time.Now(),
		})
		h := http.Header{}
		h.Set(payments.HeaderStripeSignature, signed.Header)
		return h
	}

	succeeded := `{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","object":"payment_intent","status":"succeeded"}}}`
	ev, err := gw.ParseWebhook([]byte(succeeded), sign(succeeded, stripeSecret))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.EventID)
	assert.Equal(t, "pi_123", ev.OrderID)
	assert.Equal(t, models.PaymentStatusCompleted, ev.Status)

	failed := `{"id":"evt_2","object":"event","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_123","object":"payment_intent"}}}`
	ev, err = gw.ParseWebhook([]byte(failed), sign(failed, stripeSecret))
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, ev.Status)

	other := `{"id":"evt_3","object":"event","type":"customer.created","data":{"object":{"id":"cus_1"}}}`
	ev, err = gw.ParseWebhook([]byte(other), sign(other, stripeSecret))
	require.NoError(t, err)
	assert.Empty(t, ev.Status)

	_, err = gw.ParseWebhook([]byte(succeeded), sign(succeeded, "whsec_wrong"))
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)

	_, err = gw.ParseWebhook([]byte(succeeded), http.Header{})
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)
}

type fakeGateway struct{ provider models.PaymentProvider }

func (f fakeGateway) Provider() models.PaymentProvider { return f.provider }
func (f fakeGateway) CreateOrder(context.Context, payments.OrderRequest) (*payments.Order, error) {
	return nil, errors.New("not used")
}

func TestRegistry(t *testing.T) {
	reg := payments.NewRegistry()
	reg.Register(payments.NewRazorpayGateway("k", "s", "w"))
	reg.Register(fakeGateway{provider: models.ProviderStripe})

	_, err := reg.Gateway(models.ProviderRazorpay)
	assert.NoError(t, err)
	_, err = reg.Parser(models.ProviderRazorpay)
	assert.NoError(t, err)

	// fakeGateway can't parse webhooks, so only the order side is registered.
	_, err = reg.Gateway(models.ProviderStripe)
	assert.NoError(t, err)
	_, err = reg.Parser(models.ProviderStripe)
	assert.ErrorIs(t, err, payments.ErrProviderDisabled)

	_, err = reg.Gateway("paypal")
	assert.ErrorIs(t, err, payments.ErrProviderDisabled)
	assert.Len(t, reg.Providers(), 2)
}

func TestRedisDeduplicator(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("Skipping Redis dedup tests: TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(redisURL)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	d := payments.NewRedisDeduplicator(rdb, time.Minute)
	eventID := uuid.NewString()

	first, err := d.Claim(ctx, "stripe", eventID)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := d.Claim(ctx, "stripe", eventID)
	require.NoError(t, err)
	assert.False(t, again)

	require.NoError(t, d.Release(ctx, "stripe", eventID))
	afterRelease, err := d.Claim(ctx, "stripe", eventID)
	require.NoError(t, err)
	assert.True(t, afterRelease)
}
