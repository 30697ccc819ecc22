package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"assuredgig/internal/events"
	"assuredgig/internal/metrics"
	"assuredgig/internal/mocks"
	"assuredgig/internal/models"
	"assuredgig/internal/payments"
	"assuredgig/internal/services"
	"assuredgig/internal/storage/memory"
	"assuredgig/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testKeySecret     = "rzp_key_secret"
	testWebhookSecret = "rzp_webhook_secret"
)

type paymentFixture struct {
	ctx      context.Context
	svc      services.PaymentService
	store    *memory.Store
	pub      *recordingPublisher
	gateway  *mocks.MockGateway
	registry *payments.Registry
}

func setupPaymentServiceTest(t *testing.T) *paymentFixture {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	gateway.EXPECT().Provider().Return(models.ProviderRazorpay).AnyTimes()

	registry := payments.NewRegistry()
	registry.Register(gateway)
	registry.RegisterParser(payments.NewRazorpayGateway("rzp_test_key", testKeySecret, testWebhookSecret))

	store := memory.New()
	pub := &recordingPublisher{}
	return &paymentFixture{
		ctx:      context.Background(),
		svc:      services.NewPaymentService(store, registry, nil, pub, metrics.New(), "INR"),
		store:    store,
		pub:      pub,
		gateway:  gateway,
		registry: registry,
	}
}

// openPayment creates a pending Razorpay payment for order orderID through the service.
func (f *paymentFixture) openPayment(t *testing.T, contract *models.Contract, orderID string) *models.Payment {
	t.Helper()
	f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req payments.OrderRequest) (*payments.Order, error) {
			return &payments.Order{ID: orderID, PublicKey: "rzp_test_key", AmountMinor: payments.ToMinorUnits(req.Amount), Currency: req.Currency}, nil
		})
	checkout, err := f.svc.CreatePayment(f.ctx, &dto.CreatePaymentRequest{
		ContractID: contract.ID,
		UserID:     contract.ClientID,
		Amount:     450.5,
		Provider:   models.ProviderRazorpay,
	})
	require.NoError(t, err)
	return checkout.Payment
}

func checkoutPayload(t *testing.T, orderID, paymentID, secret string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  payments.SignHex(orderID+"|"+paymentID, secret),
	})
	require.NoError(t, err)
	return body
}

func TestPaymentService_CreatePayment(t *testing.T) {
	f := setupPaymentServiceTest(t)
	contract, client, _ := createTestContract(t, f.store, models.ContractStatusPending)

	f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req payments.OrderRequest) (*payments.Order, error) {
			assert.Equal(t, contract.ID, req.ContractID)
			assert.Equal(t, "INR", req.Currency)
			return &payments.Order{ID: "order_1", PublicKey: "rzp_test_key", AmountMinor: 45050, Currency: "INR"}, nil
		})

	checkout, err := f.svc.CreatePayment(f.ctx, &dto.CreatePaymentRequest{
		ContractID: contract.ID,
		UserID:     client.ID,
		Amount:     450.5,
		Provider:   models.ProviderRazorpay,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, checkout.Payment.Status)
	assert.Equal(t, "order_1", checkout.Payment.GatewayOrderID)
	assert.Equal(t, "rzp_test_key", checkout.KeyID)
	assert.Equal(t, int64(45050), checkout.AmountMinor)

	stored, err := f.store.Payments().GetByGatewayOrderID(f.ctx, models.ProviderRazorpay, "order_1")
	require.NoError(t, err)
	assert.Equal(t, checkout.Payment.ID, stored.ID)
}

func TestPaymentService_CreatePayment_Rules(t *testing.T) {
	f := setupPaymentServiceTest(t)

	t.Run("freelancer cannot pay", func(t *testing.T) {
		contract, _, freelancer := createTestContract(t, f.store, models.ContractStatusActive)
		_, err := f.svc.CreatePayment(f.ctx, &dto.CreatePaymentRequest{ContractID: contract.ID, UserID: freelancer.ID, Amount: 1, Provider: models.ProviderRazorpay})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("cancelled contract conflicts", func(t *testing.T) {
		contract, client, _ := createTestContract(t, f.store, models.ContractStatusCancelled)
		_, err := f.svc.CreatePayment(f.ctx, &dto.CreatePaymentRequest{ContractID: contract.ID, UserID: client.ID, Amount: 1, Provider: models.ProviderRazorpay})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("disabled provider", func(t *testing.T) {
		contract, client, _ := createTestContract(t, f.store, models.ContractStatusActive)
		_, err := f.svc.CreatePayment(f.ctx, &dto.CreatePaymentRequest{ContractID: contract.ID, UserID: client.ID, Amount: 1, Provider: models.ProviderStripe})
		assert.ErrorIs(t, err, services.ErrUnavailable)
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		contract, client, _ := createTestContract(t, f.store, models.ContractStatusActive)
		f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway down"))
		_, err := f.svc.CreatePayment(f.ctx, &dto.CreatePaymentRequest{ContractID: contract.ID, UserID: client.ID, Amount: 1, Provider: models.ProviderRazorpay})
		require.Error(t, err)
		list, err := f.store.Payments().ListByContract(f.ctx, contract.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestPaymentService_HandleWebhook_InvalidSignatureChangesNothing(t *testing.T) {
	f := setupPaymentServiceTest(t)
	contract, _, _ := createTestContract(t, f.store, models.ContractStatusPending)
	payment := f.openPayment(t, contract, "order_sig")

	_, err := f.svc.HandleWebhook(f.ctx, models.ProviderRazorpay, checkoutPayload(t, "order_sig", "pay_1", "wrong-secret"), http.Header{})
	assert.ErrorIs(t, err, services.ErrInvalidSignature)

	unchanged, err := f.store.Payments().GetByID(f.ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, unchanged.Status)
	c, err := f.store.Contracts().GetByID(f.ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusPending, c.Status)
	assert.Empty(t, f.pub.topics)
}

func TestPaymentService_HandleWebhook_CompletesAndActivates(t *testing.T) {
	f := setupPaymentServiceTest(t)
	contract, _, _ := createTestContract(t, f.store, models.ContractStatusPending)
	payment := f.openPayment(t, contract, "order_ok")

	result, err := f.svc.HandleWebhook(f.ctx, models.ProviderRazorpay, checkoutPayload(t, "order_ok", "pay_ok", testKeySecret), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeApplied, result.Outcome)
	assert.True(t, result.ContractActivated)

	settled, err := f.store.Payments().GetByID(f.ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, settled.Status)
	require.NotNil(t, settled.GatewayPaymentID)
	assert.Equal(t, "pay_ok", *settled.GatewayPaymentID)

	c, err := f.store.Contracts().GetByID(f.ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusActive, c.Status)

	require.Equal(t, []string{events.TopicPaymentCompleted}, f.pub.topics)
	ev := f.pub.events[0].(events.PaymentSettled)
	assert.True(t, ev.Completed)
	assert.True(t, ev.ContractActivated)

	// Redelivery is acknowledged without another change or event.
	again, err := f.svc.HandleWebhook(f.ctx, models.ProviderRazorpay, checkoutPayload(t, "order_ok", "pay_ok", testKeySecret), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeDuplicate, again.Outcome)
	assert.Len(t, f.pub.topics, 1)
}

func TestPaymentService_HandleWebhook_ActiveContractStaysActive(t *testing.T) {
	f := setupPaymentServiceTest(t)
	contract, _, _ := createTestContract(t, f.store, models.ContractStatusActive)
	f.openPayment(t, contract, "order_second")

	result, err := f.svc.HandleWebhook(f.ctx, models.ProviderRazorpay, checkoutPayload(t, "order_second", "pay_2", testKeySecret), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeApplied, result.Outcome)
	assert.False(t, result.ContractActivated)

	c, err := f.store.Contracts().GetByID(f.ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusActive, c.Status)
}

func TestPaymentService_HandleWebhook_NativeFailedEvent(t *testing.T) {
	f := setupPaymentServiceTest(t)
	contract, _, _ := createTestContract(t, f.store, models.ContractStatusPending)
	payment := f.openPayment(t, contract, "order_fail")

	body := []byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_f","order_id":"order_fail","status":"failed"}}}}`)
	header := http.Header{}
	header.Set(payments.HeaderRazorpaySignature, payments.SignHex(string(body), testWebhookSecret))
	header.Set(payments.HeaderRazorpayEventID, "evt_1")

	result, err := f.svc.HandleWebhook(f.ctx, models.ProviderRazorpay, body, header)
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeApplied, result.Outcome)
	assert.False(t, result.ContractActivated)

	failed, err := f.store.Payments().GetByID(f.ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, failed.Status)
	c, err := f.store.Contracts().GetByID(f.ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusPending, c.Status)
	assert.Equal(t, []string{events.TopicPaymentFailed}, f.pub.topics)
}

func TestPaymentService_HandleWebhook_UnknownOrder(t *testing.T) {
	f := setupPaymentServiceTest(t)
	_, err := f.svc.HandleWebhook(f.ctx, models.ProviderRazorpay, checkoutPayload(t, "order_missing", "pay_x", testKeySecret), http.Header{})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPaymentService_HandleWebhook_IgnoredEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockWebhookParser(ctrl)
	parser.EXPECT().Provider().Return(models.ProviderStripe).AnyTimes()
	parser.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
		Return(&payments.WebhookEvent{Provider: models.ProviderStripe, EventID: "evt_x", Type: "charge.refunded"}, nil)

	registry := payments.NewRegistry()
	registry.RegisterParser(parser)
	svc := services.NewPaymentService(memory.New(), registry, nil, nil, nil, "")

	result, err := svc.HandleWebhook(context.Background(), models.ProviderStripe, []byte(`{}`), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeIgnored, result.Outcome)
}

func TestPaymentService_HandleWebhook_DisabledProvider(t *testing.T) {
	svc := services.NewPaymentService(memory.New(), payments.NewRegistry(), nil, nil, nil, "")
	_, err := svc.HandleWebhook(context.Background(), models.ProviderStripe, []byte(`{}`), http.Header{})
	assert.ErrorIs(t, err, services.ErrUnavailable)
}

func TestPaymentService_ListPayments(t *testing.T) {
	f := setupPaymentServiceTest(t)
	contract, _, freelancer := createTestContract(t, f.store, models.ContractStatusActive)
	f.openPayment(t, contract, "order_list")
	outsider := createTestUser(t, f.store, models.RoleClient)

	list, err := f.svc.ListPayments(f.ctx, &dto.ListPaymentsRequest{ContractID: contract.ID, UserID: freelancer.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.svc.ListPayments(f.ctx, &dto.ListPaymentsRequest{ContractID: contract.ID, UserID: outsider.ID})
	assert.ErrorIs(t, err, services.ErrForbidden)
}
