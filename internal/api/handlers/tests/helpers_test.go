package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assuredgig/config"
	"assuredgig/internal/api/handlers"
	"assuredgig/internal/api/routes"
	"assuredgig/internal/app"
	"assuredgig/internal/mocks"
	"assuredgig/internal/models"
	"assuredgig/internal/payments"
	"assuredgig/internal/session"
	"assuredgig/internal/storage/memory"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testJWTSecret     = "handler-test-secret"
	testKeySecret     = "rzp_key_secret"
	testWebhookSecret = "rzp_webhook_secret"
	testPassword      = "correct-horse-battery"
)

type testEnv struct {
	router  *gin.Engine
	app     *app.Application
	store   *memory.Store
	gateway *mocks.MockGateway
}

// setupTestEnv wires the real routes, handlers and services over the in-memory
// store. Razorpay orders go to a gomock gateway; webhooks are verified for real.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{
			Secret:          testJWTSecret,
			Expiration:      15 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Payments: config.PaymentsConfig{Currency: "INR"},
	}

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	gateway.EXPECT().Provider().Return(models.ProviderRazorpay).AnyTimes()

	registry := payments.NewRegistry()
	registry.Register(gateway)
	registry.RegisterParser(payments.NewRazorpayGateway("rzp_test_key", testKeySecret, testWebhookSecret))

	store := memory.New()
	application, err := app.New(cfg, app.Infrastructure{
		Store:    store,
		Sessions: session.NewMemoryStore(),
		Payments: registry,
	})
	require.NoError(t, err)
	t.Cleanup(application.Close)

	router := gin.New()
	router.Use(handlers.ErrorDetail(true))
	routes.RegisterRoutes(router, application)

	return &testEnv{router: router, app: application, store: store, gateway: gateway}
}

// do sends a request with an optional JSON body and bearer token.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, request)
	return recorder
}

// doRaw posts a pre-encoded body with extra headers, as a gateway would.
func (e *testEnv) doRaw(t *testing.T, path string, payload []byte, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		request.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out), recorder.Body.String())
	return out
}

type account struct {
	ID    uuid.UUID
	Token string
}

// registerAccount signs up through the API and returns the new user's token.
func (e *testEnv) registerAccount(t *testing.T, role models.Role) account {
	t.Helper()
	email := uuid.NewString()[:8] + "@example.com"
	recorder := e.do(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Name:     "Test " + string(role),
		Email:    email,
		Password: testPassword,
		Role:     role,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	res := decode[dto.AuthResponse](t, recorder)
	require.NotNil(t, res.User)
	return account{ID: res.User.ID, Token: res.AccessToken}
}

// createAdmin inserts an admin directly, since the API never grants that role, and logs in.
func (e *testEnv) createAdmin(t *testing.T) account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	email := "admin-" + uuid.NewString()[:8] + "@example.com"
	user, err := e.store.Users().Create(context.Background(), &models.User{
		ID:           uuid.New(),
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Skills:       []string{},
	})
	require.NoError(t, err)

	recorder := e.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: email, Password: testPassword})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	return account{ID: user.ID, Token: decode[dto.AuthResponse](t, recorder).AccessToken}
}

func (e *testEnv) postJob(t *testing.T, client account) dto.JobResponse {
	t.Helper()
	recorder := e.do(t, http.MethodPost, "/api/v1/jobs", client.Token, dto.CreateJobRequest{
		Title:       "Build a landing page",
		Description: "Responsive landing page with a contact form",
		Budget:      1000,
		Skills:      []string{"html", "css"},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	return decode[dto.JobResponse](t, recorder)
}

func (e *testEnv) submitProposal(t *testing.T, freelancer account, jobID uuid.UUID) dto.ProposalResponse {
	t.Helper()
	recorder := e.do(t, http.MethodPost, "/api/v1/proposals", freelancer.Token, dto.CreateProposalRequest{
		JobID:       jobID,
		CoverLetter: "I have shipped a dozen landing pages like this one.",
		BidAmount:   900,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	return decode[dto.ProposalResponse](t, recorder)
}

// openContract runs job -> proposal -> acceptance and returns the PENDING contract.
func (e *testEnv) openContract(t *testing.T) (dto.ContractResponse, account, account) {
	t.Helper()
	client := e.registerAccount(t, models.RoleClient)
	freelancer := e.registerAccount(t, models.RoleFreelancer)
	job := e.postJob(t, client)
	proposal := e.submitProposal(t, freelancer, job.ID)

	recorder := e.do(t, http.MethodPost, "/api/v1/contracts", client.Token, dto.CreateContractRequest{ProposalID: proposal.ID})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	return decode[dto.ContractResponse](t, recorder), client, freelancer
}
