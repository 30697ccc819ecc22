package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"assuredgig/internal/api/handlers"
	"assuredgig/internal/api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserHandler is a mock implementation of UserHandlerInterface
type MockUserHandler struct {
	mock.Mock
}

func (m *MockUserHandler) Register(c *gin.Context)    { m.Called(c) }
func (m *MockUserHandler) Login(c *gin.Context)       { m.Called(c) }
func (m *MockUserHandler) Refresh(c *gin.Context)     { m.Called(c) }
func (m *MockUserHandler) Logout(c *gin.Context)      { m.Called(c) }
func (m *MockUserHandler) GetMe(c *gin.Context)       { m.Called(c) }
func (m *MockUserHandler) UpdateMe(c *gin.Context)    { m.Called(c) }
func (m *MockUserHandler) GetUserByID(c *gin.Context) { m.Called(c) }

var _ handlers.UserHandlerInterface = (*MockUserHandler)(nil)

type MockJobHandler struct {
	mock.Mock
}

func (m *MockJobHandler) CreateJob(c *gin.Context)  { m.Called(c) }
func (m *MockJobHandler) ListJobs(c *gin.Context)   { m.Called(c) }
func (m *MockJobHandler) GetJobByID(c *gin.Context) { m.Called(c) }
func (m *MockJobHandler) UpdateJob(c *gin.Context)  { m.Called(c) }
func (m *MockJobHandler) DeleteJob(c *gin.Context)  { m.Called(c) }

var _ handlers.JobHandlerInterface = (*MockJobHandler)(nil)

type MockContractHandler struct {
	mock.Mock
}

func (m *MockContractHandler) CreateContract(c *gin.Context)       { m.Called(c) }
func (m *MockContractHandler) ListContracts(c *gin.Context)        { m.Called(c) }
func (m *MockContractHandler) GetContract(c *gin.Context)          { m.Called(c) }
func (m *MockContractHandler) UpdateContractStatus(c *gin.Context) { m.Called(c) }
func (m *MockContractHandler) GetProgress(c *gin.Context)          { m.Called(c) }
func (m *MockContractHandler) AddMilestone(c *gin.Context)         { m.Called(c) }
func (m *MockContractHandler) UpdateMilestone(c *gin.Context)      { m.Called(c) }

type MockChatHandler struct {
	mock.Mock
}

func (m *MockChatHandler) ListMessages(c *gin.Context) { m.Called(c) }
func (m *MockChatHandler) SendMessage(c *gin.Context)  { m.Called(c) }
func (m *MockChatHandler) Connect(c *gin.Context)      { m.Called(c) }

type MockPaymentHandler struct {
	mock.Mock
}

func (m *MockPaymentHandler) CreatePayment(c *gin.Context)   { m.Called(c) }
func (m *MockPaymentHandler) ListPayments(c *gin.Context)    { m.Called(c) }
func (m *MockPaymentHandler) RazorpayWebhook(c *gin.Context) { m.Called(c) }
func (m *MockPaymentHandler) StripeWebhook(c *gin.Context)   { m.Called(c) }

var (
	_ handlers.ContractHandlerInterface = (*MockContractHandler)(nil)
	_ handlers.ChatHandlerInterface     = (*MockChatHandler)(nil)
	_ handlers.PaymentHandlerInterface  = (*MockPaymentHandler)(nil)
)

type expectedRoute struct {
	Method string
	Path   string
}

func assertRoutes(t *testing.T, router *gin.Engine, expected []expectedRoute) {
	t.Helper()
	registered := router.Routes()

	registeredMap := make(map[string]bool)
	for _, routeInfo := range registered {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
		t.Logf("Registered: %s %s", routeInfo.Method, routeInfo.Path)
	}

	assert.Len(t, registered, len(expected), "Number of registered routes should match expected")
	for _, e := range expected {
		assert.True(t, registeredMap[e.Method+" "+e.Path], "Expected route %s %s to be registered", e.Method, e.Path)
	}
}

// passThrough stands in for the JWT middleware.
func passThrough(c *gin.Context) { c.Next() }

func TestRegisterUserRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.RegisterUserRoutes(router.Group("/api/v1"), new(MockUserHandler), passThrough)

	assertRoutes(t, router, []expectedRoute{
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/auth/refresh"},
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodPatch, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/users/:id"},
	})
}

func TestRegisterJobRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.RegisterJobRoutes(router.Group("/api/v1"), new(MockJobHandler), passThrough)

	assertRoutes(t, router, []expectedRoute{
		{http.MethodPost, "/api/v1/jobs"},
		{http.MethodGet, "/api/v1/jobs"},
		{http.MethodGet, "/api/v1/jobs/:id"},
		{http.MethodPatch, "/api/v1/jobs/:id"},
		{http.MethodDelete, "/api/v1/jobs/:id"},
	})
}

func TestRegisterContractRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.RegisterContractRoutes(router.Group("/api/v1"), new(MockContractHandler), new(MockChatHandler), new(MockPaymentHandler), passThrough)

	assertRoutes(t, router, []expectedRoute{
		{http.MethodPost, "/api/v1/contracts"},
		{http.MethodGet, "/api/v1/contracts"},
		{http.MethodGet, "/api/v1/contracts/:id"},
		{http.MethodPatch, "/api/v1/contracts/:id"},
		{http.MethodGet, "/api/v1/contracts/:id/progress"},
		{http.MethodPost, "/api/v1/contracts/:id/progress"},
		{http.MethodPatch, "/api/v1/contracts/:id/progress"},
		{http.MethodGet, "/api/v1/contracts/:id/chat"},
		{http.MethodPost, "/api/v1/contracts/:id/chat"},
		{http.MethodGet, "/api/v1/contracts/:id/chat/ws"},
		{http.MethodGet, "/api/v1/contracts/:id/payments"},
		{http.MethodPost, "/api/v1/contracts/:id/payments"},
	})
}

func TestRegisterWebhookRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	paymentHandler := new(MockPaymentHandler)

	routes.RegisterWebhookRoutes(router.Group("/webhooks"), paymentHandler)

	assertRoutes(t, router, []expectedRoute{
		{http.MethodPost, "/webhooks/razorpay"},
		{http.MethodPost, "/webhooks/stripe"},
	})

	// No auth middleware sits in front of the webhooks.
	paymentHandler.On("StripeWebhook", mock.Anything).Return().Once()
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, "/webhooks/stripe", nil)
	router.ServeHTTP(recorder, request)
	paymentHandler.AssertExpectations(t)
}

func TestRegisterJobRoutes_AuthMiddlewareApplied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	jobHandler := new(MockJobHandler)

	deny := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
	}
	routes.RegisterJobRoutes(router.Group("/api/v1"), jobHandler, deny)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	jobHandler.AssertNotCalled(t, "ListJobs", mock.Anything)
}
