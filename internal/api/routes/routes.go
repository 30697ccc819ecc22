package routes

import (
	"context"

	"assuredgig/internal/api/handlers"
	"assuredgig/internal/api/middleware"
	"assuredgig/internal/app"
	"assuredgig/internal/realtime"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	upgrader := realtime.NewUpgrader(app.Config.CORS.AllowedOrigins)

	// Create handlers
	userHandler := handlers.NewUserHandler(app.Users, app.Validator, app.Config.JWT.CookieSecure)
	jobHandler := handlers.NewJobHandler(app.Jobs, app.Validator)
	proposalHandler := handlers.NewProposalHandler(app.Proposals, app.Validator)
	contractHandler := handlers.NewContractHandler(app.Contracts, app.Proposals, app.Validator)
	chatHandler := handlers.NewChatHandler(app.Chat, app.Hub, upgrader, app.Validator)
	paymentHandler := handlers.NewPaymentHandler(app.PaymentSvc, app.Validator)
	notificationHandler := handlers.NewNotificationHandler(app.Notifications, app.Hub, upgrader, app.Validator)
	profileHandler := handlers.NewProfileHandler(app.Profiles, app.Validator)
	gigHandler := handlers.NewGigHandler(app.Gigs, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Users)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterProposalRoutes(apiV1, proposalHandler, authMiddleware)
	RegisterContractRoutes(apiV1, contractHandler, chatHandler, paymentHandler, authMiddleware)
	RegisterNotificationRoutes(apiV1, notificationHandler, authMiddleware)
	RegisterProfileRoutes(apiV1, profileHandler, authMiddleware)
	RegisterGigRoutes(apiV1, gigHandler, authMiddleware)

	// Gateways sign their deliveries; no session auth.
	RegisterWebhookRoutes(router.Group("/webhooks"), paymentHandler)

	// --- Health Check ---
	checks := map[string]handlers.Pinger{}
	if app.DBPool != nil {
		checks["postgres"] = app.DBPool
	}
	if app.RedisClient != nil {
		checks["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return app.RedisClient.Ping(ctx).Err()
		})
	}
	router.GET("/health", handlers.NewHealthHandler(checks).HealthCheck)

	router.GET("/metrics", gin.WrapH(app.Metrics.Handler()))

	// Swagger UI; the spec is registered by the generated docs package imported in main.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.WithField("providers", app.Payments.Providers()).Info("Routes registered")
}
