package routes

import (
	"assuredgig/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterContractRoutes registers contracts and their progress, chat and payment sub-resources.
func RegisterContractRoutes(
	rg *gin.RouterGroup,
	contractHandler handlers.ContractHandlerInterface,
	chatHandler handlers.ChatHandlerInterface,
	paymentHandler handlers.PaymentHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	contracts := rg.Group("/contracts")
	contracts.Use(authMiddleware)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.PATCH("/:id", contractHandler.UpdateContractStatus)

		contracts.GET("/:id/progress", contractHandler.GetProgress)
		contracts.POST("/:id/progress", contractHandler.AddMilestone)
		contracts.PATCH("/:id/progress", contractHandler.UpdateMilestone)

		contracts.GET("/:id/chat", chatHandler.ListMessages)
		contracts.POST("/:id/chat", chatHandler.SendMessage)
		contracts.GET("/:id/chat/ws", chatHandler.Connect)

		contracts.GET("/:id/payments", paymentHandler.ListPayments)
		contracts.POST("/:id/payments", paymentHandler.CreatePayment)
	}
}

// RegisterWebhookRoutes registers the gateway callbacks. They carry no session;
// each delivery is authenticated by its signature.
func RegisterWebhookRoutes(rg *gin.RouterGroup, paymentHandler handlers.PaymentHandlerInterface) {
	rg.POST("/razorpay", paymentHandler.RazorpayWebhook)
	rg.POST("/stripe", paymentHandler.StripeWebhook)
}
