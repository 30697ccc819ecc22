package routes

import (
	"assuredgig/internal/api/handlers"
	"assuredgig/internal/api/middleware"
	"assuredgig/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(rg *gin.RouterGroup, notificationHandler handlers.NotificationHandlerInterface, authMiddleware gin.HandlerFunc) {
	notifications := rg.Group("/notifications")
	notifications.Use(authMiddleware)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.POST("", middleware.RequireRole(models.RoleAdmin), notificationHandler.CreateNotification)
		notifications.PATCH("", notificationHandler.MarkRead)
		notifications.GET("/ws", notificationHandler.Connect)
	}
}
