package routes

import (
	"assuredgig/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the auth endpoints and the authenticated user routes.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, authMiddleware gin.HandlerFunc) {
	// --- Authentication Routes ---
	auth := rg.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
		auth.POST("/refresh", userHandler.Refresh)
		auth.POST("/logout", authMiddleware, userHandler.Logout)
	}

	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", userHandler.GetMe)
		users.PATCH("/me", userHandler.UpdateMe)
		users.GET("/:id", userHandler.GetUserByID)
	}
}
