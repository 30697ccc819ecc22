package routes

import (
	"assuredgig/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the portfolio and resume endpoints.
func RegisterProfileRoutes(rg *gin.RouterGroup, profileHandler handlers.ProfileHandlerInterface, authMiddleware gin.HandlerFunc) {
	portfolio := rg.Group("/portfolio")
	portfolio.Use(authMiddleware)
	{
		portfolio.GET("", profileHandler.GetPortfolio)
		portfolio.POST("", profileHandler.CreatePortfolio)
		portfolio.PUT("", profileHandler.UpdatePortfolio)
	}

	resume := rg.Group("/resume")
	resume.Use(authMiddleware)
	{
		resume.GET("", profileHandler.GetResume)
		resume.POST("", profileHandler.SaveResume)
	}
}
