package routes

import (
	"assuredgig/internal/api/handlers"
	"assuredgig/internal/api/middleware"
	"assuredgig/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterGigRoutes(rg *gin.RouterGroup, gigHandler handlers.GigHandlerInterface, authMiddleware gin.HandlerFunc) {
	gigs := rg.Group("/gigs")
	gigs.Use(authMiddleware)
	{
		gigs.POST("", middleware.RequireRole(models.RoleFreelancer), gigHandler.CreateGig)
		gigs.GET("", gigHandler.ListGigs)
		gigs.GET("/:id", gigHandler.GetGig)
		gigs.PATCH("/:id", gigHandler.UpdateGig)
		gigs.DELETE("/:id", gigHandler.DeleteGig)
	}
}
