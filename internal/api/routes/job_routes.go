package routes

import (
	"assuredgig/internal/api/handlers"
	"assuredgig/internal/api/middleware"
	"assuredgig/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
// It applies the provided authentication middleware to all job routes.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware)
	{
		jobs.POST("", middleware.RequireRole(models.RoleClient), jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.PATCH("/:id", jobHandler.UpdateJob) // Edit details or close
		jobs.DELETE("/:id", jobHandler.DeleteJob)
	}
}
