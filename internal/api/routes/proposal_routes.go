package routes

import (
	"assuredgig/internal/api/handlers"
	"assuredgig/internal/api/middleware"
	"assuredgig/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterProposalRoutes registers proposal submission and the decision workflow.
func RegisterProposalRoutes(rg *gin.RouterGroup, proposalHandler handlers.ProposalHandlerInterface, authMiddleware gin.HandlerFunc) {
	proposals := rg.Group("/proposals")
	proposals.Use(authMiddleware)
	{
		proposals.POST("", middleware.RequireRole(models.RoleFreelancer), proposalHandler.SubmitProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PATCH("/:id", proposalHandler.UpdateProposal) // Accept, reject or edit
		proposals.DELETE("/:id", proposalHandler.WithdrawProposal)
	}
}
