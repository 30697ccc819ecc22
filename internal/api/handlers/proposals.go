package handlers

import (
	"net/http"

	"assuredgig/internal/models"
	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ProposalHandler holds dependencies for proposal operations.
type ProposalHandler struct {
	service   services.ProposalService
	validator *validator.Validate
}

func NewProposalHandler(service services.ProposalService, validate *validator.Validate) *ProposalHandler {
	return &ProposalHandler{service: service, validator: validate}
}

// SubmitProposal godoc
// @Summary      Submit a proposal on an open job
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        proposal body dto.CreateProposalRequest true "Proposal details"
// @Success      201 {object}  dto.ProposalResponse
// @Failure      400 {object}  map[string]string "Invalid input, job not open or already applied"
// @Failure      403 {object}  map[string]string "Forbidden - own job or not a freelancer"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /proposals [post]
// @Security     BearerAuth
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	freelancerID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateProposalRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.FreelancerID = freelancerID

	proposal, err := h.service.SubmitProposal(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "submit proposal")
		return
	}
	c.JSON(http.StatusCreated, MapProposalModelToResponse(proposal))
}

// ListProposals returns the caller's own proposals, or the proposals on one of
// the caller's jobs when job_id is given.
// @Tags         proposals
// @Produce      json
// @Param        job_id query string false "Proposals on one of the caller's jobs" Format(uuid)
// @Param        status query string false "Filter by status" Enums(PENDING, ACCEPTED, REJECTED)
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.ProposalResponse
// @Router       /proposals [get]
// @Security     BearerAuth
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ListProposalsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	proposals, err := h.service.ListProposals(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "retrieve proposals")
		return
	}
	resp := make([]dto.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		resp = append(resp, MapProposalModelToResponse(&proposals[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetProposal godoc
// @Summary      Get a proposal by ID
// @Tags         proposals
// @Produce      json
// @Param        id path      string true  "Proposal ID" Format(uuid)
// @Success      200 {object}  dto.ProposalResponse
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Proposal Not Found"
// @Router       /proposals/{id} [get]
// @Security     BearerAuth
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "proposal")
	if !ok {
		return
	}

	proposal, err := h.service.GetProposalByID(c.Request.Context(), &dto.GetProposalRequest{ID: id, UserID: userID})
	if err != nil {
		respondError(c, err, "retrieve proposal")
		return
	}
	c.JSON(http.StatusOK, MapProposalModelToResponse(proposal))
}

// UpdateProposal godoc
// @Summary      Decide on or edit a proposal
// @Description  The job's client sends status ACCEPTED (creates the contract) or REJECTED (optional feedback).
// @Description  The author may edit cover_letter / bid_amount while the proposal is PENDING.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id path string true "Proposal ID" Format(uuid)
// @Param        body body dto.UpdateProposalRequest true "Decision or edits"
// @Success      200 {object}  dto.ProposalDecisionResponse
// @Failure      400 {object}  map[string]string "Invalid input or proposal/job no longer eligible"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Proposal Not Found"
// @Router       /proposals/{id} [patch]
// @Security     BearerAuth
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "proposal")
	if !ok {
		return
	}
	var req dto.UpdateProposalRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id
	req.UserID = userID
	ctx := c.Request.Context()

	if req.Status == nil {
		if req.CoverLetter == nil && req.BidAmount == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field must be provided for update"})
			return
		}
		proposal, err := h.service.EditProposal(ctx, &req)
		if err != nil {
			respondError(c, err, "update proposal")
			return
		}
		c.JSON(http.StatusOK, dto.ProposalDecisionResponse{Proposal: MapProposalModelToResponse(proposal)})
		return
	}

	switch *req.Status {
	case models.ProposalStatusAccepted:
		proposal, contract, err := h.service.AcceptProposal(ctx, &dto.AcceptProposalRequest{ProposalID: id, UserID: userID})
		if err != nil {
			respondError(c, err, "accept proposal")
			return
		}
		contractResp := MapContractModelToResponse(contract, nil)
		c.JSON(http.StatusOK, dto.ProposalDecisionResponse{
			Proposal: MapProposalModelToResponse(proposal),
			Contract: &contractResp,
		})
	default:
		proposal, err := h.service.RejectProposal(ctx, &dto.RejectProposalRequest{ProposalID: id, UserID: userID, Feedback: req.Feedback})
		if err != nil {
			respondError(c, err, "reject proposal")
			return
		}
		c.JSON(http.StatusOK, dto.ProposalDecisionResponse{Proposal: MapProposalModelToResponse(proposal)})
	}
}

// WithdrawProposal deletes the caller's own pending proposal.
// @Tags         proposals
// @Param        id path      string true  "Proposal ID" Format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object}  map[string]string "Proposal is no longer pending"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /proposals/{id} [delete]
// @Security     BearerAuth
func (h *ProposalHandler) WithdrawProposal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "proposal")
	if !ok {
		return
	}

	if err := h.service.WithdrawProposal(c.Request.Context(), &dto.WithdrawProposalRequest{ID: id, UserID: userID}); err != nil {
		respondError(c, err, "withdraw proposal")
		return
	}
	c.Status(http.StatusNoContent)
}
