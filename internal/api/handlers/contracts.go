package handlers

import (
	"net/http"

	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContractHandler serves contracts and their milestone progress.
type ContractHandler struct {
	contracts services.ContractService
	proposals services.ProposalService
	validator *validator.Validate
}

func NewContractHandler(contracts services.ContractService, proposals services.ProposalService, validate *validator.Validate) *ContractHandler {
	return &ContractHandler{contracts: contracts, proposals: proposals, validator: validate}
}

// CreateContract godoc
// @Summary      Accept a proposal and open its contract
// @Description  Same workflow as PATCH /proposals/{id} with status ACCEPTED.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateContractRequest true "Proposal to accept"
// @Success      201 {object}  dto.ContractResponse
// @Failure      400 {object}  map[string]string "Proposal or job no longer eligible"
// @Failure      403 {object}  map[string]string "Forbidden - not the job's client"
// @Failure      404 {object}  map[string]string "Proposal Not Found"
// @Router       /contracts [post]
// @Security     BearerAuth
func (h *ContractHandler) CreateContract(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateContractRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	_, contract, err := h.proposals.AcceptProposal(c.Request.Context(), &dto.AcceptProposalRequest{ProposalID: req.ProposalID, UserID: userID})
	if err != nil {
		respondError(c, err, "create contract")
		return
	}
	c.JSON(http.StatusCreated, MapContractModelToResponse(contract, nil))
}

// ListContracts godoc
// @Summary      List the caller's contracts
// @Tags         contracts
// @Produce      json
// @Param        status query string false "Filter by status" Enums(PENDING, ACTIVE, COMPLETED, CANCELLED)
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.ContractResponse
// @Router       /contracts [get]
// @Security     BearerAuth
func (h *ContractHandler) ListContracts(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ListContractsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	contracts, err := h.contracts.ListContracts(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "retrieve contracts")
		return
	}
	resp := make([]dto.ContractResponse, 0, len(contracts))
	for i := range contracts {
		resp = append(resp, MapContractModelToResponse(&contracts[i], nil))
	}
	c.JSON(http.StatusOK, resp)
}

// GetContract returns the contract with its milestones and progress.
// @Tags         contracts
// @Produce      json
// @Param        id path      string true  "Contract ID" Format(uuid)
// @Success      200 {object}  dto.ContractResponse
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Contract Not Found"
// @Router       /contracts/{id} [get]
// @Security     BearerAuth
func (h *ContractHandler) GetContract(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}

	contract, progress, err := h.contracts.GetContract(c.Request.Context(), &dto.GetContractRequest{ID: id, UserID: userID})
	if err != nil {
		respondError(c, err, "retrieve contract")
		return
	}
	c.JSON(http.StatusOK, MapContractModelToResponse(contract, progress))
}

// UpdateContractStatus godoc
// @Summary      Complete or cancel a contract
// @Description  The client completes an ACTIVE contract; either party cancels a PENDING or ACTIVE one.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contract ID" Format(uuid)
// @Param        body body dto.UpdateContractStatusRequest true "New status"
// @Success      200 {object}  dto.ContractResponse
// @Failure      400 {object}  map[string]string "Invalid transition"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /contracts/{id} [patch]
// @Security     BearerAuth
func (h *ContractHandler) UpdateContractStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}
	var req dto.UpdateContractStatusRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ID = id
	req.UserID = userID

	contract, err := h.contracts.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update contract")
		return
	}
	c.JSON(http.StatusOK, MapContractModelToResponse(contract, nil))
}

// GetProgress godoc
// @Summary      Get milestone progress
// @Tags         contracts
// @Produce      json
// @Param        id path      string true  "Contract ID" Format(uuid)
// @Success      200 {object}  dto.ProgressResponse
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /contracts/{id}/progress [get]
// @Security     BearerAuth
func (h *ContractHandler) GetProgress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}

	progress, err := h.contracts.GetProgress(c.Request.Context(), &dto.GetProgressRequest{ContractID: id, UserID: userID})
	if err != nil {
		respondError(c, err, "retrieve progress")
		return
	}
	c.JSON(http.StatusOK, MapProgressToResponse(id, progress))
}

// AddMilestone adds a PENDING milestone and returns the recomputed progress.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Contract ID" Format(uuid)
// @Param        body body dto.AddMilestoneRequest true "Milestone"
// @Success      201 {object}  dto.ProgressResponse
// @Failure      400 {object}  map[string]string "Invalid input or closed contract"
// @Router       /contracts/{id}/progress [post]
// @Security     BearerAuth
func (h *ContractHandler) AddMilestone(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}
	var req dto.AddMilestoneRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ContractID = id
	req.UserID = userID

	_, progress, err := h.contracts.AddMilestone(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "add milestone")
		return
	}
	c.JSON(http.StatusCreated, MapProgressToResponse(id, progress))
}

// UpdateMilestone changes one milestone's status and returns the recomputed progress.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Contract ID" Format(uuid)
// @Param        body body dto.UpdateMilestoneStatusRequest true "Milestone status"
// @Success      200 {object}  dto.ProgressResponse
// @Failure      404 {object}  map[string]string "Milestone Not Found"
// @Router       /contracts/{id}/progress [patch]
// @Security     BearerAuth
func (h *ContractHandler) UpdateMilestone(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}
	var req dto.UpdateMilestoneStatusRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ContractID = id
	req.UserID = userID

	progress, err := h.contracts.UpdateMilestoneStatus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update milestone")
		return
	}
	c.JSON(http.StatusOK, MapProgressToResponse(id, progress))
}
