package handlers

import (
	"net/http"

	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProfileHandler serves a freelancer's portfolio and resume.
type ProfileHandler struct {
	service   services.ProfileService
	validator *validator.Validate
}

func NewProfileHandler(service services.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validate}
}

// profileOwner resolves ?user_id, defaulting to the caller.
func profileOwner(c *gin.Context, self uuid.UUID) (uuid.UUID, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		return self, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// GetPortfolio godoc
// @Summary      Get a portfolio
// @Tags         profiles
// @Produce      json
// @Param        user_id query string false "Owner (defaults to the caller)" Format(uuid)
// @Success      200 {object}  dto.PortfolioResponse
// @Failure      404 {object}  map[string]string "Portfolio Not Found"
// @Router       /portfolio [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetPortfolio(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	owner, ok := profileOwner(c, userID)
	if !ok {
		return
	}

	portfolio, err := h.service.GetPortfolio(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err, "retrieve portfolio")
		return
	}
	c.JSON(http.StatusOK, MapPortfolioModelToResponse(portfolio))
}

// CreatePortfolio godoc
// @Summary      Create own portfolio
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body body dto.SavePortfolioRequest true "Portfolio"
// @Success      201 {object}  dto.PortfolioResponse
// @Failure      400 {object}  map[string]string "Invalid input or portfolio exists"
// @Failure      403 {object}  map[string]string "Forbidden - not a freelancer"
// @Router       /portfolio [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreatePortfolio(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.SavePortfolioRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	portfolio, err := h.service.CreatePortfolio(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create portfolio")
		return
	}
	c.JSON(http.StatusCreated, MapPortfolioModelToResponse(portfolio))
}

// UpdatePortfolio godoc
// @Summary      Update own portfolio
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body body dto.SavePortfolioRequest true "Portfolio"
// @Success      200 {object}  dto.PortfolioResponse
// @Failure      404 {object}  map[string]string "Portfolio Not Found"
// @Router       /portfolio [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdatePortfolio(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.SavePortfolioRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	portfolio, err := h.service.UpdatePortfolio(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update portfolio")
		return
	}
	c.JSON(http.StatusOK, MapPortfolioModelToResponse(portfolio))
}

// GetResume godoc
// @Summary      Get a resume
// @Tags         profiles
// @Produce      json
// @Param        user_id query string false "Owner, defaults to the caller" Format(uuid)
// @Success      200 {object}  dto.ResumeResponse
// @Failure      404 {object}  map[string]string "Resume Not Found"
// @Router       /resume [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetResume(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	owner, ok := profileOwner(c, userID)
	if !ok {
		return
	}

	resume, err := h.service.GetResume(c.Request.Context(), owner)
	if err != nil {
		respondError(c, err, "retrieve resume")
		return
	}
	c.JSON(http.StatusOK, MapResumeModelToResponse(resume))
}

// SaveResume creates the caller's resume or replaces it.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body body dto.SaveResumeRequest true "Resume"
// @Success      200 {object}  dto.ResumeResponse
// @Failure      400 {object}  map[string]string "Invalid input"
// @Router       /resume [post]
// @Security     BearerAuth
func (h *ProfileHandler) SaveResume(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.SaveResumeRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	resume, err := h.service.SaveResume(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "save resume")
		return
	}
	c.JSON(http.StatusOK, MapResumeModelToResponse(resume))
}
