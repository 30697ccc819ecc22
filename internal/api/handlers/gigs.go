package handlers

import (
	"net/http"

	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type GigHandler struct {
	service   services.GigService
	validator *validator.Validate
}

func NewGigHandler(service services.GigService, validate *validator.Validate) *GigHandler {
	return &GigHandler{service: service, validator: validate}
}

// CreateGig godoc
// @Summary      Publish a fixed-price gig
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Param        gig body dto.CreateGigRequest true "Gig details"
// @Success      201 {object}  dto.GigResponse
// @Failure      400 {object}  map[string]string "Invalid input"
// @Failure      403 {object}  map[string]string "Forbidden - not a freelancer"
// @Router       /gigs [post]
// @Security     BearerAuth
func (h *GigHandler) CreateGig(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateGigRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.FreelancerID = userID

	gig, err := h.service.CreateGig(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create gig")
		return
	}
	c.JSON(http.StatusCreated, MapGigModelToResponse(gig))
}

// ListGigs godoc
// @Summary      List gigs
// @Tags         gigs
// @Produce      json
// @Param        freelancer_id query string false "Filter by freelancer" Format(uuid)
// @Param        tag query string false "Filter by tag"
// @Param        q query string false "Text search"
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.GigResponse
// @Router       /gigs [get]
// @Security     BearerAuth
func (h *GigHandler) ListGigs(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ListGigsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	gigs, err := h.service.ListGigs(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "retrieve gigs")
		return
	}
	resp := make([]dto.GigResponse, 0, len(gigs))
	for i := range gigs {
		resp = append(resp, MapGigModelToResponse(&gigs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetGig godoc
// @Summary      Get a gig by ID
// @Tags         gigs
// @Produce      json
// @Param        id path      string true  "Gig ID" Format(uuid)
// @Success      200 {object}  dto.GigResponse
// @Failure      404 {object}  map[string]string "Gig Not Found"
// @Router       /gigs/{id} [get]
// @Security     BearerAuth
func (h *GigHandler) GetGig(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "gig")
	if !ok {
		return
	}

	gig, err := h.service.GetGig(c.Request.Context(), &dto.GetGigRequest{ID: id, UserID: userID})
	if err != nil {
		respondError(c, err, "retrieve gig")
		return
	}
	c.JSON(http.StatusOK, MapGigModelToResponse(gig))
}

// UpdateGig godoc
// @Summary      Update a gig
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Gig ID" Format(uuid)
// @Param        body body dto.UpdateGigRequest true "Fields to change"
// @Success      200 {object}  dto.GigResponse
// @Failure      400 {object}  map[string]string "Invalid input"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /gigs/{id} [patch]
// @Security     BearerAuth
func (h *GigHandler) UpdateGig(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "gig")
	if !ok {
		return
	}
	var req dto.UpdateGigRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	if req.Title == nil && req.Description == nil && req.Price == nil && req.DeliveryDays == nil && req.Tags == nil && req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field must be provided for update"})
		return
	}
	req.ID = id
	req.UserID = userID

	gig, err := h.service.UpdateGig(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update gig")
		return
	}
	c.JSON(http.StatusOK, MapGigModelToResponse(gig))
}

// DeleteGig godoc
// @Summary      Delete a gig
// @Tags         gigs
// @Param        id path      string true  "Gig ID" Format(uuid)
// @Success      204 "No Content"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /gigs/{id} [delete]
// @Security     BearerAuth
func (h *GigHandler) DeleteGig(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "gig")
	if !ok {
		return
	}

	if err := h.service.DeleteGig(c.Request.Context(), &dto.DeleteGigRequest{ID: id, UserID: userID}); err != nil {
		respondError(c, err, "delete gig")
		return
	}
	c.Status(http.StatusNoContent)
}
