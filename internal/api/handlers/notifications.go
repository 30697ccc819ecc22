package handlers

import (
	"net/http"

	"assuredgig/internal/realtime"
	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type NotificationHandler struct {
	service   services.NotificationService
	sockets   SocketServer
	upgrader  *websocket.Upgrader
	validator *validator.Validate
}

func NewNotificationHandler(service services.NotificationService, sockets SocketServer, upgrader *websocket.Upgrader, validate *validator.Validate) *NotificationHandler {
	return &NotificationHandler{service: service, sockets: sockets, upgrader: upgrader, validator: validate}
}

// ListNotifications returns the caller's notifications, newest first. ?unread=true filters.
// @Tags         notifications
// @Produce      json
// @Param        unread query bool false "Only unread"
// @Param        limit query int false "Pagination limit" default(20)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.NotificationResponse
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ListNotificationsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	list, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "retrieve notifications")
		return
	}
	resp := make([]dto.NotificationResponse, 0, len(list))
	for i := range list {
		resp = append(resp, MapNotificationModelToResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateNotification sends a SYSTEM notification to a user. Admin only.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateNotificationRequest true "Notification"
// @Success      201 {object}  dto.NotificationResponse
// @Failure      403 {object}  map[string]string "Forbidden - not an admin"
// @Router       /notifications [post]
// @Security     BearerAuth
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	n, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create notification")
		return
	}
	c.JSON(http.StatusCreated, MapNotificationModelToResponse(n))
}

// MarkRead godoc
// @Summary      Mark notifications read
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body body dto.MarkNotificationsReadRequest true "IDs or all"
// @Success      200 {object}  dto.MarkReadResponse
// @Failure      400 {object}  map[string]string "Neither ids nor all given"
// @Router       /notifications [patch]
// @Security     BearerAuth
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.MarkNotificationsReadRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	updated, err := h.service.MarkRead(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "mark notifications read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkReadResponse{Updated: updated})
}

// Connect streams the caller's notifications over a websocket. Inbound frames are ignored.
// @Tags         notifications
// @Param        access_token query string false "Access token for browsers that cannot set headers"
// @Success      101 "Switching Protocols"
// @Router       /notifications/ws [get]
// @Security     BearerAuth
func (h *NotificationHandler) Connect(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.sockets.Serve(h.upgrader, c.Writer, c.Request, userID, realtime.ChannelNotifications, nil); err != nil {
		log.WithError(err).Debug("Notification socket: upgrade failed")
	}
}
