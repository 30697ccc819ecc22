package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"assuredgig/internal/realtime"
	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const socketWriteTimeout = 5 * time.Second

// SocketServer upgrades a request and serves one websocket client on a channel.
type SocketServer interface {
	Serve(upgrader *websocket.Upgrader, w http.ResponseWriter, r *http.Request, userID uuid.UUID, channel string, onMessage realtime.InboundFunc) error
}

// ChatHandler serves contract chat over REST and websockets.
type ChatHandler struct {
	service   services.ChatService
	sockets   SocketServer
	upgrader  *websocket.Upgrader
	validator *validator.Validate
}

func NewChatHandler(service services.ChatService, sockets SocketServer, upgrader *websocket.Upgrader, validate *validator.Validate) *ChatHandler {
	return &ChatHandler{service: service, sockets: sockets, upgrader: upgrader, validator: validate}
}

// ListMessages godoc
// @Summary      List chat messages
// @Description  Oldest first.
// @Tags         chat
// @Produce      json
// @Param        id path      string true  "Contract ID" Format(uuid)
// @Param        limit query int false "Pagination limit" default(50)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.MessageResponse
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /contracts/{id}/chat [get]
// @Security     BearerAuth
func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}
	var req dto.ListMessagesRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}
	req.ContractID = contractID
	req.UserID = userID

	messages, err := h.service.ListMessages(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "retrieve messages")
		return
	}
	resp := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		resp = append(resp, MapMessageModelToResponse(&messages[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// SendMessage godoc
// @Summary      Send a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Contract ID" Format(uuid)
// @Param        body body dto.SendMessageRequest true "Message"
// @Success      201 {object}  dto.MessageResponse
// @Failure      400 {object}  map[string]string "Empty or oversized body"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Router       /contracts/{id}/chat [post]
// @Security     BearerAuth
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.ContractID = contractID
	req.SenderID = userID

	msg, err := h.service.SendMessage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "send message")
		return
	}
	c.JSON(http.StatusCreated, MapMessageModelToResponse(msg))
}

// Connect upgrades to a websocket on the contract's chat channel. Text frames
// of the form {"body": "..."} are stored and broadcast like a POSTed message.
// @Tags         chat
// @Param        id path      string true  "Contract ID" Format(uuid)
// @Param        access_token query string false "Access token for browsers that cannot set headers"
// @Success      101 "Switching Protocols"
// @Router       /contracts/{id}/chat/ws [get]
// @Security     BearerAuth
func (h *ChatHandler) Connect(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}
	if _, err := h.service.Authorize(c.Request.Context(), contractID, userID); err != nil {
		respondError(c, err, "open chat")
		return
	}

	onMessage := func(client *realtime.Client, data []byte) {
		body := strings.TrimSpace(gjson.GetBytes(data, "body").String())
		req := &dto.SendMessageRequest{ContractID: contractID, SenderID: client.UserID, Body: body}
		if err := h.validator.Struct(req); err != nil {
			log.WithField("contract_id", contractID).Debug("Chat socket: dropping invalid frame")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), socketWriteTimeout)
		defer cancel()
		if _, err := h.service.SendMessage(ctx, req); err != nil {
			log.WithError(err).WithField("contract_id", contractID).Warn("Chat socket: failed to store message")
		}
	}

	if err := h.sockets.Serve(h.upgrader, c.Writer, c.Request, userID, realtime.ContractChannel(contractID), onMessage); err != nil {
		// The upgrader has already written the HTTP error.
		log.WithError(err).Debug("Chat socket: upgrade failed")
	}
}
