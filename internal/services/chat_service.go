package services

import (
	"context"
	"fmt"
	"strings"

	"assuredgig/internal/events"
	"assuredgig/internal/models"
	"assuredgig/internal/storage"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventMessage is the websocket frame type for a new chat line.
const EventMessage = "message"

type chatService struct {
	store  storage.Store
	pusher Pusher
	events events.Publisher
}

// NewChatService creates a new instance of ChatService. pusher may be nil.
func NewChatService(store storage.Store, pusher Pusher, publisher events.Publisher) ChatService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &chatService{store: store, pusher: pusher, events: publisher}
}

func (s *chatService) Authorize(ctx context.Context, contractID, userID uuid.UUID) (*models.Contract, error) {
	return participantContract(ctx, s.store, contractID, userID)
}

func (s *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, fmt.Errorf("%w: message body is empty", ErrValidation)
	}
	contract, err := participantContract(ctx, s.store, req.ContractID, req.SenderID)
	if err != nil {
		return nil, err
	}

	msg, err := s.store.Messages().Create(ctx, &models.Message{
		ContractID: contract.ID,
		SenderID:   req.SenderID,
		Body:       body,
	})
	if err != nil {
		log.WithError(err).WithField("contract_id", contract.ID).Error("SendMessage: failed to store message")
		return nil, MapRepoError(err, "creating message")
	}

	if s.pusher != nil {
		s.pusher.SendToContract(ctx, contract.ID, contract.ClientID, contract.FreelancerID, EventMessage, msg)
	}

	recipient := contract.ClientID
	if recipient == req.SenderID {
		recipient = contract.FreelancerID
	}
	s.events.Publish(events.TopicMessageSent, events.MessageSent{
		MessageID:   msg.ID,
		ContractID:  contract.ID,
		SenderID:    msg.SenderID,
		RecipientID: recipient,
		Body:        msg.Body,
		CreatedAt:   msg.CreatedAt,
	})
	return msg, nil
}

// ListMessages returns the contract's chat history, oldest first.
func (s *chatService) ListMessages(ctx context.Context, req *dto.ListMessagesRequest) ([]models.Message, error) {
	contract, err := participantContract(ctx, s.store, req.ContractID, req.UserID)
	if err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	messages, err := s.store.Messages().ListByContract(ctx, contract.ID, limit, offset)
	if err != nil {
		return nil, MapRepoError(err, "listing messages")
	}
	return messages, nil
}
