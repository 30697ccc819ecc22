package services

import (
	"context"
	"fmt"

	"assuredgig/internal/models"
	"assuredgig/internal/realtime"
	"assuredgig/internal/storage"
	"assuredgig/internal/transport/dto"

	log "github.com/sirupsen/logrus"
)

// EventNotification is the websocket frame type for a pushed notification.
const EventNotification = "notification"

var _ Pusher = (*realtime.Hub)(nil)

type notificationService struct {
	store  storage.Store
	pusher Pusher
}

// NewNotificationService creates a new instance of NotificationService. pusher may be nil.
func NewNotificationService(store storage.Store, pusher Pusher) NotificationService {
	return &notificationService{store: store, pusher: pusher}
}

func (s *notificationService) List(ctx context.Context, req *dto.ListNotificationsRequest) ([]models.Notification, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	limit, offset := normalizePage(limit, req.Offset)
	list, err := s.store.Notifications().List(ctx, storage.NotificationFilter{
		UserID:     req.UserID,
		UnreadOnly: req.Unread,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, MapRepoError(err, "listing notifications")
	}
	return list, nil
}

// Create is the admin entry point; only SYSTEM notifications may be created directly.
func (s *notificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	kind := req.Type
	if kind == "" {
		kind = models.NotificationSystem
	}
	if kind != models.NotificationSystem {
		return nil, fmt.Errorf("%w: only SYSTEM notifications can be created", ErrValidation)
	}
	if _, err := s.store.Users().GetByID(ctx, req.UserID); err != nil {
		return nil, MapRepoError(err, "fetching notification recipient")
	}
	return s.Notify(ctx, &models.Notification{
		UserID: req.UserID,
		Type:   kind,
		Title:  req.Title,
		Body:   req.Body,
	})
}

func (s *notificationService) MarkRead(ctx context.Context, req *dto.MarkNotificationsReadRequest) (int64, error) {
	var (
		n   int64
		err error
	)
	if req.All {
		n, err = s.store.Notifications().MarkAllRead(ctx, req.UserID)
	} else {
		if len(req.IDs) == 0 {
			return 0, fmt.Errorf("%w: ids or all is required", ErrValidation)
		}
		n, err = s.store.Notifications().MarkRead(ctx, req.UserID, req.IDs)
	}
	if err != nil {
		return 0, MapRepoError(err, "marking notifications read")
	}
	return n, nil
}

func (s *notificationService) Notify(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	created, err := s.store.Notifications().Create(ctx, n)
	if err != nil {
		log.WithError(err).Errorf("Notify: Error storing %s notification for user %s", n.Type, n.UserID)
		return nil, MapRepoError(err, "creating notification")
	}
	if s.pusher != nil {
		s.pusher.SendToUser(ctx, created.UserID, realtime.ChannelNotifications, EventNotification, created)
	}
	return created, nil
}
