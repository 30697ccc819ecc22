package postgres

import (
	"context"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
)

const messageColumns = `id, contract_id, sender_id, body, created_at`

// MessageRepo implements the storage.MessageRepository interface using PostgreSQL.
type MessageRepo struct {
	db Querier
}

func NewMessageRepo(db Querier) *MessageRepo {
	return &MessageRepo{db: db}
}

var _ storage.MessageRepository = (*MessageRepo)(nil)

func (r *MessageRepo) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO messages (id, contract_id, sender_id, body, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING `+messageColumns,
		id, m.ContractID, m.SenderID, m.Body,
	)
	if err != nil {
		return nil, mapWriteError(err, "create message")
	}
	created, err := collectOne[models.Message](rows)
	if err != nil {
		return nil, mapWriteError(err, "create message")
	}
	return created, nil
}

// ListByContract returns the contract's chat history, oldest first.
func (r *MessageRepo) ListByContract(ctx context.Context, contractID uuid.UUID, limit, offset int) ([]models.Message, error) {
	var q listQuery
	q.add("contract_id = $%d", contractID)
	query := q.build(`SELECT `+messageColumns+` FROM messages`, "created_at, id", limit, offset)
	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, mapReadError(err, "list messages")
	}
	return collect[models.Message](rows, "messages")
}

const notificationColumns = `id, user_id, type, title, body, reference_id, is_read, read_at, created_at`

// NotificationRepo implements the storage.NotificationRepository interface using PostgreSQL.
type NotificationRepo struct {
	db Querier
}

func NewNotificationRepo(db Querier) *NotificationRepo {
	return &NotificationRepo{db: db}
}

var _ storage.NotificationRepository = (*NotificationRepo)(nil)

func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	id := n.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO notifications (id, user_id, type, title, body, reference_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING `+notificationColumns,
		id, n.UserID, n.Type, n.Title, n.Body, n.ReferenceID,
	)
	if err != nil {
		return nil, mapWriteError(err, "create notification")
	}
	created, err := collectOne[models.Notification](rows)
	if err != nil {
		return nil, mapWriteError(err, "create notification")
	}
	return created, nil
}

func (r *NotificationRepo) List(ctx context.Context, f storage.NotificationFilter) ([]models.Notification, error) {
	var q listQuery
	q.add("user_id = $%d", f.UserID)
	if f.UnreadOnly {
		q.conditions = append(q.conditions, "is_read = FALSE")
	}
	query := q.build(`SELECT `+notificationColumns+` FROM notifications`, "created_at DESC, id", f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, mapReadError(err, "list notifications")
	}
	return collect[models.Notification](rows, "notifications")
}

func (r *NotificationRepo) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = NOW()
		WHERE user_id = $1 AND id = ANY($2) AND is_read = FALSE`,
		userID, ids,
	)
	if err != nil {
		return 0, mapWriteError(err, "mark notifications read")
	}
	return cmdTag.RowsAffected(), nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = NOW()
		WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	)
	if err != nil {
		return 0, mapWriteError(err, "mark all notifications read")
	}
	return cmdTag.RowsAffected(), nil
}
