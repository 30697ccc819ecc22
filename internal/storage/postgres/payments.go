package postgres

import (
	"context"
	"errors"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, contract_id, payer_id, amount, currency, provider, gateway_order_id, gateway_payment_id, client_secret, status, created_at, updated_at`

// PaymentRepo implements the storage.PaymentRepository interface using PostgreSQL.
type PaymentRepo struct {
	db Querier
}

func NewPaymentRepo(db Querier) *PaymentRepo {
	return &PaymentRepo{db: db}
}

var _ storage.PaymentRepository = (*PaymentRepo)(nil)

func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := p.Status
	if status == "" {
		status = models.PaymentStatusPending
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO payments (id, contract_id, payer_id, amount, currency, provider, gateway_order_id, gateway_payment_id, client_secret, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING `+paymentColumns,
		id, p.ContractID, p.PayerID, p.Amount, p.Currency, p.Provider, p.GatewayOrderID, p.GatewayPaymentID, p.ClientSecret, status,
	)
	if err != nil {
		return nil, mapWriteError(err, "create payment")
	}
	created, err := collectOne[models.Payment](rows)
	if err != nil {
		return nil, mapWriteError(err, "create payment")
	}
	return created, nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	if err != nil {
		return nil, mapReadError(err, "get payment")
	}
	p, err := collectOne[models.Payment](rows)
	if err != nil {
		return nil, mapReadError(err, "get payment")
	}
	return p, nil
}

func (r *PaymentRepo) GetByGatewayOrderID(ctx context.Context, provider models.PaymentProvider, orderID string) (*models.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE provider = $1 AND gateway_order_id = $2`, provider, orderID)
	if err != nil {
		return nil, mapReadError(err, "get payment by order")
	}
	p, err := collectOne[models.Payment](rows)
	if err != nil {
		return nil, mapReadError(err, "get payment by order")
	}
	return p, nil
}

func (r *PaymentRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]models.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE contract_id = $1 ORDER BY created_at DESC, id`, contractID)
	if err != nil {
		return nil, mapReadError(err, "list payments")
	}
	return collect[models.Payment](rows, "payments")
}

func (r *PaymentRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.PaymentStatus, gatewayPaymentID *string) (*models.Payment, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE payments SET status = $1, gateway_payment_id = COALESCE($2, gateway_payment_id), updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING `+paymentColumns,
		to, gatewayPaymentID, id, from,
	)
	if err != nil {
		return nil, mapWriteError(err, "transition payment status")
	}
	updated, err := collectOne[models.Payment](rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, storage.ErrStaleState
		}
		return nil, mapWriteError(err, "transition payment status")
	}
	return updated, nil
}
