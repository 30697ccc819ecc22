package postgres

import (
	"context"
	"errors"
	"time"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contractColumns = `id, job_id, proposal_id, client_id, freelancer_id, amount, status, created_at, updated_at`

// ContractRepo implements storage.ContractRepository. Unique indexes on
// job_id and proposal_id guarantee one contract per accepted proposal.
type ContractRepo struct {
	db Querier
}

func NewContractRepo(db Querier) *ContractRepo {
	return &ContractRepo{db: db}
}

var _ storage.ContractRepository = (*ContractRepo)(nil)

func (r *ContractRepo) Create(ctx context.Context, c *models.Contract) (*models.Contract, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := c.Status
	if status == "" {
		status = models.ContractStatusPending
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO contracts (id, job_id, proposal_id, client_id, freelancer_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING `+contractColumns,
		id, c.JobID, c.ProposalID, c.ClientID, c.FreelancerID, c.Amount, status,
	)
	if err != nil {
		return nil, mapWriteError(err, "create contract")
	}
	created, err := collectOne[models.Contract](rows)
	if err != nil {
		return nil, mapWriteError(err, "create contract")
	}
	return created, nil
}

func (r *ContractRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)
	if err != nil {
		return nil, mapReadError(err, "get contract")
	}
	c, err := collectOne[models.Contract](rows)
	if err != nil {
		return nil, mapReadError(err, "get contract")
	}
	return c, nil
}

func (r *ContractRepo) GetByJobID(ctx context.Context, jobID uuid.UUID) (*models.Contract, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contractColumns+` FROM contracts WHERE job_id = $1`, jobID)
	if err != nil {
		return nil, mapReadError(err, "get contract by job")
	}
	c, err := collectOne[models.Contract](rows)
	if err != nil {
		return nil, mapReadError(err, "get contract by job")
	}
	return c, nil
}

func (r *ContractRepo) List(ctx context.Context, f storage.ContractFilter) ([]models.Contract, error) {
	var q listQuery
	q.add("(client_id = $%[1]d OR freelancer_id = $%[1]d)", f.ParticipantID)
	if f.Status != nil {
		q.add("status = $%d", *f.Status)
	}
	query := q.build(`SELECT `+contractColumns+` FROM contracts`, "created_at DESC, id", f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, mapReadError(err, "list contracts")
	}
	return collect[models.Contract](rows, "contracts")
}

func (r *ContractRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.ContractStatus) (*models.Contract, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE contracts SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING `+contractColumns,
		to, id, from,
	)
	if err != nil {
		return nil, mapWriteError(err, "transition contract status")
	}
	updated, err := collectOne[models.Contract](rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, storage.ErrStaleState
		}
		return nil, mapWriteError(err, "transition contract status")
	}
	return updated, nil
}

const milestoneColumns = `id, contract_id, description, amount, status, completed_at, created_at, updated_at`

// MilestoneRepo implements the storage.MilestoneRepository interface using PostgreSQL.
type MilestoneRepo struct {
	db Querier
}

func NewMilestoneRepo(db Querier) *MilestoneRepo {
	return &MilestoneRepo{db: db}
}

var _ storage.MilestoneRepository = (*MilestoneRepo)(nil)

func (r *MilestoneRepo) Create(ctx context.Context, m *models.Milestone) (*models.Milestone, error) {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := m.Status
	if status == "" {
		status = models.MilestoneStatusPending
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO milestones (id, contract_id, description, amount, status, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING `+milestoneColumns,
		id, m.ContractID, m.Description, m.Amount, status, m.CompletedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "create milestone")
	}
	created, err := collectOne[models.Milestone](rows)
	if err != nil {
		return nil, mapWriteError(err, "create milestone")
	}
	return created, nil
}

func (r *MilestoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Milestone, error) {
	rows, err := r.db.Query(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE id = $1`, id)
	if err != nil {
		return nil, mapReadError(err, "get milestone")
	}
	m, err := collectOne[models.Milestone](rows)
	if err != nil {
		return nil, mapReadError(err, "get milestone")
	}
	return m, nil
}

func (r *MilestoneRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]models.Milestone, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+milestoneColumns+` FROM milestones WHERE contract_id = $1 ORDER BY created_at, id`, contractID)
	if err != nil {
		return nil, mapReadError(err, "list milestones")
	}
	return collect[models.Milestone](rows, "milestones")
}

func (r *MilestoneRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.MilestoneStatus, completedAt *time.Time) (*models.Milestone, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE milestones SET status = $1, completed_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+milestoneColumns,
		status, completedAt, id,
	)
	if err != nil {
		return nil, mapWriteError(err, "update milestone")
	}
	updated, err := collectOne[models.Milestone](rows)
	if err != nil {
		return nil, mapWriteError(err, "update milestone")
	}
	return updated, nil
}
