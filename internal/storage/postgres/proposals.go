package postgres

import (
	"context"
	"errors"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const proposalColumns = `id, job_id, freelancer_id, cover_letter, bid_amount, status, feedback, created_at, updated_at`

// ProposalRepo implements the storage.ProposalRepository interface using PostgreSQL.
type ProposalRepo struct {
	db Querier
}

func NewProposalRepo(db Querier) *ProposalRepo {
	return &ProposalRepo{db: db}
}

var _ storage.ProposalRepository = (*ProposalRepo)(nil)

// Create inserts a proposal; the (job_id, freelancer_id) unique index rejects a second bid.
func (r *ProposalRepo) Create(ctx context.Context, p *models.Proposal) (*models.Proposal, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := p.Status
	if status == "" {
		status = models.ProposalStatusPending
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO proposals (id, job_id, freelancer_id, cover_letter, bid_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING `+proposalColumns,
		id, p.JobID, p.FreelancerID, p.CoverLetter, p.BidAmount, status,
	)
	if err != nil {
		return nil, mapWriteError(err, "create proposal")
	}
	created, err := collectOne[models.Proposal](rows)
	if err != nil {
		return nil, mapWriteError(err, "create proposal")
	}
	return created, nil
}

func (r *ProposalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error) {
	rows, err := r.db.Query(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE id = $1`, id)
	if err != nil {
		return nil, mapReadError(err, "get proposal")
	}
	p, err := collectOne[models.Proposal](rows)
	if err != nil {
		return nil, mapReadError(err, "get proposal")
	}
	return p, nil
}

func (r *ProposalRepo) List(ctx context.Context, f storage.ProposalFilter) ([]models.Proposal, error) {
	var q listQuery
	if f.JobID != nil {
		q.add("job_id = $%d", *f.JobID)
	}
	if f.FreelancerID != nil {
		q.add("freelancer_id = $%d", *f.FreelancerID)
	}
	if f.Status != nil {
		q.add("status = $%d", *f.Status)
	}
	query := q.build(`SELECT `+proposalColumns+` FROM proposals`, "created_at DESC, id", f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, mapReadError(err, "list proposals")
	}
	return collect[models.Proposal](rows, "proposals")
}

// Update edits the bid while the proposal is still PENDING.
func (r *ProposalRepo) Update(ctx context.Context, p *models.Proposal) (*models.Proposal, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE proposals SET cover_letter = $1, bid_amount = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'PENDING'
		RETURNING `+proposalColumns,
		p.CoverLetter, p.BidAmount, p.ID,
	)
	if err != nil {
		return nil, mapWriteError(err, "update proposal")
	}
	updated, err := collectOne[models.Proposal](rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.staleOrMissing(ctx, p.ID)
		}
		return nil, mapWriteError(err, "update proposal")
	}
	return updated, nil
}

func (r *ProposalRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.ProposalStatus, feedback *string) (*models.Proposal, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE proposals SET status = $1, feedback = COALESCE($2, feedback), updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING `+proposalColumns,
		to, feedback, id, from,
	)
	if err != nil {
		return nil, mapWriteError(err, "transition proposal status")
	}
	updated, err := collectOne[models.Proposal](rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.staleOrMissing(ctx, id)
		}
		return nil, mapWriteError(err, "transition proposal status")
	}
	return updated, nil
}

func (r *ProposalRepo) staleOrMissing(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return storage.ErrStaleState
}

func (r *ProposalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM proposals WHERE id = $1`, id)
	if err != nil {
		return mapWriteError(err, "delete proposal")
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
