package postgres

import (
	"context"
	"errors"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

const jobColumns = `id, client_id, title, description, budget, deadline, skills, status, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db Querier) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	id := job.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := job.Status
	if status == "" {
		status = models.JobStatusOpen
	}
	skills := job.Skills
	if skills == nil {
		skills = []string{}
	}

	rows, err := r.db.Query(ctx, `
		INSERT INTO jobs (id, client_id, title, description, budget, deadline, skills, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING `+jobColumns,
		id, job.ClientID, job.Title, job.Description, job.Budget, job.Deadline, skills, status,
	)
	if err != nil {
		return nil, mapWriteError(err, "create job")
	}
	created, err := collectOne[models.Job](rows)
	if err != nil {
		log.WithError(err).WithField("client_id", job.ClientID).Warn("Error creating job")
		return nil, mapWriteError(err, "create job")
	}

	log.WithField("job_id", created.ID).Debug("Job created")
	return created, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	if err != nil {
		return nil, mapReadError(err, "get job")
	}
	job, err := collectOne[models.Job](rows)
	if err != nil {
		return nil, mapReadError(err, "get job")
	}
	return job, nil
}

// List retrieves jobs matching the filter, newest first.
func (r *JobRepo) List(ctx context.Context, f storage.JobFilter) ([]models.Job, error) {
	var q listQuery
	if f.Status != nil {
		q.add("status = $%d", *f.Status)
	}
	if f.ClientID != nil {
		q.add("client_id = $%d", *f.ClientID)
	}
	if f.Skill != "" {
		q.add("EXISTS (SELECT 1 FROM unnest(skills) s WHERE lower(s) = lower($%d))", f.Skill)
	}
	if f.Query != "" {
		q.add("(title ILIKE '%%' || $%[1]d || '%%' OR description ILIKE '%%' || $%[1]d || '%%')", f.Query)
	}
	if f.MinBudget != nil {
		q.add("budget >= $%d", *f.MinBudget)
	}
	if f.MaxBudget != nil {
		q.add("budget <= $%d", *f.MaxBudget)
	}

	query := q.build(`SELECT `+jobColumns+` FROM jobs`, "created_at DESC, id", f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		log.WithError(err).Error("Error querying jobs")
		return nil, mapReadError(err, "list jobs")
	}
	return collect[models.Job](rows, "jobs")
}

// Update rewrites the editable job details.
func (r *JobRepo) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	skills := job.Skills
	if skills == nil {
		skills = []string{}
	}
	rows, err := r.db.Query(ctx, `
		UPDATE jobs
		SET title = $1, description = $2, budget = $3, deadline = $4, skills = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+jobColumns,
		job.Title, job.Description, job.Budget, job.Deadline, skills, job.ID,
	)
	if err != nil {
		return nil, mapWriteError(err, "update job")
	}
	updated, err := collectOne[models.Job](rows)
	if err != nil {
		return nil, mapWriteError(err, "update job")
	}
	return updated, nil
}

// TransitionStatus updates the status only while the row still holds `from`.
func (r *JobRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.JobStatus) (*models.Job, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE jobs SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING `+jobColumns,
		to, id, from,
	)
	if err != nil {
		return nil, mapWriteError(err, "transition job status")
	}
	updated, err := collectOne[models.Job](rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.staleOrMissing(ctx, id)
		}
		return nil, mapWriteError(err, "transition job status")
	}
	return updated, nil
}

func (r *JobRepo) staleOrMissing(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return storage.ErrStaleState
}

// Delete removes a job by its ID.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return mapWriteError(err, "delete job")
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
