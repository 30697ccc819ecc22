package postgres

import (
	"context"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
)

const portfolioColumns = `id, user_id, headline, about, projects, created_at, updated_at`

// PortfolioRepo stores one portfolio per user; projects live in a JSONB column.
type PortfolioRepo struct {
	db Querier
}

func NewPortfolioRepo(db Querier) *PortfolioRepo {
	return &PortfolioRepo{db: db}
}

var _ storage.PortfolioRepository = (*PortfolioRepo)(nil)

func (r *PortfolioRepo) Create(ctx context.Context, p *models.Portfolio) (*models.Portfolio, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	projects := p.Projects
	if projects == nil {
		projects = []models.PortfolioProject{}
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO portfolios (id, user_id, headline, about, projects, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING `+portfolioColumns,
		id, p.UserID, p.Headline, p.About, projects,
	)
	if err != nil {
		return nil, mapWriteError(err, "create portfolio")
	}
	created, err := collectOne[models.Portfolio](rows)
	if err != nil {
		return nil, mapWriteError(err, "create portfolio")
	}
	return created, nil
}

func (r *PortfolioRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	rows, err := r.db.Query(ctx, `SELECT `+portfolioColumns+` FROM portfolios WHERE user_id = $1`, userID)
	if err != nil {
		return nil, mapReadError(err, "get portfolio")
	}
	p, err := collectOne[models.Portfolio](rows)
	if err != nil {
		return nil, mapReadError(err, "get portfolio")
	}
	return p, nil
}

func (r *PortfolioRepo) Update(ctx context.Context, p *models.Portfolio) (*models.Portfolio, error) {
	projects := p.Projects
	if projects == nil {
		projects = []models.PortfolioProject{}
	}
	rows, err := r.db.Query(ctx, `
		UPDATE portfolios SET headline = $1, about = $2, projects = $3, updated_at = NOW()
		WHERE user_id = $4
		RETURNING `+portfolioColumns,
		p.Headline, p.About, projects, p.UserID,
	)
	if err != nil {
		return nil, mapWriteError(err, "update portfolio")
	}
	updated, err := collectOne[models.Portfolio](rows)
	if err != nil {
		return nil, mapWriteError(err, "update portfolio")
	}
	return updated, nil
}

const resumeColumns = `id, user_id, summary, experience, education, skills, created_at, updated_at`

type ResumeRepo struct {
	db Querier
}

func NewResumeRepo(db Querier) *ResumeRepo {
	return &ResumeRepo{db: db}
}

var _ storage.ResumeRepository = (*ResumeRepo)(nil)

// Upsert creates the user's resume or replaces the existing one.
func (r *ResumeRepo) Upsert(ctx context.Context, res *models.Resume) (*models.Resume, error) {
	experience := res.Experience
	if experience == nil {
		experience = []models.ResumeExperience{}
	}
	education := res.Education
	if education == nil {
		education = []models.ResumeEducation{}
	}
	skills := res.Skills
	if skills == nil {
		skills = []string{}
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO resumes (id, user_id, summary, experience, education, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET summary = EXCLUDED.summary, experience = EXCLUDED.experience,
		    education = EXCLUDED.education, skills = EXCLUDED.skills, updated_at = NOW()
		RETURNING `+resumeColumns,
		uuid.New(), res.UserID, res.Summary, experience, education, skills,
	)
	if err != nil {
		return nil, mapWriteError(err, "upsert resume")
	}
	saved, err := collectOne[models.Resume](rows)
	if err != nil {
		return nil, mapWriteError(err, "upsert resume")
	}
	return saved, nil
}

func (r *ResumeRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Resume, error) {
	rows, err := r.db.Query(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1`, userID)
	if err != nil {
		return nil, mapReadError(err, "get resume")
	}
	res, err := collectOne[models.Resume](rows)
	if err != nil {
		return nil, mapReadError(err, "get resume")
	}
	return res, nil
}

const gigColumns = `id, freelancer_id, title, description, price, delivery_days, tags, active, created_at, updated_at`

// GigRepo implements the storage.GigRepository interface using PostgreSQL.
type GigRepo struct {
	db Querier
}

func NewGigRepo(db Querier) *GigRepo {
	return &GigRepo{db: db}
}

var _ storage.GigRepository = (*GigRepo)(nil)

func (r *GigRepo) Create(ctx context.Context, g *models.Gig) (*models.Gig, error) {
	id := g.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	tags := g.Tags
	if tags == nil {
		tags = []string{}
	}
	rows, err := r.db.Query(ctx, `
		INSERT INTO gigs (id, freelancer_id, title, description, price, delivery_days, tags, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING `+gigColumns,
		id, g.FreelancerID, g.Title, g.Description, g.Price, g.DeliveryDays, tags, g.Active,
	)
	if err != nil {
		return nil, mapWriteError(err, "create gig")
	}
	created, err := collectOne[models.Gig](rows)
	if err != nil {
		return nil, mapWriteError(err, "create gig")
	}
	return created, nil
}

func (r *GigRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Gig, error) {
	rows, err := r.db.Query(ctx, `SELECT `+gigColumns+` FROM gigs WHERE id = $1`, id)
	if err != nil {
		return nil, mapReadError(err, "get gig")
	}
	g, err := collectOne[models.Gig](rows)
	if err != nil {
		return nil, mapReadError(err, "get gig")
	}
	return g, nil
}

func (r *GigRepo) List(ctx context.Context, f storage.GigFilter) ([]models.Gig, error) {
	var q listQuery
	if !f.IncludeInactive {
		q.conditions = append(q.conditions, "active = TRUE")
	}
	if f.FreelancerID != nil {
		q.add("freelancer_id = $%d", *f.FreelancerID)
	}
	if f.Tag != "" {
		q.add("EXISTS (SELECT 1 FROM unnest(tags) t WHERE lower(t) = lower($%d))", f.Tag)
	}
	if f.Query != "" {
		q.add("(title ILIKE '%%' || $%[1]d || '%%' OR description ILIKE '%%' || $%[1]d || '%%')", f.Query)
	}
	query := q.build(`SELECT `+gigColumns+` FROM gigs`, "created_at DESC, id", f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, q.args...)
	if err != nil {
		return nil, mapReadError(err, "list gigs")
	}
	return collect[models.Gig](rows, "gigs")
}

func (r *GigRepo) Update(ctx context.Context, g *models.Gig) (*models.Gig, error) {
	tags := g.Tags
	if tags == nil {
		tags = []string{}
	}
	rows, err := r.db.Query(ctx, `
		UPDATE gigs SET title = $1, description = $2, price = $3, delivery_days = $4, tags = $5, active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+gigColumns,
		g.Title, g.Description, g.Price, g.DeliveryDays, tags, g.Active, g.ID,
	)
	if err != nil {
		return nil, mapWriteError(err, "update gig")
	}
	updated, err := collectOne[models.Gig](rows)
	if err != nil {
		return nil, mapWriteError(err, "update gig")
	}
	return updated, nil
}

func (r *GigRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM gigs WHERE id = $1`, id)
	if err != nil {
		return mapWriteError(err, "delete gig")
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
