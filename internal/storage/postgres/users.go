package postgres

import (
	"context"
	"strings"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const userColumns = `id, name, email, password_hash, role, bio, skills, hourly_rate, portfolio_link, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	id := user.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}

	rows, err := r.db.Query(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, bio, skills, hourly_rate, portfolio_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING `+userColumns,
		id, user.Name, strings.ToLower(user.Email), user.PasswordHash, user.Role,
		user.Bio, skills, user.HourlyRate, user.PortfolioLink,
	)
	if err != nil {
		return nil, mapWriteError(err, "create user")
	}
	created, err := collectOne[models.User](rows)
	if err != nil {
		log.WithError(err).WithField("email", user.Email).Warn("Error creating user")
		return nil, mapWriteError(err, "create user")
	}
	return created, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, mapReadError(err, "get user")
	}
	user, err := collectOne[models.User](rows)
	if err != nil {
		return nil, mapReadError(err, "get user")
	}
	return user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
	if err != nil {
		return nil, mapReadError(err, "get user by email")
	}
	user, err := collectOne[models.User](rows)
	if err != nil {
		return nil, mapReadError(err, "get user by email")
	}
	return user, nil
}

// Update rewrites the editable profile fields.
func (r *UserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	rows, err := r.db.Query(ctx, `
		UPDATE users
		SET name = $1, bio = $2, skills = $3, hourly_rate = $4, portfolio_link = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+userColumns,
		user.Name, user.Bio, skills, user.HourlyRate, user.PortfolioLink, user.ID,
	)
	if err != nil {
		return nil, mapWriteError(err, "update user")
	}
	updated, err := collectOne[models.User](rows)
	if err != nil {
		return nil, mapWriteError(err, "update user")
	}
	return updated, nil
}
