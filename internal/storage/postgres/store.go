package postgres

import (
	"context"
	"fmt"

	"assuredgig/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository
// can run inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Store implements storage.Store on a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
	db   Querier
	tx   pgx.Tx
}

var _ storage.Store = (*Store)(nil)

// NewStore creates a Store backed by the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, db: pool}
}

// InTx begins a transaction, hands a transaction-scoped Store to fn and
// commits when fn succeeds. Nested calls reuse the outer transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		log.WithError(err).Error("InTx: error beginning transaction")
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	if err := fn(&Store{pool: s.pool, db: tx, tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.WithError(err).Error("InTx: error committing transaction")
		return fmt.Errorf("internal error committing changes: %w", err)
	}
	return nil
}

func (s *Store) Users() storage.UserRepository                 { return NewUserRepo(s.db) }
func (s *Store) Jobs() storage.JobRepository                   { return NewJobRepo(s.db) }
func (s *Store) Proposals() storage.ProposalRepository         { return NewProposalRepo(s.db) }
func (s *Store) Contracts() storage.ContractRepository         { return NewContractRepo(s.db) }
func (s *Store) Milestones() storage.MilestoneRepository       { return NewMilestoneRepo(s.db) }
func (s *Store) Payments() storage.PaymentRepository           { return NewPaymentRepo(s.db) }
func (s *Store) Messages() storage.MessageRepository           { return NewMessageRepo(s.db) }
func (s *Store) Notifications() storage.NotificationRepository { return NewNotificationRepo(s.db) }
func (s *Store) Portfolios() storage.PortfolioRepository       { return NewPortfolioRepo(s.db) }
func (s *Store) Resumes() storage.ResumeRepository             { return NewResumeRepo(s.db) }
func (s *Store) Gigs() storage.GigRepository                   { return NewGigRepo(s.db) }
