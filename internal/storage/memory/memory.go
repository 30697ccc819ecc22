// Package memory provides an in-process implementation of storage.Store. It is
// safe for concurrent use and is intended for tests and local development.
package memory

import (
	"context"
	"sync"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
)

// table keeps rows by id plus their insertion order.
type table[T any] struct {
	rows  map[uuid.UUID]T
	order []uuid.UUID
	copy  func(T) T
}

func newTable[T any](copyFn func(T) T) *table[T] {
	if copyFn == nil {
		copyFn = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[uuid.UUID]T), copy: copyFn}
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{
		rows:  make(map[uuid.UUID]T, len(t.rows)),
		order: append([]uuid.UUID(nil), t.order...),
		copy:  t.copy,
	}
	for id, row := range t.rows {
		c.rows[id] = row
	}
	return c
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	return t.copy(row), true
}

func (t *table[T]) put(id uuid.UUID, row T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.copy(row)
}

func (t *table[T]) remove(id uuid.UUID) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// all returns copies of every row, oldest first.
func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.copy(t.rows[id]))
	}
	return out
}

type data struct {
	users         *table[models.User]
	jobs          *table[models.Job]
	proposals     *table[models.Proposal]
	contracts     *table[models.Contract]
	milestones    *table[models.Milestone]
	payments      *table[models.Payment]
	messages      *table[models.Message]
	notifications *table[models.Notification]
	portfolios    *table[models.Portfolio]
	resumes       *table[models.Resume]
	gigs          *table[models.Gig]
}

func newData() *data {
	return &data{
		users: newTable(func(u models.User) models.User {
			u.Skills = cloneStrings(u.Skills)
			return u
		}),
		jobs: newTable(func(j models.Job) models.Job {
			j.Skills = cloneStrings(j.Skills)
			return j
		}),
		proposals:     newTable[models.Proposal](nil),
		contracts:     newTable[models.Contract](nil),
		milestones:    newTable[models.Milestone](nil),
		payments:      newTable[models.Payment](nil),
		messages:      newTable[models.Message](nil),
		notifications: newTable[models.Notification](nil),
		portfolios: newTable(func(p models.Portfolio) models.Portfolio {
			p.Projects = append([]models.PortfolioProject(nil), p.Projects...)
			return p
		}),
		resumes: newTable(func(r models.Resume) models.Resume {
			r.Experience = append([]models.ResumeExperience(nil), r.Experience...)
			r.Education = append([]models.ResumeEducation(nil), r.Education...)
			r.Skills = cloneStrings(r.Skills)
			return r
		}),
		gigs: newTable(func(g models.Gig) models.Gig {
			g.Tags = cloneStrings(g.Tags)
			return g
		}),
	}
}

func (d *data) clone() *data {
	return &data{
		users:         d.users.clone(),
		jobs:          d.jobs.clone(),
		proposals:     d.proposals.clone(),
		contracts:     d.contracts.clone(),
		milestones:    d.milestones.clone(),
		payments:      d.payments.clone(),
		messages:      d.messages.clone(),
		notifications: d.notifications.clone(),
		portfolios:    d.portfolios.clone(),
		resumes:       d.resumes.clone(),
		gigs:          d.gigs.clone(),
	}
}

type database struct {
	mu   sync.RWMutex
	data *data
}

// Store is the in-memory storage.Store. A transaction holds the write lock
// for its whole duration and restores a snapshot if it fails.
type Store struct {
	db   *database
	inTx bool
}

var _ storage.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{db: &database{data: newData()}}
}

func (s *Store) read() (*data, func()) {
	if s.inTx {
		return s.db.data, func() {}
	}
	s.db.mu.RLock()
	return s.db.data, s.db.mu.RUnlock
}

func (s *Store) write() (*data, func()) {
	if s.inTx {
		return s.db.data, func() {}
	}
	s.db.mu.Lock()
	return s.db.data, s.db.mu.Unlock
}

func (s *Store) InTx(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	snapshot := s.db.data.clone()
	if err := fn(&Store{db: s.db, inTx: true}); err != nil {
		s.db.data = snapshot
		return err
	}
	return nil
}

func (s *Store) Users() storage.UserRepository                 { return &userRepo{s} }
func (s *Store) Jobs() storage.JobRepository                   { return &jobRepo{s} }
func (s *Store) Proposals() storage.ProposalRepository         { return &proposalRepo{s} }
func (s *Store) Contracts() storage.ContractRepository         { return &contractRepo{s} }
func (s *Store) Milestones() storage.MilestoneRepository       { return &milestoneRepo{s} }
func (s *Store) Payments() storage.PaymentRepository           { return &paymentRepo{s} }
func (s *Store) Messages() storage.MessageRepository           { return &messageRepo{s} }
func (s *Store) Notifications() storage.NotificationRepository { return &notificationRepo{s} }
func (s *Store) Portfolios() storage.PortfolioRepository       { return &portfolioRepo{s} }
func (s *Store) Resumes() storage.ResumeRepository             { return &resumeRepo{s} }
func (s *Store) Gigs() storage.GigRepository                   { return &gigRepo{s} }

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

// page applies limit/offset to an already ordered slice. A non-positive limit
// means no limit.
func page[T any](rows []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func reverse[T any](rows []T) []T {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}
