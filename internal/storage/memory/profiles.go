package memory

import (
	"context"
	"strings"
	"time"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
)

// Messages --------------------------------------------------------------------

type messageRepo struct{ s *Store }

func (r *messageRepo) Create(_ context.Context, message *models.Message) (*models.Message, error) {
	d, unlock := r.s.write()
	defer unlock()

	if _, ok := d.contracts.get(message.ContractID); !ok {
		return nil, storage.ErrConflict
	}
	m := *message
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now().UTC()
	d.messages.put(m.ID, m)
	return &m, nil
}

func (r *messageRepo) ListByContract(_ context.Context, contractID uuid.UUID, limit, offset int) ([]models.Message, error) {
	d, unlock := r.s.read()
	defer unlock()

	out := []models.Message{}
	for _, m := range d.messages.all() {
		if m.ContractID == contractID {
			out = append(out, m)
		}
	}
	return page(out, limit, offset), nil
}

// Notifications ---------------------------------------------------------------

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Create(_ context.Context, notification *models.Notification) (*models.Notification, error) {
	d, unlock := r.s.write()
	defer unlock()

	if _, ok := d.users.get(notification.UserID); !ok {
		return nil, storage.ErrConflict
	}
	n := *notification
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.CreatedAt = time.Now().UTC()
	d.notifications.put(n.ID, n)
	return &n, nil
}

func (r *notificationRepo) List(_ context.Context, f storage.NotificationFilter) ([]models.Notification, error) {
	d, unlock := r.s.read()
	defer unlock()

	out := []models.Notification{}
	for _, n := range reverse(d.notifications.all()) {
		if n.UserID != f.UserID || (f.UnreadOnly && n.Read) {
			continue
		}
		out = append(out, n)
	}
	return page(out, f.Limit, f.Offset), nil
}

func (r *notificationRepo) MarkRead(_ context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	d, unlock := r.s.write()
	defer unlock()

	var updated int64
	now := time.Now().UTC()
	for _, id := range ids {
		n, ok := d.notifications.get(id)
		if !ok || n.UserID != userID || n.Read {
			continue
		}
		n.Read = true
		n.ReadAt = &now
		d.notifications.put(id, n)
		updated++
	}
	return updated, nil
}

func (r *notificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	d, unlock := r.s.write()
	defer unlock()

	var updated int64
	now := time.Now().UTC()
	for _, n := range d.notifications.all() {
		if n.UserID != userID || n.Read {
			continue
		}
		n.Read = true
		n.ReadAt = &now
		d.notifications.put(n.ID, n)
		updated++
	}
	return updated, nil
}

// Portfolios ------------------------------------------------------------------

type portfolioRepo struct{ s *Store }

func (r *portfolioRepo) Create(_ context.Context, portfolio *models.Portfolio) (*models.Portfolio, error) {
	d, unlock := r.s.write()
	defer unlock()

	for _, existing := range d.portfolios.rows {
		if existing.UserID == portfolio.UserID {
			return nil, storage.ErrConflict
		}
	}
	p := *portfolio
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	d.portfolios.put(p.ID, p)
	return &p, nil
}

func (r *portfolioRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	d, unlock := r.s.read()
	defer unlock()

	for _, p := range d.portfolios.all() {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *portfolioRepo) Update(_ context.Context, portfolio *models.Portfolio) (*models.Portfolio, error) {
	d, unlock := r.s.write()
	defer unlock()

	for _, existing := range d.portfolios.all() {
		if existing.UserID != portfolio.UserID {
			continue
		}
		existing.Headline = portfolio.Headline
		existing.About = portfolio.About
		existing.Projects = portfolio.Projects
		existing.UpdatedAt = time.Now().UTC()
		d.portfolios.put(existing.ID, existing)
		return &existing, nil
	}
	return nil, storage.ErrNotFound
}

// Resumes ---------------------------------------------------------------------

type resumeRepo struct{ s *Store }

func (r *resumeRepo) Upsert(_ context.Context, resume *models.Resume) (*models.Resume, error) {
	d, unlock := r.s.write()
	defer unlock()

	now := time.Now().UTC()
	res := *resume
	res.ID = uuid.New()
	res.CreatedAt = now
	for _, existing := range d.resumes.all() {
		if existing.UserID == resume.UserID {
			res.ID = existing.ID
			res.CreatedAt = existing.CreatedAt
			break
		}
	}
	res.UpdatedAt = now
	d.resumes.put(res.ID, res)
	return &res, nil
}

func (r *resumeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Resume, error) {
	d, unlock := r.s.read()
	defer unlock()

	for _, res := range d.resumes.all() {
		if res.UserID == userID {
			return &res, nil
		}
	}
	return nil, storage.ErrNotFound
}

// Gigs ------------------------------------------------------------------------

type gigRepo struct{ s *Store }

func (r *gigRepo) Create(_ context.Context, gig *models.Gig) (*models.Gig, error) {
	d, unlock := r.s.write()
	defer unlock()

	g := *gig
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	now := time.Now().UTC()
	g.CreatedAt, g.UpdatedAt = now, now
	d.gigs.put(g.ID, g)
	return &g, nil
}

func (r *gigRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Gig, error) {
	d, unlock := r.s.read()
	defer unlock()

	g, ok := d.gigs.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &g, nil
}

func (r *gigRepo) List(_ context.Context, f storage.GigFilter) ([]models.Gig, error) {
	d, unlock := r.s.read()
	defer unlock()

	query := strings.ToLower(f.Query)
	out := []models.Gig{}
	for _, g := range reverse(d.gigs.all()) {
		if !f.IncludeInactive && !g.Active {
			continue
		}
		if f.FreelancerID != nil && g.FreelancerID != *f.FreelancerID {
			continue
		}
		if f.Tag != "" && !containsFold(g.Tags, f.Tag) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(g.Title), query) &&
			!strings.Contains(strings.ToLower(g.Description), query) {
			continue
		}
		out = append(out, g)
	}
	return page(out, f.Limit, f.Offset), nil
}

func (r *gigRepo) Update(_ context.Context, gig *models.Gig) (*models.Gig, error) {
	d, unlock := r.s.write()
	defer unlock()

	existing, ok := d.gigs.get(gig.ID)
	if !ok {
		return nil, storage.ErrNotFound
	}
	existing.Title = gig.Title
	existing.Description = gig.Description
	existing.Price = gig.Price
	existing.DeliveryDays = gig.DeliveryDays
	existing.Tags = gig.Tags
	existing.Active = gig.Active
	existing.UpdatedAt = time.Now().UTC()
	d.gigs.put(existing.ID, existing)
	return &existing, nil
}

func (r *gigRepo) Delete(_ context.Context, id uuid.UUID) error {
	d, unlock := r.s.write()
	defer unlock()

	if !d.gigs.remove(id) {
		return storage.ErrNotFound
	}
	return nil
}
