package memory

import (
	"context"
	"strings"
	"time"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
)

// Users -----------------------------------------------------------------------

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	d, unlock := r.s.write()
	defer unlock()

	email := strings.ToLower(user.Email)
	for _, existing := range d.users.rows {
		if strings.ToLower(existing.Email) == email {
			return nil, storage.ErrDuplicateEmail
		}
	}

	u := *user
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	d.users.put(u.ID, u)
	return &u, nil
}

func (r *userRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	d, unlock := r.s.read()
	defer unlock()

	u, ok := d.users.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	d, unlock := r.s.read()
	defer unlock()

	for _, u := range d.users.all() {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *userRepo) Update(_ context.Context, user *models.User) (*models.User, error) {
	d, unlock := r.s.write()
	defer unlock()

	existing, ok := d.users.get(user.ID)
	if !ok {
		return nil, storage.ErrNotFound
	}
	existing.Name = user.Name
	existing.Bio = user.Bio
	existing.Skills = user.Skills
	existing.HourlyRate = user.HourlyRate
	existing.PortfolioLink = user.PortfolioLink
	existing.UpdatedAt = time.Now().UTC()
	d.users.put(existing.ID, existing)
	return &existing, nil
}

// Jobs ------------------------------------------------------------------------

type jobRepo struct{ s *Store }

func (r *jobRepo) Create(_ context.Context, job *models.Job) (*models.Job, error) {
	d, unlock := r.s.write()
	defer unlock()

	if _, ok := d.users.get(job.ClientID); !ok {
		return nil, storage.ErrConflict
	}
	j := *job
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = models.JobStatusOpen
	}
	now := time.Now().UTC()
	j.CreatedAt, j.UpdatedAt = now, now
	d.jobs.put(j.ID, j)
	return &j, nil
}

func (r *jobRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	d, unlock := r.s.read()
	defer unlock()

	j, ok := d.jobs.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &j, nil
}

func (r *jobRepo) List(_ context.Context, f storage.JobFilter) ([]models.Job, error) {
	d, unlock := r.s.read()
	defer unlock()

	query := strings.ToLower(f.Query)
	var out []models.Job
	for _, j := range reverse(d.jobs.all()) {
		if f.Status != nil && j.Status != *f.Status {
			continue
		}
		if f.ClientID != nil && j.ClientID != *f.ClientID {
			continue
		}
		if f.MinBudget != nil && j.Budget < *f.MinBudget {
			continue
		}
		if f.MaxBudget != nil && j.Budget > *f.MaxBudget {
			continue
		}
		if f.Skill != "" && !containsFold(j.Skills, f.Skill) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(j.Title), query) &&
			!strings.Contains(strings.ToLower(j.Description), query) {
			continue
		}
		out = append(out, j)
	}
	return page(out, f.Limit, f.Offset), nil
}

func (r *jobRepo) Update(_ context.Context, job *models.Job) (*models.Job, error) {
	d, unlock := r.s.write()
	defer unlock()

	existing, ok := d.jobs.get(job.ID)
	if !ok {
		return nil, storage.ErrNotFound
	}
	existing.Title = job.Title
	existing.Description = job.Description
	existing.Budget = job.Budget
	existing.Deadline = job.Deadline
	existing.Skills = job.Skills
	existing.UpdatedAt = time.Now().UTC()
	d.jobs.put(existing.ID, existing)
	return &existing, nil
}

func (r *jobRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to models.JobStatus) (*models.Job, error) {
	d, unlock := r.s.write()
	defer unlock()

	j, ok := d.jobs.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	if j.Status != from {
		return nil, storage.ErrStaleState
	}
	j.Status = to
	j.UpdatedAt = time.Now().UTC()
	d.jobs.put(id, j)
	return &j, nil
}

func (r *jobRepo) Delete(_ context.Context, id uuid.UUID) error {
	d, unlock := r.s.write()
	defer unlock()

	for _, c := range d.contracts.rows {
		if c.JobID == id {
			return storage.ErrConflict
		}
	}
	if !d.jobs.remove(id) {
		return storage.ErrNotFound
	}
	for _, p := range d.proposals.all() {
		if p.JobID == id {
			d.proposals.remove(p.ID)
		}
	}
	return nil
}

// Proposals -------------------------------------------------------------------

type proposalRepo struct{ s *Store }

func (r *proposalRepo) Create(_ context.Context, proposal *models.Proposal) (*models.Proposal, error) {
	d, unlock := r.s.write()
	defer unlock()

	if _, ok := d.jobs.get(proposal.JobID); !ok {
		return nil, storage.ErrConflict
	}
	for _, existing := range d.proposals.rows {
		if existing.JobID == proposal.JobID && existing.FreelancerID == proposal.FreelancerID {
			return nil, storage.ErrConflict
		}
	}
	p := *proposal
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = models.ProposalStatusPending
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	d.proposals.put(p.ID, p)
	return &p, nil
}

func (r *proposalRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Proposal, error) {
	d, unlock := r.s.read()
	defer unlock()

	p, ok := d.proposals.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (r *proposalRepo) List(_ context.Context, f storage.ProposalFilter) ([]models.Proposal, error) {
	d, unlock := r.s.read()
	defer unlock()

	var out []models.Proposal
	for _, p := range reverse(d.proposals.all()) {
		if f.JobID != nil && p.JobID != *f.JobID {
			continue
		}
		if f.FreelancerID != nil && p.FreelancerID != *f.FreelancerID {
			continue
		}
		if f.Status != nil && p.Status != *f.Status {
			continue
		}
		out = append(out, p)
	}
	return page(out, f.Limit, f.Offset), nil
}

func (r *proposalRepo) Update(_ context.Context, proposal *models.Proposal) (*models.Proposal, error) {
	d, unlock := r.s.write()
	defer unlock()

	existing, ok := d.proposals.get(proposal.ID)
	if !ok {
		return nil, storage.ErrNotFound
	}
	if existing.Status != models.ProposalStatusPending {
		return nil, storage.ErrStaleState
	}
	existing.CoverLetter = proposal.CoverLetter
	existing.BidAmount = proposal.BidAmount
	existing.UpdatedAt = time.Now().UTC()
	d.proposals.put(existing.ID, existing)
	return &existing, nil
}

func (r *proposalRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to models.ProposalStatus, feedback *string) (*models.Proposal, error) {
	d, unlock := r.s.write()
	defer unlock()

	p, ok := d.proposals.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	if p.Status != from {
		return nil, storage.ErrStaleState
	}
	p.Status = to
	if feedback != nil {
		fb := *feedback
		p.Feedback = &fb
	}
	p.UpdatedAt = time.Now().UTC()
	d.proposals.put(id, p)
	return &p, nil
}

func (r *proposalRepo) Delete(_ context.Context, id uuid.UUID) error {
	d, unlock := r.s.write()
	defer unlock()

	for _, c := range d.contracts.rows {
		if c.ProposalID == id {
			return storage.ErrConflict
		}
	}
	if !d.proposals.remove(id) {
		return storage.ErrNotFound
	}
	return nil
}

// Contracts -------------------------------------------------------------------

type contractRepo struct{ s *Store }

func (r *contractRepo) Create(_ context.Context, contract *models.Contract) (*models.Contract, error) {
	d, unlock := r.s.write()
	defer unlock()

	for _, existing := range d.contracts.rows {
		if existing.JobID == contract.JobID || existing.ProposalID == contract.ProposalID {
			return nil, storage.ErrConflict
		}
	}
	c := *contract
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = models.ContractStatusPending
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	d.contracts.put(c.ID, c)
	return &c, nil
}

func (r *contractRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Contract, error) {
	d, unlock := r.s.read()
	defer unlock()

	c, ok := d.contracts.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (r *contractRepo) GetByJobID(_ context.Context, jobID uuid.UUID) (*models.Contract, error) {
	d, unlock := r.s.read()
	defer unlock()

	for _, c := range d.contracts.all() {
		if c.JobID == jobID {
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *contractRepo) List(_ context.Context, f storage.ContractFilter) ([]models.Contract, error) {
	d, unlock := r.s.read()
	defer unlock()

	var out []models.Contract
	for _, c := range reverse(d.contracts.all()) {
		if !c.IsParticipant(f.ParticipantID) {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		out = append(out, c)
	}
	return page(out, f.Limit, f.Offset), nil
}

func (r *contractRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to models.ContractStatus) (*models.Contract, error) {
	d, unlock := r.s.write()
	defer unlock()

	c, ok := d.contracts.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	if c.Status != from {
		return nil, storage.ErrStaleState
	}
	c.Status = to
	c.UpdatedAt = time.Now().UTC()
	d.contracts.put(id, c)
	return &c, nil
}

// Milestones ------------------------------------------------------------------

type milestoneRepo struct{ s *Store }

func (r *milestoneRepo) Create(_ context.Context, milestone *models.Milestone) (*models.Milestone, error) {
	d, unlock := r.s.write()
	defer unlock()

	if _, ok := d.contracts.get(milestone.ContractID); !ok {
		return nil, storage.ErrConflict
	}
	m := *milestone
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = models.MilestoneStatusPending
	}
	now := time.Now().UTC()
	m.CreatedAt, m.UpdatedAt = now, now
	d.milestones.put(m.ID, m)
	return &m, nil
}

func (r *milestoneRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Milestone, error) {
	d, unlock := r.s.read()
	defer unlock()

	m, ok := d.milestones.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &m, nil
}

func (r *milestoneRepo) ListByContract(_ context.Context, contractID uuid.UUID) ([]models.Milestone, error) {
	d, unlock := r.s.read()
	defer unlock()

	out := []models.Milestone{}
	for _, m := range d.milestones.all() {
		if m.ContractID == contractID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *milestoneRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.MilestoneStatus, completedAt *time.Time) (*models.Milestone, error) {
	d, unlock := r.s.write()
	defer unlock()

	m, ok := d.milestones.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	m.Status = status
	m.CompletedAt = completedAt
	m.UpdatedAt = time.Now().UTC()
	d.milestones.put(id, m)
	return &m, nil
}

// Payments --------------------------------------------------------------------

type paymentRepo struct{ s *Store }

func (r *paymentRepo) Create(_ context.Context, payment *models.Payment) (*models.Payment, error) {
	d, unlock := r.s.write()
	defer unlock()

	if _, ok := d.contracts.get(payment.ContractID); !ok {
		return nil, storage.ErrConflict
	}
	for _, existing := range d.payments.rows {
		if existing.Provider == payment.Provider && existing.GatewayOrderID == payment.GatewayOrderID {
			return nil, storage.ErrConflict
		}
	}
	p := *payment
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	d.payments.put(p.ID, p)
	return &p, nil
}

func (r *paymentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	d, unlock := r.s.read()
	defer unlock()

	p, ok := d.payments.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (r *paymentRepo) GetByGatewayOrderID(_ context.Context, provider models.PaymentProvider, orderID string) (*models.Payment, error) {
	d, unlock := r.s.read()
	defer unlock()

	for _, p := range d.payments.all() {
		if p.Provider == provider && p.GatewayOrderID == orderID {
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *paymentRepo) ListByContract(_ context.Context, contractID uuid.UUID) ([]models.Payment, error) {
	d, unlock := r.s.read()
	defer unlock()

	out := []models.Payment{}
	for _, p := range reverse(d.payments.all()) {
		if p.ContractID == contractID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *paymentRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to models.PaymentStatus, gatewayPaymentID *string) (*models.Payment, error) {
	d, unlock := r.s.write()
	defer unlock()

	p, ok := d.payments.get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	if p.Status != from {
		return nil, storage.ErrStaleState
	}
	p.Status = to
	if gatewayPaymentID != nil {
		gp := *gatewayPaymentID
		p.GatewayPaymentID = &gp
	}
	p.UpdatedAt = time.Now().UTC()
	d.payments.put(id, p)
	return &p, nil
}

func containsFold(values []string, needle string) bool {
	for _, v := range values {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}
