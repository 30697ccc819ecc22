package services

import (
	"context"
	"errors"
	"fmt"

	"assuredgig/internal/events"
	"assuredgig/internal/metrics"
	"assuredgig/internal/models"
	"assuredgig/internal/storage"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type proposalService struct {
	store   storage.Store
	events  events.Publisher
	metrics *metrics.Metrics
}

// NewProposalService creates a new instance of ProposalService.
func NewProposalService(store storage.Store, publisher events.Publisher, m *metrics.Metrics) ProposalService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &proposalService{store: store, events: publisher, metrics: m}
}

func (s *proposalService) SubmitProposal(ctx context.Context, req *dto.CreateProposalRequest) (*models.Proposal, error) {
	job, err := s.store.Jobs().GetByID(ctx, req.JobID)
	if err != nil {
		log.WithError(err).Errorf("SubmitProposal: Error fetching job %s", req.JobID)
		return nil, MapRepoError(err, "fetching job for proposal")
	}

	if job.ClientID == req.FreelancerID {
		log.Warnf("SubmitProposal: User %s attempted to bid on own job %s", req.FreelancerID, job.ID)
		return nil, fmt.Errorf("%w: cannot bid on your own job", ErrForbidden)
	}
	if job.Status != models.JobStatusOpen {
		return nil, fmt.Errorf("%w: job is not open for proposals", ErrConflict)
	}

	proposal, err := s.store.Proposals().Create(ctx, &models.Proposal{
		JobID:        job.ID,
		FreelancerID: req.FreelancerID,
		CoverLetter:  req.CoverLetter,
		BidAmount:    req.BidAmount,
		Status:       models.ProposalStatusPending,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: a proposal for this job already exists", ErrConflict)
		}
		log.WithError(err).Errorf("SubmitProposal: Error creating proposal for job %s", job.ID)
		return nil, MapRepoError(err, "creating proposal")
	}

	s.events.Publish(events.TopicProposalSubmitted, events.ProposalSubmitted{
		ProposalID:   proposal.ID,
		JobID:        job.ID,
		JobTitle:     job.Title,
		ClientID:     job.ClientID,
		FreelancerID: proposal.FreelancerID,
		BidAmount:    proposal.BidAmount,
	})
	return proposal, nil
}

// GetProposalByID is visible to the proposal's author and the job's client.
func (s *proposalService) GetProposalByID(ctx context.Context, req *dto.GetProposalRequest) (*models.Proposal, error) {
	proposal, err := s.store.Proposals().GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching proposal")
	}
	if proposal.FreelancerID == req.UserID {
		return proposal, nil
	}

	job, err := s.store.Jobs().GetByID(ctx, proposal.JobID)
	if err != nil {
		return nil, MapRepoError(err, "fetching job for proposal")
	}
	if job.ClientID != req.UserID {
		log.Warnf("GetProposalByID: Forbidden attempt by user %s on proposal %s", req.UserID, req.ID)
		return nil, ErrForbidden
	}
	return proposal, nil
}

func (s *proposalService) ListProposals(ctx context.Context, req *dto.ListProposalsRequest) ([]models.Proposal, error) {
	limit, offset := normalizePage(req.Limit, req.Offset)
	filter := storage.ProposalFilter{Status: req.Status, Limit: limit, Offset: offset}

	if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid job_id", ErrValidation)
		}
		job, err := s.store.Jobs().GetByID(ctx, jobID)
		if err != nil {
			return nil, MapRepoError(err, "fetching job for proposal list")
		}
		if job.ClientID != req.UserID {
			log.Warnf("ListProposals: Forbidden attempt by user %s on job %s", req.UserID, jobID)
			return nil, ErrForbidden
		}
		filter.JobID = &jobID
	} else {
		filter.FreelancerID = &req.UserID
	}

	proposals, err := s.store.Proposals().List(ctx, filter)
	if err != nil {
		return nil, MapRepoError(err, "listing proposals")
	}
	return proposals, nil
}

// EditProposal lets the author change cover letter or bid while the proposal is PENDING.
func (s *proposalService) EditProposal(ctx context.Context, req *dto.UpdateProposalRequest) (*models.Proposal, error) {
	var updated *models.Proposal
	err := s.store.InTx(ctx, func(tx storage.Store) error {
		proposal, err := tx.Proposals().GetByID(ctx, req.ID)
		if err != nil {
			return MapRepoError(err, "fetching proposal for edit")
		}
		if proposal.FreelancerID != req.UserID {
			log.Warnf("EditProposal: Forbidden attempt by user %s on proposal %s", req.UserID, req.ID)
			return ErrForbidden
		}
		if proposal.Status != models.ProposalStatusPending {
			return fmt.Errorf("%w: only pending proposals can be edited", ErrInvalidState)
		}
		if req.CoverLetter != nil {
			proposal.CoverLetter = *req.CoverLetter
		}
		if req.BidAmount != nil {
			proposal.BidAmount = *req.BidAmount
		}
		updated, err = tx.Proposals().Update(ctx, proposal)
		if err != nil {
			return MapRepoError(err, "updating proposal")
		}
		return nil
	})
	if err != nil {
		return nil, passOrMap(err, "editing proposal")
	}
	return updated, nil
}

// AcceptProposal accepts a PENDING proposal on an OPEN job, moves the job to
// IN_PROGRESS and creates the contract, all in one transaction. Every step is a
// conditional update so two concurrent accepts on the same job yield one contract.
func (s *proposalService) AcceptProposal(ctx context.Context, req *dto.AcceptProposalRequest) (*models.Proposal, *models.Contract, error) {
	var (
		accepted *models.Proposal
		contract *models.Contract
		job      *models.Job
	)

	// --- Transaction Start ---
	err := s.store.InTx(ctx, func(tx storage.Store) error {
		// 1. Fetch the Proposal and its Job (within transaction)
		proposal, err := tx.Proposals().GetByID(ctx, req.ProposalID)
		if err != nil {
			log.WithError(err).Errorf("AcceptProposal: Error fetching proposal %s", req.ProposalID)
			return MapRepoError(err, "fetching proposal")
		}
		job, err = tx.Jobs().GetByID(ctx, proposal.JobID)
		if err != nil {
			log.WithError(err).Errorf("AcceptProposal: Error fetching job %s", proposal.JobID)
			return MapRepoError(err, "fetching job")
		}

		// 2. Authorization Check: Only the job's client can accept
		if job.ClientID != req.UserID {
			log.Warnf("AcceptProposal: Forbidden attempt by user %s on proposal %s (job client %s)", req.UserID, proposal.ID, job.ClientID)
			return ErrForbidden
		}

		// 3. State Checks
		if job.Status != models.JobStatusOpen {
			return fmt.Errorf("%w: job is not open", ErrConflict)
		}
		if proposal.Status != models.ProposalStatusPending {
			return fmt.Errorf("%w: proposal is %s", ErrConflict, proposal.Status)
		}

		// 4. Accept the proposal, conditional on it still being PENDING
		accepted, err = tx.Proposals().TransitionStatus(ctx, proposal.ID, models.ProposalStatusPending, models.ProposalStatusAccepted, nil)
		if err != nil {
			log.WithError(err).Errorf("AcceptProposal: Error accepting proposal %s", proposal.ID)
			return MapRepoError(err, "accepting proposal")
		}

		// 5. Move the job to IN_PROGRESS, conditional on it still being OPEN
		job, err = tx.Jobs().TransitionStatus(ctx, job.ID, models.JobStatusOpen, models.JobStatusInProgress)
		if err != nil {
			log.WithError(err).Errorf("AcceptProposal: Error moving job %s to IN_PROGRESS", proposal.JobID)
			return MapRepoError(err, "starting job")
		}

		// 6. Create the contract at the bid amount
		contract, err = tx.Contracts().Create(ctx, &models.Contract{
			JobID:        job.ID,
			ProposalID:   accepted.ID,
			ClientID:     job.ClientID,
			FreelancerID: accepted.FreelancerID,
			Amount:       accepted.BidAmount,
			Status:       models.ContractStatusPending,
		})
		if err != nil {
			log.WithError(err).Errorf("AcceptProposal: Error creating contract for job %s", job.ID)
			return MapRepoError(err, "creating contract")
		}
		return nil
	})
	// --- Transaction End ---
	if err != nil {
		return nil, nil, passOrMap(err, "accepting proposal")
	}

	s.metrics.RecordProposalDecision("accepted")
	s.metrics.RecordContractCreated()

	contractID := contract.ID
	s.events.Publish(events.TopicProposalAccepted, events.ProposalDecided{
		ProposalID:   accepted.ID,
		JobID:        job.ID,
		JobTitle:     job.Title,
		ClientID:     job.ClientID,
		FreelancerID: accepted.FreelancerID,
		ContractID:   &contractID,
	})

	log.WithFields(log.Fields{
		"proposal_id": accepted.ID,
		"job_id":      job.ID,
		"contract_id": contract.ID,
	}).Info("Proposal accepted")
	return accepted, contract, nil
}

// RejectProposal marks a PENDING proposal REJECTED. The job is left untouched.
func (s *proposalService) RejectProposal(ctx context.Context, req *dto.RejectProposalRequest) (*models.Proposal, error) {
	var (
		rejected *models.Proposal
		job      *models.Job
	)

	err := s.store.InTx(ctx, func(tx storage.Store) error {
		proposal, err := tx.Proposals().GetByID(ctx, req.ProposalID)
		if err != nil {
			return MapRepoError(err, "fetching proposal")
		}
		job, err = tx.Jobs().GetByID(ctx, proposal.JobID)
		if err != nil {
			return MapRepoError(err, "fetching job")
		}
		if job.ClientID != req.UserID {
			log.Warnf("RejectProposal: Forbidden attempt by user %s on proposal %s", req.UserID, proposal.ID)
			return ErrForbidden
		}
		if job.Status != models.JobStatusOpen {
			return fmt.Errorf("%w: job is not open", ErrConflict)
		}
		if proposal.Status != models.ProposalStatusPending {
			return fmt.Errorf("%w: proposal is %s", ErrConflict, proposal.Status)
		}

		rejected, err = tx.Proposals().TransitionStatus(ctx, proposal.ID, models.ProposalStatusPending, models.ProposalStatusRejected, req.Feedback)
		if err != nil {
			return MapRepoError(err, "rejecting proposal")
		}
		return nil
	})
	if err != nil {
		return nil, passOrMap(err, "rejecting proposal")
	}

	s.metrics.RecordProposalDecision("rejected")
	s.events.Publish(events.TopicProposalRejected, events.ProposalDecided{
		ProposalID:   rejected.ID,
		JobID:        job.ID,
		JobTitle:     job.Title,
		ClientID:     job.ClientID,
		FreelancerID: rejected.FreelancerID,
		Feedback:     rejected.Feedback,
	})
	return rejected, nil
}

// WithdrawProposal deletes the caller's own PENDING proposal.
func (s *proposalService) WithdrawProposal(ctx context.Context, req *dto.WithdrawProposalRequest) error {
	err := s.store.InTx(ctx, func(tx storage.Store) error {
		proposal, err := tx.Proposals().GetByID(ctx, req.ID)
		if err != nil {
			return MapRepoError(err, "fetching proposal for withdrawal")
		}
		if proposal.FreelancerID != req.UserID {
			log.Warnf("WithdrawProposal: Forbidden attempt by user %s on proposal %s", req.UserID, req.ID)
			return ErrForbidden
		}
		if proposal.Status != models.ProposalStatusPending {
			return fmt.Errorf("%w: only pending proposals can be withdrawn", ErrInvalidState)
		}
		if err := tx.Proposals().Delete(ctx, proposal.ID); err != nil {
			return MapRepoError(err, "withdrawing proposal")
		}
		return nil
	})
	return passOrMap(err, "withdrawing proposal")
}
