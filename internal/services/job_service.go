package services

import (
	"context"
	"errors"
	"fmt"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type jobService struct {
	store storage.Store
}

// NewJobService creates a new instance of JobService.
func NewJobService(store storage.Store) JobService {
	return &jobService{store: store}
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	// ClientID is already set in the handler from context, passed in req.
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	job, err := s.store.Jobs().Create(ctx, &models.Job{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Skills:      skills,
		Status:      models.JobStatusOpen,
	})
	if err != nil {
		log.WithError(err).Error("JobService: Error creating job")
		return nil, MapRepoError(err, "creating job")
	}
	return job, nil
}

func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.store.Jobs().GetByID(ctx, req.ID)
	if err != nil {
		log.WithError(err).Errorf("JobService: Error getting job %s", req.ID)
		return nil, MapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	if req.MinBudget != nil && req.MaxBudget != nil && *req.MinBudget > *req.MaxBudget {
		return nil, fmt.Errorf("%w: min_budget cannot exceed max_budget", ErrValidation)
	}

	limit, offset := normalizePage(req.Limit, req.Offset)
	filter := storage.JobFilter{
		Status:    req.Status,
		Skill:     req.Skill,
		Query:     req.Query,
		MinBudget: req.MinBudget,
		MaxBudget: req.MaxBudget,
		Limit:     limit,
		Offset:    offset,
	}
	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid client_id", ErrValidation)
		}
		filter.ClientID = &clientID
	}

	jobs, err := s.store.Jobs().List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("JobService: Error listing jobs")
		return nil, MapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

// UpdateJob edits the job's details while it is OPEN, or closes it.
func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	var updated *models.Job

	// --- Transaction Start ---
	err := s.store.InTx(ctx, func(tx storage.Store) error {
		existingJob, err := tx.Jobs().GetByID(ctx, req.ID)
		if err != nil {
			log.WithError(err).Errorf("UpdateJob: Error fetching job %s", req.ID)
			return MapRepoError(err, "fetching job for update")
		}

		// Authorization Check
		if existingJob.ClientID != req.UserID {
			log.Warnf("UpdateJob: Forbidden attempt on job %s by user %s", req.ID, req.UserID)
			return ErrForbidden
		}

		if req.HasDetailChanges() {
			if existingJob.Status != models.JobStatusOpen {
				log.Warnf("UpdateJob: Invalid state for edit on job %s. State: %s", req.ID, existingJob.Status)
				return fmt.Errorf("%w: job details can only be edited while OPEN", ErrInvalidState)
			}
			if req.Title != nil {
				existingJob.Title = *req.Title
			}
			if req.Description != nil {
				existingJob.Description = *req.Description
			}
			if req.Budget != nil {
				existingJob.Budget = *req.Budget
			}
			if req.Deadline != nil {
				existingJob.Deadline = req.Deadline
			}
			if req.Skills != nil {
				existingJob.Skills = req.Skills
			}
			existingJob, err = tx.Jobs().Update(ctx, existingJob)
			if err != nil {
				log.WithError(err).Errorf("UpdateJob: Error updating job %s in repo", req.ID)
				return MapRepoError(err, "updating job details")
			}
		}

		if req.Status != nil {
			if !isValidJobStatusTransition(existingJob.Status, *req.Status) {
				return fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, existingJob.Status, *req.Status)
			}
			if existingJob.Status == models.JobStatusInProgress {
				if err := ensureNoLiveContract(ctx, tx, existingJob.ID); err != nil {
					return err
				}
			}
			existingJob, err = tx.Jobs().TransitionStatus(ctx, existingJob.ID, existingJob.Status, *req.Status)
			if err != nil {
				log.WithError(err).Errorf("UpdateJob: Error updating job status %s in repo", req.ID)
				return MapRepoError(err, "updating job status")
			}
		}

		updated = existingJob
		return nil
	})
	// --- End Transaction ---
	if err != nil {
		return nil, passOrMap(err, "updating job")
	}
	return updated, nil
}

// DeleteJob removes an OPEN job owned by the caller. Jobs with a contract are kept.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	err := s.store.InTx(ctx, func(tx storage.Store) error {
		existingJob, err := tx.Jobs().GetByID(ctx, req.ID)
		if err != nil {
			log.WithError(err).Errorf("DeleteJob: Error fetching job %s for delete check", req.ID)
			return MapRepoError(err, "fetching job for delete check")
		}

		// Authorization Check
		if existingJob.ClientID != req.UserID {
			log.Warnf("DeleteJob: Forbidden attempt on job %s by non-owner user %s", req.ID, req.UserID)
			return ErrForbidden
		}
		if existingJob.Status != models.JobStatusOpen {
			log.Warnf("DeleteJob: Invalid state attempt on job %s. State: %s", req.ID, existingJob.Status)
			return ErrInvalidState
		}

		if err := tx.Jobs().Delete(ctx, req.ID); err != nil {
			log.WithError(err).Errorf("DeleteJob: Error deleting job %s in repo", req.ID)
			return MapRepoError(err, "deleting job")
		}
		return nil
	})
	return passOrMap(err, "deleting job")
}

// ensureNoLiveContract refuses to close a job whose contract is still PENDING or
// ACTIVE; completing or cancelling the contract settles the job instead.
func ensureNoLiveContract(ctx context.Context, tx storage.Store, jobID uuid.UUID) error {
	contract, err := tx.Contracts().GetByJobID(ctx, jobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return MapRepoError(err, "fetching job contract")
	}
	if !contract.Status.IsTerminal() {
		return fmt.Errorf("%w: job has a %s contract", ErrInvalidState, contract.Status)
	}
	return nil
}

// isValidJobStatusTransition covers manual changes only; OPEN -> IN_PROGRESS
// happens through proposal acceptance.
func isValidJobStatusTransition(from, to models.JobStatus) bool {
	switch to {
	case models.JobStatusClosed:
		return from == models.JobStatusOpen || from == models.JobStatusInProgress
	default:
		return false
	}
}
