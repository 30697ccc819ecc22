package services

import (
	"context"
	"fmt"
	"time"

	"assuredgig/internal/events"
	"assuredgig/internal/models"
	"assuredgig/internal/storage"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type contractService struct {
	store  storage.Store
	events events.Publisher
	now    func() time.Time
}

// NewContractService creates a new instance of ContractService.
func NewContractService(store storage.Store, publisher events.Publisher) ContractService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &contractService{store: store, events: publisher, now: time.Now}
}

// participantContract loads a contract and checks that userID is one of its two parties.
func participantContract(ctx context.Context, store storage.Store, contractID, userID uuid.UUID) (*models.Contract, error) {
	contract, err := store.Contracts().GetByID(ctx, contractID)
	if err != nil {
		return nil, MapRepoError(err, "fetching contract")
	}
	if !contract.IsParticipant(userID) {
		log.Warnf("participantContract: Forbidden attempt by user %s on contract %s", userID, contractID)
		return nil, ErrForbidden
	}
	return contract, nil
}

func (s *contractService) GetContract(ctx context.Context, req *dto.GetContractRequest) (*models.Contract, *models.Progress, error) {
	contract, err := participantContract(ctx, s.store, req.ID, req.UserID)
	if err != nil {
		return nil, nil, err
	}
	progress, err := s.progress(ctx, s.store, contract.ID)
	if err != nil {
		return nil, nil, err
	}
	return contract, progress, nil
}

func (s *contractService) ListContracts(ctx context.Context, req *dto.ListContractsRequest) ([]models.Contract, error) {
	limit, offset := normalizePage(req.Limit, req.Offset)
	contracts, err := s.store.Contracts().List(ctx, storage.ContractFilter{
		ParticipantID: req.UserID,
		Status:        req.Status,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, MapRepoError(err, "listing contracts")
	}
	return contracts, nil
}

// UpdateStatus applies the manual lifecycle changes: the client completes an
// ACTIVE contract (closing its job), and either party cancels a PENDING or ACTIVE one.
func (s *contractService) UpdateStatus(ctx context.Context, req *dto.UpdateContractStatusRequest) (*models.Contract, error) {
	var updated *models.Contract

	err := s.store.InTx(ctx, func(tx storage.Store) error {
		contract, err := participantContract(ctx, tx, req.ID, req.UserID)
		if err != nil {
			return err
		}

		switch req.Status {
		case models.ContractStatusCompleted:
			if contract.ClientID != req.UserID {
				log.Warnf("UpdateContractStatus: Freelancer %s attempted to complete contract %s", req.UserID, contract.ID)
				return fmt.Errorf("%w: only the client can complete a contract", ErrForbidden)
			}
			if contract.Status != models.ContractStatusActive {
				return fmt.Errorf("%w: cannot complete a %s contract", ErrConflict, contract.Status)
			}
			updated, err = tx.Contracts().TransitionStatus(ctx, contract.ID, models.ContractStatusActive, models.ContractStatusCompleted)
			if err != nil {
				return MapRepoError(err, "completing contract")
			}
			if _, err := tx.Jobs().TransitionStatus(ctx, contract.JobID, models.JobStatusInProgress, models.JobStatusClosed); err != nil {
				log.WithError(err).Errorf("UpdateContractStatus: Error closing job %s", contract.JobID)
				return MapRepoError(err, "closing job")
			}

		case models.ContractStatusCancelled:
			if contract.Status != models.ContractStatusPending && contract.Status != models.ContractStatusActive {
				return fmt.Errorf("%w: cannot cancel a %s contract", ErrConflict, contract.Status)
			}
			updated, err = tx.Contracts().TransitionStatus(ctx, contract.ID, contract.Status, models.ContractStatusCancelled)
			if err != nil {
				return MapRepoError(err, "cancelling contract")
			}

		default:
			return fmt.Errorf("%w: to %s", ErrInvalidTransition, req.Status)
		}
		return nil
	})
	if err != nil {
		return nil, passOrMap(err, "updating contract status")
	}

	if updated.Status == models.ContractStatusCompleted {
		s.events.Publish(events.TopicContractCompleted, events.ContractCompleted{
			ContractID:   updated.ID,
			JobID:        updated.JobID,
			ClientID:     updated.ClientID,
			FreelancerID: updated.FreelancerID,
		})
	}
	log.WithFields(log.Fields{"contract_id": updated.ID, "status": updated.Status, "user_id": req.UserID}).Info("Contract status updated")
	return updated, nil
}

func (s *contractService) AddMilestone(ctx context.Context, req *dto.AddMilestoneRequest) (*models.Milestone, *models.Progress, error) {
	var (
		milestone *models.Milestone
		progress  *models.Progress
	)
	err := s.store.InTx(ctx, func(tx storage.Store) error {
		contract, err := participantContract(ctx, tx, req.ContractID, req.UserID)
		if err != nil {
			return err
		}
		if contract.Status.IsTerminal() {
			return fmt.Errorf("%w: contract is %s", ErrConflict, contract.Status)
		}

		milestone, err = tx.Milestones().Create(ctx, &models.Milestone{
			ContractID:  contract.ID,
			Description: req.Description,
			Amount:      req.Amount,
			Status:      models.MilestoneStatusPending,
		})
		if err != nil {
			return MapRepoError(err, "creating milestone")
		}
		progress, err = s.progress(ctx, tx, contract.ID)
		return err
	})
	if err != nil {
		return nil, nil, passOrMap(err, "adding milestone")
	}
	return milestone, progress, nil
}

// UpdateMilestoneStatus sets a milestone's status and returns the re-derived progress.
func (s *contractService) UpdateMilestoneStatus(ctx context.Context, req *dto.UpdateMilestoneStatusRequest) (*models.Progress, error) {
	var (
		contract  *models.Contract
		milestone *models.Milestone
		progress  *models.Progress
		completed bool
	)
	err := s.store.InTx(ctx, func(tx storage.Store) error {
		var err error
		contract, err = participantContract(ctx, tx, req.ContractID, req.UserID)
		if err != nil {
			return err
		}
		if contract.Status.IsTerminal() {
			return fmt.Errorf("%w: contract is %s", ErrConflict, contract.Status)
		}

		existing, err := tx.Milestones().GetByID(ctx, req.MilestoneID)
		if err != nil {
			return MapRepoError(err, "fetching milestone")
		}
		if existing.ContractID != contract.ID {
			return fmt.Errorf("%w: milestone does not belong to contract", ErrNotFound)
		}

		var completedAt *time.Time
		if req.Status == models.MilestoneStatusCompleted {
			if existing.CompletedAt != nil {
				completedAt = existing.CompletedAt
			} else {
				now := s.now().UTC()
				completedAt = &now
			}
		}
		completed = req.Status == models.MilestoneStatusCompleted && existing.Status != models.MilestoneStatusCompleted

		milestone, err = tx.Milestones().UpdateStatus(ctx, existing.ID, req.Status, completedAt)
		if err != nil {
			return MapRepoError(err, "updating milestone")
		}
		progress, err = s.progress(ctx, tx, contract.ID)
		return err
	})
	if err != nil {
		return nil, passOrMap(err, "updating milestone status")
	}

	if completed {
		s.events.Publish(events.TopicMilestoneCompleted, events.MilestoneCompleted{
			MilestoneID:  milestone.ID,
			ContractID:   contract.ID,
			ClientID:     contract.ClientID,
			FreelancerID: contract.FreelancerID,
			CompletedBy:  req.UserID,
			Description:  milestone.Description,
			Percentage:   progress.Percentage,
		})
	}
	return progress, nil
}

func (s *contractService) GetProgress(ctx context.Context, req *dto.GetProgressRequest) (*models.Progress, error) {
	contract, err := participantContract(ctx, s.store, req.ContractID, req.UserID)
	if err != nil {
		return nil, err
	}
	return s.progress(ctx, s.store, contract.ID)
}

func (s *contractService) progress(ctx context.Context, store storage.Store, contractID uuid.UUID) (*models.Progress, error) {
	milestones, err := store.Milestones().ListByContract(ctx, contractID)
	if err != nil {
		return nil, MapRepoError(err, "listing milestones")
	}
	p := models.ComputeProgress(milestones)
	return &p, nil
}
