package services

import (
	"context"
	"fmt"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type gigService struct {
	store storage.Store
}

// NewGigService creates a new instance of GigService.
func NewGigService(store storage.Store) GigService {
	return &gigService{store: store}
}

func (s *gigService) CreateGig(ctx context.Context, req *dto.CreateGigRequest) (*models.Gig, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	gig, err := s.store.Gigs().Create(ctx, &models.Gig{
		FreelancerID: req.FreelancerID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
		Tags:         tags,
		Active:       true,
	})
	if err != nil {
		log.WithError(err).Error("GigService: Error creating gig")
		return nil, MapRepoError(err, "creating gig")
	}
	return gig, nil
}

// GetGig hides inactive gigs from everyone but their owner.
func (s *gigService) GetGig(ctx context.Context, req *dto.GetGigRequest) (*models.Gig, error) {
	gig, err := s.store.Gigs().GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching gig")
	}
	if !gig.Active && gig.FreelancerID != req.UserID {
		return nil, fmt.Errorf("%w: gig", ErrNotFound)
	}
	return gig, nil
}

func (s *gigService) ListGigs(ctx context.Context, req *dto.ListGigsRequest) ([]models.Gig, error) {
	limit, offset := normalizePage(req.Limit, req.Offset)
	filter := storage.GigFilter{Tag: req.Tag, Query: req.Query, Limit: limit, Offset: offset}
	if req.FreelancerID != "" {
		freelancerID, err := uuid.Parse(req.FreelancerID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid freelancer_id", ErrValidation)
		}
		filter.FreelancerID = &freelancerID
		filter.IncludeInactive = freelancerID == req.UserID
	}

	gigs, err := s.store.Gigs().List(ctx, filter)
	if err != nil {
		return nil, MapRepoError(err, "listing gigs")
	}
	return gigs, nil
}

func (s *gigService) UpdateGig(ctx context.Context, req *dto.UpdateGigRequest) (*models.Gig, error) {
	gig, err := s.ownedGig(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.Description != nil {
		gig.Description = *req.Description
	}
	if req.Price != nil {
		gig.Price = *req.Price
	}
	if req.DeliveryDays != nil {
		gig.DeliveryDays = *req.DeliveryDays
	}
	if req.Tags != nil {
		gig.Tags = req.Tags
	}
	if req.Active != nil {
		gig.Active = *req.Active
	}

	updated, err := s.store.Gigs().Update(ctx, gig)
	if err != nil {
		return nil, MapRepoError(err, "updating gig")
	}
	return updated, nil
}

func (s *gigService) DeleteGig(ctx context.Context, req *dto.DeleteGigRequest) error {
	if _, err := s.ownedGig(ctx, req.ID, req.UserID); err != nil {
		return err
	}
	if err := s.store.Gigs().Delete(ctx, req.ID); err != nil {
		return MapRepoError(err, "deleting gig")
	}
	return nil
}

func (s *gigService) ownedGig(ctx context.Context, id, userID uuid.UUID) (*models.Gig, error) {
	gig, err := s.store.Gigs().GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "fetching gig")
	}
	if gig.FreelancerID != userID {
		log.Warnf("GigService: Forbidden attempt on gig %s by user %s", id, userID)
		return nil, ErrForbidden
	}
	return gig, nil
}
