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

type profileService struct {
	store storage.Store
}

// NewProfileService creates a new instance of ProfileService (portfolio and resume).
func NewProfileService(store storage.Store) ProfileService {
	return &profileService{store: store}
}

func (s *profileService) GetPortfolio(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	p, err := s.store.Portfolios().GetByUserID(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "fetching portfolio")
	}
	return p, nil
}

// CreatePortfolio creates the caller's portfolio. Freelancers only; a second create is a conflict.
func (s *profileService) CreatePortfolio(ctx context.Context, req *dto.SavePortfolioRequest) (*models.Portfolio, error) {
	user, err := s.store.Users().GetByID(ctx, req.UserID)
	if err != nil {
		return nil, MapRepoError(err, "fetching portfolio owner")
	}
	if user.Role != models.RoleFreelancer {
		log.Warnf("CreatePortfolio: Forbidden attempt by %s user %s", user.Role, user.ID)
		return nil, fmt.Errorf("%w: only freelancers can create a portfolio", ErrForbidden)
	}

	p, err := s.store.Portfolios().Create(ctx, &models.Portfolio{
		UserID:   req.UserID,
		Headline: req.Headline,
		About:    req.About,
		Projects: toModelProjects(req.Projects),
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: portfolio already exists", ErrConflict)
		}
		return nil, MapRepoError(err, "creating portfolio")
	}
	return p, nil
}

func (s *profileService) UpdatePortfolio(ctx context.Context, req *dto.SavePortfolioRequest) (*models.Portfolio, error) {
	p, err := s.store.Portfolios().Update(ctx, &models.Portfolio{
		UserID:   req.UserID,
		Headline: req.Headline,
		About:    req.About,
		Projects: toModelProjects(req.Projects),
	})
	if err != nil {
		return nil, MapRepoError(err, "updating portfolio")
	}
	return p, nil
}

func (s *profileService) GetResume(ctx context.Context, userID uuid.UUID) (*models.Resume, error) {
	r, err := s.store.Resumes().GetByUserID(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "fetching resume")
	}
	return r, nil
}

// SaveResume creates the caller's resume or replaces it.
func (s *profileService) SaveResume(ctx context.Context, req *dto.SaveResumeRequest) (*models.Resume, error) {
	resume := &models.Resume{
		UserID:     req.UserID,
		Summary:    req.Summary,
		Experience: make([]models.ResumeExperience, 0, len(req.Experience)),
		Education:  make([]models.ResumeEducation, 0, len(req.Education)),
		Skills:     req.Skills,
	}
	for _, e := range req.Experience {
		resume.Experience = append(resume.Experience, models.ResumeExperience(e))
	}
	for _, e := range req.Education {
		resume.Education = append(resume.Education, models.ResumeEducation(e))
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}

	saved, err := s.store.Resumes().Upsert(ctx, resume)
	if err != nil {
		return nil, MapRepoError(err, "saving resume")
	}
	return saved, nil
}

func toModelProjects(in []dto.PortfolioProject) []models.PortfolioProject {
	out := make([]models.PortfolioProject, 0, len(in))
	for _, p := range in {
		out = append(out, models.PortfolioProject(p))
	}
	return out
}
