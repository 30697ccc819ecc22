package services_test

import (
	"context"
	"testing"

	"assuredgig/internal/models"
	"assuredgig/internal/services"
	"assuredgig/internal/storage/memory"
	"assuredgig/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGigService(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := services.NewGigService(store)
	owner := createTestUser(t, store, models.RoleFreelancer)
	visitor := createTestUser(t, store, models.RoleClient)

	gig, err := svc.CreateGig(ctx, &dto.CreateGigRequest{
		FreelancerID: owner.ID,
		Title:        "Logo design",
		Description:  "Three concepts and two revisions",
		Price:        120,
		DeliveryDays: 5,
	})
	require.NoError(t, err)
	assert.True(t, gig.Active)

	_, err = svc.UpdateGig(ctx, &dto.UpdateGigRequest{ID: gig.ID, UserID: visitor.ID, Price: ptr(1.0)})
	assert.ErrorIs(t, err, services.ErrForbidden)

	updated, err := svc.UpdateGig(ctx, &dto.UpdateGigRequest{ID: gig.ID, UserID: owner.ID, Active: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	t.Run("inactive gig is hidden from others", func(t *testing.T) {
		_, err := svc.GetGig(ctx, &dto.GetGigRequest{ID: gig.ID, UserID: visitor.ID})
		assert.ErrorIs(t, err, services.ErrNotFound)
		_, err = svc.GetGig(ctx, &dto.GetGigRequest{ID: gig.ID, UserID: owner.ID})
		assert.NoError(t, err)

		public, err := svc.ListGigs(ctx, &dto.ListGigsRequest{FreelancerID: owner.ID.String(), UserID: visitor.ID})
		require.NoError(t, err)
		assert.Empty(t, public)

		own, err := svc.ListGigs(ctx, &dto.ListGigsRequest{FreelancerID: owner.ID.String(), UserID: owner.ID})
		require.NoError(t, err)
		assert.Len(t, own, 1)
	})

	err = svc.DeleteGig(ctx, &dto.DeleteGigRequest{ID: gig.ID, UserID: visitor.ID})
	assert.ErrorIs(t, err, services.ErrForbidden)
	require.NoError(t, svc.DeleteGig(ctx, &dto.DeleteGigRequest{ID: gig.ID, UserID: owner.ID}))
	_, err = svc.GetGig(ctx, &dto.GetGigRequest{ID: gig.ID, UserID: owner.ID})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProfileService_Portfolio(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := services.NewProfileService(store)
	freelancer := createTestUser(t, store, models.RoleFreelancer)
	client := createTestUser(t, store, models.RoleClient)

	_, err := svc.GetPortfolio(ctx, freelancer.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	req := &dto.SavePortfolioRequest{
		UserID:   freelancer.ID,
		Headline: "Backend engineer",
		Projects: []dto.PortfolioProject{{Title: "Payments API", URL: "https://example.com"}},
	}
	created, err := svc.CreatePortfolio(ctx, req)
	require.NoError(t, err)
	require.Len(t, created.Projects, 1)
	assert.Equal(t, "Payments API", created.Projects[0].Title)

	_, err = svc.CreatePortfolio(ctx, req)
	assert.ErrorIs(t, err, services.ErrConflict)

	_, err = svc.CreatePortfolio(ctx, &dto.SavePortfolioRequest{UserID: client.ID, Headline: "Client"})
	assert.ErrorIs(t, err, services.ErrForbidden)

	updated, err := svc.UpdatePortfolio(ctx, &dto.SavePortfolioRequest{UserID: freelancer.ID, Headline: "Staff engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Staff engineer", updated.Headline)
	assert.Empty(t, updated.Projects)

	_, err = svc.UpdatePortfolio(ctx, &dto.SavePortfolioRequest{UserID: client.ID, Headline: "Nope"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProfileService_Resume(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := services.NewProfileService(store)
	user := createTestUser(t, store, models.RoleFreelancer)

	first, err := svc.SaveResume(ctx, &dto.SaveResumeRequest{UserID: user.ID, Summary: "First draft"})
	require.NoError(t, err)
	assert.NotNil(t, first.Skills)

	second, err := svc.SaveResume(ctx, &dto.SaveResumeRequest{
		UserID:     user.ID,
		Summary:    "Second draft",
		Experience: []dto.ResumeExperience{{Company: "Acme", Position: "Engineer", StartDate: "2021-04"}},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := svc.GetResume(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second draft", got.Summary)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, "Acme", got.Experience[0].Company)
}
