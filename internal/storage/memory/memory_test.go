package memory_test

import (
	"context"
	"errors"
	"testing"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"
	"assuredgig/internal/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJob(t *testing.T, ctx context.Context, store *memory.Store) (*models.User, *models.Job) {
	t.Helper()
	client, err := store.Users().Create(ctx, &models.User{Name: "Client", Email: "client@example.com", Role: models.RoleClient})
	require.NoError(t, err)
	job, err := store.Jobs().Create(ctx, &models.Job{ClientID: client.ID, Title: "Build a site", Budget: 500})
	require.NoError(t, err)
	return client, job
}

func TestStore_InTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	_, job := seedJob(t, ctx, store)

	boom := errors.New("boom")
	err := store.InTx(ctx, func(tx storage.Store) error {
		_, err := tx.Jobs().TransitionStatus(ctx, job.ID, models.JobStatusOpen, models.JobStatusInProgress)
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	reloaded, err := store.Jobs().GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, reloaded.Status)
}

func TestStore_InTx_Commits(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	_, job := seedJob(t, ctx, store)

	err := store.InTx(ctx, func(tx storage.Store) error {
		_, err := tx.Jobs().TransitionStatus(ctx, job.ID, models.JobStatusOpen, models.JobStatusInProgress)
		return err
	})
	require.NoError(t, err)

	reloaded, err := store.Jobs().GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, reloaded.Status)
}

func TestJobRepo_TransitionStatus_Stale(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	_, job := seedJob(t, ctx, store)

	_, err := store.Jobs().TransitionStatus(ctx, job.ID, models.JobStatusInProgress, models.JobStatusClosed)
	assert.ErrorIs(t, err, storage.ErrStaleState)

	_, err = store.Jobs().TransitionStatus(ctx, uuid.New(), models.JobStatusOpen, models.JobStatusClosed)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestContractRepo_UniquePerJob(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	client, job := seedJob(t, ctx, store)

	contract := &models.Contract{JobID: job.ID, ProposalID: uuid.New(), ClientID: client.ID, FreelancerID: uuid.New(), Amount: 100}
	_, err := store.Contracts().Create(ctx, contract)
	require.NoError(t, err)

	_, err = store.Contracts().Create(ctx, &models.Contract{JobID: job.ID, ProposalID: uuid.New(), ClientID: client.ID, Amount: 90})
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	_, err := store.Users().Create(ctx, &models.User{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = store.Users().Create(ctx, &models.User{Name: "B", Email: "A@example.com"})
	assert.ErrorIs(t, err, storage.ErrDuplicateEmail)
}

func TestJobRepo_List_Filters(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	client, _ := seedJob(t, ctx, store)
	_, err := store.Jobs().Create(ctx, &models.Job{ClientID: client.ID, Title: "Go backend", Description: "REST API", Budget: 1500, Skills: []string{"Go"}})
	require.NoError(t, err)

	minBudget := 1000.0
	jobs, err := store.Jobs().List(ctx, storage.JobFilter{MinBudget: &minBudget, Limit: 10})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Go backend", jobs[0].Title)

	jobs, err = store.Jobs().List(ctx, storage.JobFilter{Skill: "go", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	jobs, err = store.Jobs().List(ctx, storage.JobFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Go backend", jobs[0].Title, "newest first")
}
