package services_test

import (
	"context"
	"testing"

	"assuredgig/internal/events"
	"assuredgig/internal/models"
	"assuredgig/internal/services"
	"assuredgig/internal/storage/memory"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContractServiceTest(t *testing.T) (context.Context, services.ContractService, *memory.Store, *recordingPublisher) {
	store := memory.New()
	pub := &recordingPublisher{}
	return context.Background(), services.NewContractService(store, pub), store, pub
}

// A contract with no milestones is at 0%; one completed milestone takes it to 100%.
func TestContractService_MilestoneProgress(t *testing.T) {
	ctx, svc, store, pub := setupContractServiceTest(t)
	contract, client, freelancer := createTestContract(t, store, models.ContractStatusActive)

	progress, err := svc.GetProgress(ctx, &dto.GetProgressRequest{ContractID: contract.ID, UserID: client.ID})
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress.Percentage)
	assert.Equal(t, 0, progress.Total)

	milestone, progress, err := svc.AddMilestone(ctx, &dto.AddMilestoneRequest{
		ContractID:  contract.ID,
		UserID:      freelancer.ID,
		Description: "Wireframes",
		Amount:      100,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MilestoneStatusPending, milestone.Status)
	assert.Equal(t, 0.0, progress.Percentage)
	assert.Equal(t, 1, progress.Total)

	progress, err = svc.UpdateMilestoneStatus(ctx, &dto.UpdateMilestoneStatusRequest{
		ContractID:  contract.ID,
		UserID:      freelancer.ID,
		MilestoneID: milestone.ID,
		Status:      models.MilestoneStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, progress.Percentage)
	assert.Equal(t, 1, progress.Completed)
	require.Len(t, progress.Milestones, 1)
	assert.NotNil(t, progress.Milestones[0].CompletedAt)

	require.Equal(t, []string{events.TopicMilestoneCompleted}, pub.topics)
	ev := pub.events[0].(events.MilestoneCompleted)
	assert.Equal(t, freelancer.ID, ev.CompletedBy)
	assert.Equal(t, 100.0, ev.Percentage)

	// Re-marking an already completed milestone publishes nothing new.
	_, err = svc.UpdateMilestoneStatus(ctx, &dto.UpdateMilestoneStatusRequest{
		ContractID: contract.ID, UserID: client.ID, MilestoneID: milestone.ID, Status: models.MilestoneStatusCompleted,
	})
	require.NoError(t, err)
	assert.Len(t, pub.topics, 1)
}

func TestContractService_ProgressIsMonotonic(t *testing.T) {
	ctx, svc, store, _ := setupContractServiceTest(t)
	contract, client, _ := createTestContract(t, store, models.ContractStatusPending)

	ids := make([]uuid.UUID, 3)
	for i := range ids {
		m, _, err := svc.AddMilestone(ctx, &dto.AddMilestoneRequest{ContractID: contract.ID, UserID: client.ID, Description: "Step", Amount: 10})
		require.NoError(t, err)
		ids[i] = m.ID
	}

	last := 0.0
	for _, id := range ids {
		progress, err := svc.UpdateMilestoneStatus(ctx, &dto.UpdateMilestoneStatusRequest{
			ContractID: contract.ID, UserID: client.ID, MilestoneID: id, Status: models.MilestoneStatusCompleted,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, progress.Percentage, last)
		last = progress.Percentage
	}
	assert.Equal(t, 100.0, last)
}

func TestContractService_MilestoneRules(t *testing.T) {
	ctx, svc, store, _ := setupContractServiceTest(t)
	contract, client, _ := createTestContract(t, store, models.ContractStatusActive)
	outsider := createTestUser(t, store, models.RoleFreelancer)

	t.Run("outsider is forbidden", func(t *testing.T) {
		_, _, err := svc.AddMilestone(ctx, &dto.AddMilestoneRequest{ContractID: contract.ID, UserID: outsider.ID, Description: "x", Amount: 1})
		assert.ErrorIs(t, err, services.ErrForbidden)
		_, err = svc.GetProgress(ctx, &dto.GetProgressRequest{ContractID: contract.ID, UserID: outsider.ID})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("unknown contract", func(t *testing.T) {
		_, _, err := svc.AddMilestone(ctx, &dto.AddMilestoneRequest{ContractID: uuid.New(), UserID: client.ID, Description: "x", Amount: 1})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("milestone from another contract", func(t *testing.T) {
		other, otherClient, _ := createTestContract(t, store, models.ContractStatusActive)
		m, _, err := svc.AddMilestone(ctx, &dto.AddMilestoneRequest{ContractID: other.ID, UserID: otherClient.ID, Description: "x", Amount: 1})
		require.NoError(t, err)
		_, err = svc.UpdateMilestoneStatus(ctx, &dto.UpdateMilestoneStatusRequest{
			ContractID: contract.ID, UserID: client.ID, MilestoneID: m.ID, Status: models.MilestoneStatusCompleted,
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("closed contract conflicts", func(t *testing.T) {
		done, doneClient, _ := createTestContract(t, store, models.ContractStatusCompleted)
		_, _, err := svc.AddMilestone(ctx, &dto.AddMilestoneRequest{ContractID: done.ID, UserID: doneClient.ID, Description: "x", Amount: 1})
		assert.ErrorIs(t, err, services.ErrConflict)
	})
}

func TestContractService_UpdateStatus(t *testing.T) {
	ctx, svc, store, pub := setupContractServiceTest(t)

	t.Run("client completes an active contract and the job closes", func(t *testing.T) {
		contract, client, _ := createTestContract(t, store, models.ContractStatusActive)
		updated, err := svc.UpdateStatus(ctx, &dto.UpdateContractStatusRequest{ID: contract.ID, UserID: client.ID, Status: models.ContractStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, models.ContractStatusCompleted, updated.Status)

		job, err := store.Jobs().GetByID(ctx, contract.JobID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusClosed, job.Status)
		assert.Contains(t, pub.topics, events.TopicContractCompleted)
	})

	t.Run("freelancer cannot complete", func(t *testing.T) {
		contract, _, freelancer := createTestContract(t, store, models.ContractStatusActive)
		_, err := svc.UpdateStatus(ctx, &dto.UpdateContractStatusRequest{ID: contract.ID, UserID: freelancer.ID, Status: models.ContractStatusCompleted})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("pending contract cannot complete", func(t *testing.T) {
		contract, client, _ := createTestContract(t, store, models.ContractStatusPending)
		_, err := svc.UpdateStatus(ctx, &dto.UpdateContractStatusRequest{ID: contract.ID, UserID: client.ID, Status: models.ContractStatusCompleted})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("either party cancels", func(t *testing.T) {
		contract, _, freelancer := createTestContract(t, store, models.ContractStatusPending)
		updated, err := svc.UpdateStatus(ctx, &dto.UpdateContractStatusRequest{ID: contract.ID, UserID: freelancer.ID, Status: models.ContractStatusCancelled})
		require.NoError(t, err)
		assert.Equal(t, models.ContractStatusCancelled, updated.Status)

		_, err = svc.UpdateStatus(ctx, &dto.UpdateContractStatusRequest{ID: contract.ID, UserID: freelancer.ID, Status: models.ContractStatusCancelled})
		assert.ErrorIs(t, err, services.ErrConflict)
	})
}

// Closing the job by hand must not strand a live contract that still has to complete it.
func TestContractService_JobCloseDoesNotBlockCompletion(t *testing.T) {
	ctx, svc, store, _ := setupContractServiceTest(t)
	jobs := services.NewJobService(store)
	closed := models.JobStatusClosed

	contract, client, _ := createTestContract(t, store, models.ContractStatusActive)

	_, err := jobs.UpdateJob(ctx, &dto.UpdateJobRequest{ID: contract.JobID, UserID: client.ID, Status: &closed})
	assert.ErrorIs(t, err, services.ErrInvalidState)

	job, err := store.Jobs().GetByID(ctx, contract.JobID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, job.Status)

	updated, err := svc.UpdateStatus(ctx, &dto.UpdateContractStatusRequest{ID: contract.ID, UserID: client.ID, Status: models.ContractStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusCompleted, updated.Status)

	job, err = store.Jobs().GetByID(ctx, contract.JobID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, job.Status)

	t.Run("pending contract also blocks the close", func(t *testing.T) {
		pending, client, _ := createTestContract(t, store, models.ContractStatusPending)
		_, err := jobs.UpdateJob(ctx, &dto.UpdateJobRequest{ID: pending.JobID, UserID: client.ID, Status: &closed})
		assert.ErrorIs(t, err, services.ErrInvalidState)
	})

	t.Run("cancelled contract lets the client close the job", func(t *testing.T) {
		live, client, _ := createTestContract(t, store, models.ContractStatusActive)
		_, err := svc.UpdateStatus(ctx, &dto.UpdateContractStatusRequest{ID: live.ID, UserID: client.ID, Status: models.ContractStatusCancelled})
		require.NoError(t, err)

		job, err := jobs.UpdateJob(ctx, &dto.UpdateJobRequest{ID: live.JobID, UserID: client.ID, Status: &closed})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusClosed, job.Status)
	})
}

func TestContractService_GetAndList(t *testing.T) {
	ctx, svc, store, _ := setupContractServiceTest(t)
	contract, client, freelancer := createTestContract(t, store, models.ContractStatusActive)
	createTestContract(t, store, models.ContractStatusActive)

	got, progress, err := svc.GetContract(ctx, &dto.GetContractRequest{ID: contract.ID, UserID: freelancer.ID})
	require.NoError(t, err)
	assert.Equal(t, contract.ID, got.ID)
	assert.Equal(t, 0.0, progress.Percentage)

	list, err := svc.ListContracts(ctx, &dto.ListContractsRequest{UserID: client.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	status := models.ContractStatusCompleted
	list, err = svc.ListContracts(ctx, &dto.ListContractsRequest{UserID: client.ID, Status: &status})
	require.NoError(t, err)
	assert.Empty(t, list)
}
