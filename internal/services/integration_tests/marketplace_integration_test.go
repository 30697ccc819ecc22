package integration_tests

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"assuredgig/internal/events"
	"assuredgig/internal/metrics"
	"assuredgig/internal/models"
	"assuredgig/internal/payments"
	"assuredgig/internal/services"
	"assuredgig/internal/session"
	"assuredgig/internal/storage"
	"assuredgig/internal/storage/postgres"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalService_Integration_AcceptCreatesContract(t *testing.T) {
	pool, _ := getTestClients(t)
	defer cleanupTables(t, pool)

	ctx := context.Background()
	store := postgres.NewStore(pool)
	svc := services.NewProposalService(store, events.NewBus(), metrics.New())

	client := createTestUser(t, store, models.RoleClient)
	freelancer := createTestUser(t, store, models.RoleFreelancer)
	job := createTestJob(t, store, client.ID, 5000)
	proposal := createTestProposal(t, store, job.ID, freelancer.ID, 4500)

	accepted, contract, err := svc.AcceptProposal(ctx, &dto.AcceptProposalRequest{ProposalID: proposal.ID, UserID: client.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusAccepted, accepted.Status)
	assert.Equal(t, models.ContractStatusPending, contract.Status)
	assert.Equal(t, 4500.0, contract.Amount)

	updatedJob, err := store.Jobs().GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, updatedJob.Status)

	byJob, err := store.Contracts().GetByJobID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.ID, byJob.ID)
}

func TestProposalService_Integration_ConcurrentAcceptsYieldOneContract(t *testing.T) {
	pool, _ := getTestClients(t)
	defer cleanupTables(t, pool)

	ctx := context.Background()
	store := postgres.NewStore(pool)
	svc := services.NewProposalService(store, events.NewBus(), metrics.New())

	client := createTestUser(t, store, models.RoleClient)
	job := createTestJob(t, store, client.ID, 5000)

	const bidders = 6
	proposals := make([]*models.Proposal, bidders)
	for i := range proposals {
		f := createTestUser(t, store, models.RoleFreelancer)
		proposals[i] = createTestProposal(t, store, job.ID, f.ID, float64(1000+i))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	start := make(chan struct{})
	for _, p := range proposals {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			<-start
			_, _, err := svc.AcceptProposal(ctx, &dto.AcceptProposalRequest{ProposalID: id, UserID: client.ID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, services.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(p.ID)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, bidders-1, conflicts)

	contracts, err := store.Contracts().List(ctx, storage.ContractFilter{ParticipantID: client.ID, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, contracts, 1)

	accepted, err := store.Proposals().List(ctx, storage.ProposalFilter{JobID: &job.ID, Limit: 50})
	require.NoError(t, err)
	var acceptedCount int
	for _, p := range accepted {
		if p.Status == models.ProposalStatusAccepted {
			acceptedCount++
		}
	}
	assert.Equal(t, 1, acceptedCount)
}

func TestContractService_Integration_MilestoneProgress(t *testing.T) {
	pool, _ := getTestClients(t)
	defer cleanupTables(t, pool)

	ctx := context.Background()
	store := postgres.NewStore(pool)
	proposals := services.NewProposalService(store, events.NewBus(), metrics.New())
	contracts := services.NewContractService(store, events.NewBus())

	client := createTestUser(t, store, models.RoleClient)
	freelancer := createTestUser(t, store, models.RoleFreelancer)
	job := createTestJob(t, store, client.ID, 2000)
	proposal := createTestProposal(t, store, job.ID, freelancer.ID, 1800)
	_, contract, err := proposals.AcceptProposal(ctx, &dto.AcceptProposalRequest{ProposalID: proposal.ID, UserID: client.ID})
	require.NoError(t, err)

	progress, err := contracts.GetProgress(ctx, &dto.GetProgressRequest{ContractID: contract.ID, UserID: freelancer.ID})
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress.Percentage)
	assert.Empty(t, progress.Milestones)

	var first *models.Milestone
	for _, desc := range []string{"Wireframes", "Build", "Launch", "Handover"} {
		m, _, err := contracts.AddMilestone(ctx, &dto.AddMilestoneRequest{ContractID: contract.ID, UserID: client.ID, Description: desc, Amount: 450})
		require.NoError(t, err)
		if first == nil {
			first = m
		}
	}

	progress, err = contracts.UpdateMilestoneStatus(ctx, &dto.UpdateMilestoneStatusRequest{
		ContractID:  contract.ID,
		UserID:      freelancer.ID,
		MilestoneID: first.ID,
		Status:      models.MilestoneStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, progress.Total)
	assert.Equal(t, 1, progress.Completed)
	assert.InDelta(t, 25.0, progress.Percentage, 0.001)
}

func TestPaymentService_Integration_WebhookSettlesPayment(t *testing.T) {
	pool, rdb := getTestClients(t)
	defer cleanupTables(t, pool)

	ctx := context.Background()
	store := postgres.NewStore(pool)

	registry := payments.NewRegistry()
	registry.RegisterParser(payments.NewRazorpayGateway("rzp_test_key", testKeySecret, testWebhookSecret))

	var dedup payments.Deduplicator
	if rdb != nil {
		dedup = payments.NewRedisDeduplicator(rdb, time.Minute)
	}
	svc := services.NewPaymentService(store, registry, dedup, events.NewBus(), metrics.New(), "INR")
	proposals := services.NewProposalService(store, events.NewBus(), metrics.New())

	client := createTestUser(t, store, models.RoleClient)
	freelancer := createTestUser(t, store, models.RoleFreelancer)
	job := createTestJob(t, store, client.ID, 1000)
	proposal := createTestProposal(t, store, job.ID, freelancer.ID, 900)
	_, contract, err := proposals.AcceptProposal(ctx, &dto.AcceptProposalRequest{ProposalID: proposal.ID, UserID: client.ID})
	require.NoError(t, err)

	orderID := "order_" + uuid.NewString()[:12]
	payment, err := store.Payments().Create(ctx, &models.Payment{
		ContractID:     contract.ID,
		PayerID:        client.ID,
		Amount:         900,
		Currency:       "INR",
		Provider:       models.ProviderRazorpay,
		GatewayOrderID: orderID,
		Status:         models.PaymentStatusPending,
	})
	require.NoError(t, err)

	paymentID := "pay_" + uuid.NewString()[:12]
	if rdb != nil {
		defer rdb.Del(ctx, "webhook:razorpay:checkout:"+paymentID+":captured")
	}
	body := checkoutPayload(t, orderID, paymentID)

	result, err := svc.HandleWebhook(ctx, models.ProviderRazorpay, body, http.Header{})
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeApplied, result.Outcome)
	assert.True(t, result.ContractActivated)

	result, err = svc.HandleWebhook(ctx, models.ProviderRazorpay, body, http.Header{})
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeDuplicate, result.Outcome)

	stored, err := store.Payments().GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, stored.Status)
	require.NotNil(t, stored.GatewayPaymentID)
	assert.Equal(t, paymentID, *stored.GatewayPaymentID)

	active, err := store.Contracts().GetByID(ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusActive, active.Status)
}

func TestUserRepo_Integration_DuplicateEmail(t *testing.T) {
	pool, _ := getTestClients(t)
	defer cleanupTables(t, pool)

	ctx := context.Background()
	store := postgres.NewStore(pool)
	user := createTestUser(t, store, models.RoleClient)

	_, err := store.Users().Create(ctx, &models.User{
		ID:           uuid.New(),
		Name:         "Copy",
		Email:        user.Email,
		PasswordHash: "x",
		Role:         models.RoleClient,
		Skills:       []string{},
	})
	assert.ErrorIs(t, err, storage.ErrDuplicateEmail)

	found, err := store.Users().GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestRedisSessionStore_Integration(t *testing.T) {
	rdb := requireRedis(t)
	ctx := context.Background()
	sessions := session.NewRedisStore(rdb)

	sid := uuid.NewString()
	defer sessions.Delete(ctx, sid)

	_, hash, err := session.NewRefreshToken(sid)
	require.NoError(t, err)
	require.NoError(t, sessions.Create(ctx, &session.Session{
		ID:          sid,
		UserID:      uuid.New(),
		Role:        models.RoleFreelancer,
		RefreshHash: hash,
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   time.Now().UTC().Add(time.Hour),
	}))

	got, err := sessions.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, hash, got.RefreshHash)

	_, newHash, err := session.NewRefreshToken(sid)
	require.NoError(t, err)
	rotated, err := sessions.Rotate(ctx, sid, hash, newHash, time.Now().UTC().Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, newHash, rotated.RefreshHash)

	_, err = sessions.Rotate(ctx, sid, hash, newHash, time.Now().UTC().Add(2*time.Hour))
	assert.ErrorIs(t, err, session.ErrRefreshInvalid)

	require.NoError(t, sessions.Delete(ctx, sid))
	_, err = sessions.Get(ctx, sid)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisDeduplicator_Integration(t *testing.T) {
	rdb := requireRedis(t)
	ctx := context.Background()
	dedup := payments.NewRedisDeduplicator(rdb, time.Minute)
	eventID := "evt_" + uuid.NewString()

	ok, err := dedup.Claim(ctx, "stripe", eventID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dedup.Claim(ctx, "stripe", eventID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, dedup.Release(ctx, "stripe", eventID))
	ok, err = dedup.Claim(ctx, "stripe", eventID)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, dedup.Release(ctx, "stripe", eventID))
}
