package services_test

import (
	"context"
	"sync"
	"testing"

	"assuredgig/internal/models"
	"assuredgig/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a value
func ptr[T any](v T) *T { return &v }

// recordingPublisher keeps every published event in order.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []interface{}
}

func (p *recordingPublisher) Publish(topic string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	if len(args) > 0 {
		p.events = append(p.events, args[0])
	}
}

// recordingPusher captures realtime sends.
type recordingPusher struct {
	mu            sync.Mutex
	userSends     []pushed
	contractSends []pushed
}

type pushed struct {
	UserID     uuid.UUID
	ContractID uuid.UUID
	Channel    string
	EventType  string
	Data       interface{}
}

func (p *recordingPusher) SendToUser(_ context.Context, userID uuid.UUID, channel, eventType string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.userSends = append(p.userSends, pushed{UserID: userID, Channel: channel, EventType: eventType, Data: data})
}

func (p *recordingPusher) SendToContract(_ context.Context, contractID, _, _ uuid.UUID, eventType string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contractSends = append(p.contractSends, pushed{ContractID: contractID, EventType: eventType, Data: data})
}

func createTestUser(t *testing.T, store storage.Store, role models.Role) *models.User {
	t.Helper()
	id := uuid.New()
	user, err := store.Users().Create(context.Background(), &models.User{
		ID:           id,
		Name:         "User " + id.String()[:8],
		Email:        id.String()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Skills:       []string{},
	})
	require.NoError(t, err)
	return user
}

func createTestJob(t *testing.T, store storage.Store, clientID uuid.UUID, budget float64) *models.Job {
	t.Helper()
	job, err := store.Jobs().Create(context.Background(), &models.Job{
		ClientID:    clientID,
		Title:       "Build a landing page",
		Description: "Need a responsive landing page",
		Budget:      budget,
		Skills:      []string{"go"},
		Status:      models.JobStatusOpen,
	})
	require.NoError(t, err)
	return job
}

func createTestProposal(t *testing.T, store storage.Store, jobID, freelancerID uuid.UUID, bid float64) *models.Proposal {
	t.Helper()
	p, err := store.Proposals().Create(context.Background(), &models.Proposal{
		JobID:        jobID,
		FreelancerID: freelancerID,
		CoverLetter:  "I have built many landing pages before.",
		BidAmount:    bid,
		Status:       models.ProposalStatusPending,
	})
	require.NoError(t, err)
	return p
}

// createTestContract creates a contract in the given status directly in the store.
func createTestContract(t *testing.T, store storage.Store, status models.ContractStatus) (*models.Contract, *models.User, *models.User) {
	t.Helper()
	ctx := context.Background()
	client := createTestUser(t, store, models.RoleClient)
	freelancer := createTestUser(t, store, models.RoleFreelancer)
	job := createTestJob(t, store, client.ID, 1000)
	proposal := createTestProposal(t, store, job.ID, freelancer.ID, 900)

	_, err := store.Jobs().TransitionStatus(ctx, job.ID, models.JobStatusOpen, models.JobStatusInProgress)
	require.NoError(t, err)
	contract, err := store.Contracts().Create(ctx, &models.Contract{
		JobID:        job.ID,
		ProposalID:   proposal.ID,
		ClientID:     client.ID,
		FreelancerID: freelancer.ID,
		Amount:       proposal.BidAmount,
		Status:       status,
	})
	require.NoError(t, err)
	return contract, client, freelancer
}
