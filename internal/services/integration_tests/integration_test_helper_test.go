package integration_tests

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"assuredgig/internal/database"
	"assuredgig/internal/models"
	"assuredgig/internal/payments"
	"assuredgig/internal/storage/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const (
	testKeySecret     = "rzp_key_secret"
	testWebhookSecret = "rzp_webhook_secret"
)

var (
	testPool        *pgxpool.Pool
	testRedisClient *redis.Client
)

// getTestClients connects to the database named by TEST_DATABASE_URL and applies
// the migrations. The Redis client is nil unless TEST_REDIS_URL is set and reachable.
func getTestClients(t *testing.T) (*pgxpool.Pool, *redis.Client) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	if testPool == nil {
		require.NoError(t, database.MigrateUp(dsn), "Failed to run migrations")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, dsn)
		require.NoError(t, err, "Failed to create connection pool")
		require.NoError(t, pool.Ping(ctx), "Failed to ping test database")
		testPool = pool
	}

	if testRedisClient == nil {
		if addr := os.Getenv("TEST_REDIS_URL"); addr != "" {
			rdb := redis.NewClient(&redis.Options{Addr: addr})
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				log.WithError(err).Warn("Test Redis unreachable, Redis-dependent tests will be skipped")
			} else {
				testRedisClient = rdb
			}
		}
	}

	return testPool, testRedisClient
}

func requireRedis(t *testing.T) *redis.Client {
	t.Helper()
	_, rdb := getTestClients(t)
	if rdb == nil {
		t.Skip("TEST_REDIS_URL not set or unreachable, skipping")
	}
	return rdb
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE TABLE
		gigs, resumes, portfolios, notifications, messages, payments,
		milestones, contracts, proposals, jobs, users
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Failed to truncate tables")
}

func createTestUser(t *testing.T, store *postgres.Store, role models.Role) *models.User {
	t.Helper()
	id := uuid.New()
	user, err := store.Users().Create(context.Background(), &models.User{
		ID:           id,
		Name:         "User " + id.String()[:8],
		Email:        id.String()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Skills:       []string{"go"},
	})
	require.NoError(t, err, "Failed to create test user")
	return user
}

func createTestJob(t *testing.T, store *postgres.Store, clientID uuid.UUID, budget float64) *models.Job {
	t.Helper()
	job, err := store.Jobs().Create(context.Background(), &models.Job{
		ClientID:    clientID,
		Title:       "Build a landing page",
		Description: "Need a responsive landing page",
		Budget:      budget,
		Skills:      []string{"go"},
		Status:      models.JobStatusOpen,
	})
	require.NoError(t, err, "Failed to create test job")
	return job
}

func createTestProposal(t *testing.T, store *postgres.Store, jobID, freelancerID uuid.UUID, bid float64) *models.Proposal {
	t.Helper()
	p, err := store.Proposals().Create(context.Background(), &models.Proposal{
		JobID:        jobID,
		FreelancerID: freelancerID,
		CoverLetter:  "I have built many landing pages before.",
		BidAmount:    bid,
		Status:       models.ProposalStatusPending,
	})
	require.NoError(t, err, "Failed to create test proposal")
	return p
}

func checkoutPayload(t *testing.T, orderID, paymentID string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  payments.SignHex(orderID+"|"+paymentID, testKeySecret),
	})
	require.NoError(t, err)
	return body
}
