package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduplicator remembers webhook deliveries that were already applied.
type Deduplicator interface {
	// Claim returns false if the event was claimed before.
	Claim(ctx context.Context, provider, eventID string) (bool, error)
	// Release forgets a claim so a redelivery can be processed again.
	Release(ctx context.Context, provider, eventID string) error
}

// RedisDeduplicator claims event ids with SETNX and a TTL.
type RedisDeduplicator struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDeduplicator(rdb *redis.Client, ttl time.Duration) *RedisDeduplicator {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &RedisDeduplicator{rdb: rdb, ttl: ttl}
}

var _ Deduplicator = (*RedisDeduplicator)(nil)

func dedupKey(provider, eventID string) string {
	return fmt.Sprintf("webhook:%s:%s", provider, eventID)
}

func (d *RedisDeduplicator) Claim(ctx context.Context, provider, eventID string) (bool, error) {
	ok, err := d.rdb.SetNX(ctx, dedupKey(provider, eventID), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim webhook event: %w", err)
	}
	return ok, nil
}

func (d *RedisDeduplicator) Release(ctx context.Context, provider, eventID string) error {
	return d.rdb.Del(ctx, dedupKey(provider, eventID)).Err()
}
