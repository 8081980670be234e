// Package revocation provides the Redis-backed store for logged-out tokens.
package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"account_backend/internal/feature/auth/usecase"
)

// RevocationRedis implements usecase.RevocationStore using Redis.
// Each entry carries a TTL equal to the revoked token's remaining lifetime,
// so entries expire on their own and survive process restarts.
type RevocationRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.RevocationStore = (*RevocationRedis)(nil)

// NewRevocationRedis creates a new RevocationRedis instance.
func NewRevocationRedis(client *redis.Client, prefix string) *RevocationRedis {
	return &RevocationRedis{
		client: client,
		prefix: prefix,
	}
}

// key returns the Redis key for a revoked token.
func (r *RevocationRedis) key(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// Add records a token as revoked until its remaining lifetime runs out.
func (r *RevocationRedis) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %v", ttl)
	}
	// The value is the revocation time, kept for audit purposes.
	return r.client.Set(ctx, r.key(token), time.Now().Unix(), ttl).Err()
}

// Contains reports whether a token has been revoked.
func (r *RevocationRedis) Contains(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
