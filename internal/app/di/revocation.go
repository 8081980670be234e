package di

import (
	"github.com/redis/go-redis/v9"

	authadapters "account_backend/internal/feature/auth/adapters"
	"account_backend/internal/feature/auth/usecase"
	"account_backend/internal/platform/revocation"
)

// NewRevocationStore creates a RevocationStore implementation.
// If Redis is available, it returns a Redis-backed implementation whose
// entries survive process restarts. Otherwise, it falls back to an
// in-memory store.
func NewRevocationStore(rdb *redis.Client) usecase.RevocationStore {
	if rdb != nil {
		return revocation.NewRevocationRedis(rdb, "revoked")
	}
	return authadapters.NewRevocationMemory()
}
