package usecase

import (
	"context"
	"time"
)

// RevocationStore abstracts the persistence layer for logged-out tokens.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/revocation, adapters).
type RevocationStore interface {
	// Add records a token as revoked for ttl. Once the underlying token has
	// expired on its own, the entry may be dropped.
	Add(ctx context.Context, token string, ttl time.Duration) error

	// Contains reports whether a token has been revoked.
	Contains(ctx context.Context, token string) (bool, error)
}
