package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
)

// VerificationCacheReader defines read operations for cached verifications.
type VerificationCacheReader interface {
	// FindVerification returns apperrors.ErrNotFound on a miss or an expired entry.
	FindVerification(ctx context.Context, key string) (*domain.ResolvedAccount, error)
}

// VerificationCacheWriter defines write operations for cached verifications.
type VerificationCacheWriter interface {
	SaveVerification(ctx context.Context, key string, account domain.ResolvedAccount, ttl time.Duration) error

	// PurgeExpired removes expired entries and reports how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

// VerificationCacheRepositoryFacade combines all verification cache operations.
type VerificationCacheRepositoryFacade interface {
	VerificationCacheReader
	VerificationCacheWriter
}
