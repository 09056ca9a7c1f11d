// Package redis stores cached bank verifications in Redis, relying on key TTLs for expiry.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/coin_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/coin_wallet_app/internal/models"
	"github.com/SscSPs/coin_wallet_app/internal/utils/mapping"
	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "bank_verification:"

// VerificationCacheRepository implements the verification cache on Redis.
type VerificationCacheRepository struct {
	client *goredis.Client
	now    func() time.Time
}

// NewClient parses a redis:// URL and checks connectivity.
func NewClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NewVerificationCacheRepository creates a Redis-backed verification cache.
func NewVerificationCacheRepository(client *goredis.Client) *VerificationCacheRepository {
	return &VerificationCacheRepository{
		client: client,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var _ portsrepo.VerificationCacheRepositoryFacade = (*VerificationCacheRepository)(nil)

func (r *VerificationCacheRepository) FindVerification(ctx context.Context, key string) (*domain.ResolvedAccount, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cached verification: %w", err)
	}
	var row models.BankVerification
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("failed to decode cached verification: %w", err)
	}
	// Keys written without a TTL still honour the stored expiry.
	if row.Expired(r.now()) {
		return nil, apperrors.ErrNotFound
	}
	account := mapping.ToDomainResolvedAccount(row)
	return &account, nil
}

func (r *VerificationCacheRepository) SaveVerification(ctx context.Context, key string, account domain.ResolvedAccount, ttl time.Duration) error {
	data, err := json.Marshal(mapping.ToModelBankVerification(key, account, r.now(), ttl))
	if err != nil {
		return fmt.Errorf("failed to encode cached verification: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cached verification: %w", err)
	}
	return nil
}

// PurgeExpired is a no-op; Redis expires keys itself.
func (r *VerificationCacheRepository) PurgeExpired(context.Context) (int64, error) {
	return 0, nil
}
