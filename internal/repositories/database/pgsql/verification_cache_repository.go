package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/coin_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/coin_wallet_app/internal/models"
	"github.com/SscSPs/coin_wallet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxVerificationCacheRepository stores successful verifications in bank_verifications.
type PgxVerificationCacheRepository struct {
	BaseRepository
	now func() time.Time
}

// NewVerificationCacheRepository creates a new repository for cached verifications.
func NewVerificationCacheRepository(pool *pgxpool.Pool) portsrepo.VerificationCacheRepositoryFacade {
	return newPgxVerificationCacheRepository(pool)
}

func newPgxVerificationCacheRepository(db querier) *PgxVerificationCacheRepository {
	return &PgxVerificationCacheRepository{
		BaseRepository: BaseRepository{DB: db},
		now:            time.Now,
	}
}

// Ensure implementation matches interface
var _ portsrepo.VerificationCacheRepositoryFacade = (*PgxVerificationCacheRepository)(nil)

// FindVerification returns the cached account for key if it has not expired.
func (r *PgxVerificationCacheRepository) FindVerification(ctx context.Context, key string) (*domain.ResolvedAccount, error) {
	query := `
		SELECT account_name, account_number
		FROM bank_verifications
		WHERE cache_key = $1 AND expires_at > $2;
	`
	var row models.BankVerification
	err := r.DB.QueryRow(ctx, query, key, r.now().UTC()).Scan(&row.AccountName, &row.AccountNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cached verification: %w", err)
	}
	account := mapping.ToDomainResolvedAccount(row)
	return &account, nil
}

// SaveVerification inserts or refreshes a cached verification.
func (r *PgxVerificationCacheRepository) SaveVerification(ctx context.Context, key string, account domain.ResolvedAccount, ttl time.Duration) error {
	row := mapping.ToModelBankVerification(key, account, r.now().UTC(), ttl)
	query := `
		INSERT INTO bank_verifications (cache_key, account_name, account_number, verified_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cache_key) DO UPDATE SET
			account_name = EXCLUDED.account_name,
			account_number = EXCLUDED.account_number,
			verified_at = EXCLUDED.verified_at,
			expires_at = EXCLUDED.expires_at;
	`
	_, err := r.DB.Exec(ctx, query, row.CacheKey, row.AccountName, row.AccountNumber, row.VerifiedAt, row.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to save cached verification: %w", err)
	}
	return nil
}

// PurgeExpired deletes rows whose expiry has passed.
func (r *PgxVerificationCacheRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM bank_verifications WHERE expires_at <= $1;`, r.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cached verifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
