package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/SscSPs/coin_wallet_app/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*VerificationCacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewVerificationCacheRepository(client), mr
}

func TestSaveThenFind(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	account := domain.ResolvedAccount{AccountName: "ADA OBI", AccountNumber: "0123456789"}

	require.NoError(t, repo.SaveVerification(ctx, "abc", account, 10*time.Minute))

	assert.True(t, mr.Exists(keyPrefix+"abc"))
	assert.Equal(t, 10*time.Minute, mr.TTL(keyPrefix+"abc"))

	got, err := repo.FindVerification(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, account, *got)
}

func TestFindVerification_ExpiresWithTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	account := domain.ResolvedAccount{AccountName: "ADA OBI", AccountNumber: "0123456789"}
	require.NoError(t, repo.SaveVerification(ctx, "abc", account, time.Minute))

	mr.FastForward(time.Minute)

	_, err := repo.FindVerification(ctx, "abc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindVerification_Miss(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindVerification(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindVerification_CorruptPayload(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set(keyPrefix+"abc", "{not json"))

	_, err := repo.FindVerification(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindVerification_StoredExpiryWithoutTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return now }

	data, err := json.Marshal(models.BankVerification{
		AccountName:   "ADA OBI",
		AccountNumber: "0123456789",
		VerifiedAt:    now.Add(-time.Hour),
		ExpiresAt:     now.Add(-time.Second),
	})
	require.NoError(t, err)
	require.NoError(t, mr.Set(keyPrefix+"stale", string(data)))

	_, err = repo.FindVerification(context.Background(), "stale")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPurgeExpired_NoOp(t *testing.T) {
	repo, _ := newTestRepo(t)

	n, err := repo.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
