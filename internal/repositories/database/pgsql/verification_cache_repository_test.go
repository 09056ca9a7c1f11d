package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []string
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		*(d.(*string)) = r.values[i]
	}
	return nil
}

type fakeDB struct {
	row      fakeRow
	tag      pgconn.CommandTag
	execErr  error
	lastSQL  string
	lastArgs []any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.tag, f.execErr
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

func newTestRepo(db *fakeDB, now time.Time) *PgxVerificationCacheRepository {
	repo := newPgxVerificationCacheRepository(db)
	repo.now = func() time.Time { return now }
	return repo
}

func TestFindVerification_Hit(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []string{"ADA OBI", "0123456789"}}}

	account, err := newTestRepo(db, now).FindVerification(context.Background(), "key")

	require.NoError(t, err)
	assert.Equal(t, &domain.ResolvedAccount{AccountName: "ADA OBI", AccountNumber: "0123456789"}, account)
	assert.Equal(t, []any{"key", now}, db.lastArgs)
}

func TestFindVerification_MissIsNotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

	account, err := newTestRepo(db, time.Now()).FindVerification(context.Background(), "key")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindVerification_DatabaseError(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: assert.AnError}}

	_, err := newTestRepo(db, time.Now()).FindVerification(context.Background(), "key")

	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveVerification_SetsExpiry(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{}

	err := newTestRepo(db, now).SaveVerification(context.Background(), "key",
		domain.ResolvedAccount{AccountName: "ADA OBI", AccountNumber: "0123456789"}, time.Hour)

	require.NoError(t, err)
	assert.Contains(t, db.lastSQL, "ON CONFLICT (cache_key)")
	assert.Equal(t, []any{"key", "ADA OBI", "0123456789", now, now.Add(time.Hour)}, db.lastArgs)
}

func TestPurgeExpired_ReportsRowsAffected(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("DELETE 3")}

	n, err := newTestRepo(db, time.Now()).PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestPurgeExpired_Error(t *testing.T) {
	db := &fakeDB{execErr: assert.AnError}

	_, err := newTestRepo(db, time.Now()).PurgeExpired(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
