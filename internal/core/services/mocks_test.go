package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountResolver ---
type MockAccountResolver struct {
	mock.Mock
}

func (m *MockAccountResolver) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.ResolvedAccount, error) {
	args := m.Called(ctx, accountNumber, bankCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedAccount), args.Error(1)
}

// --- Mock GeoLocator ---
type MockGeoLocator struct {
	mock.Mock
}

func (m *MockGeoLocator) LookupCountry(ctx context.Context, ip string) (string, string, error) {
	args := m.Called(ctx, ip)
	return args.String(0), args.String(1), args.Error(2)
}

// --- Mock RemoteProcedures ---
type MockRemoteProcedures struct {
	mock.Mock
}

func (m *MockRemoteProcedures) DistributeReward(ctx context.Context, userID, contentID string, contentType domain.ContentType, action domain.InteractionAction) error {
	args := m.Called(ctx, userID, contentID, contentType, action)
	return args.Error(0)
}

func (m *MockRemoteProcedures) IncrementViewCount(ctx context.Context, contentID string, contentType domain.ContentType) error {
	args := m.Called(ctx, contentID, contentType)
	return args.Error(0)
}

func (m *MockRemoteProcedures) IncrementContactCount(ctx context.Context, contentID string, contentType domain.ContentType) error {
	args := m.Called(ctx, contentID, contentType)
	return args.Error(0)
}

// --- Mock VerificationCacheRepository ---
type MockVerificationCache struct {
	mock.Mock
}

func (m *MockVerificationCache) FindVerification(ctx context.Context, key string) (*domain.ResolvedAccount, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedAccount), args.Error(1)
}

func (m *MockVerificationCache) SaveVerification(ctx context.Context, key string, account domain.ResolvedAccount, ttl time.Duration) error {
	args := m.Called(ctx, key, account, ttl)
	return args.Error(0)
}

func (m *MockVerificationCache) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
