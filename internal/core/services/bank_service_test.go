package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/SscSPs/coin_wallet_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testCacheSecret = "sk_test_cache"

type BankServiceTestSuite struct {
	suite.Suite
	resolver *MockAccountResolver
	cache    *MockVerificationCache
	service  *services.BankService
}

func (suite *BankServiceTestSuite) SetupTest() {
	suite.resolver = new(MockAccountResolver)
	suite.cache = new(MockVerificationCache)
	suite.service = services.NewBankService(suite.resolver)
}

func (suite *BankServiceTestSuite) TestGetBankCode() {
	ctx := context.Background()

	code, err := suite.service.GetBankCode(ctx, "  Access Bank ")
	suite.Require().NoError(err)
	suite.Equal("044", code)

	_, err = suite.service.GetBankCode(ctx, "Nonexistent Bank")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BankServiceTestSuite) TestListBanks_NotEmpty() {
	suite.NotEmpty(suite.service.ListBanks(context.Background()))
}

func (suite *BankServiceTestSuite) TestVerifyAccount_Success() {
	ctx := context.Background()
	suite.resolver.On("ResolveAccount", ctx, "0123456789", "058").
		Return(&domain.ResolvedAccount{AccountName: "JOHN DOE", AccountNumber: "0123456789"}, nil).Once()

	result, err := suite.service.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})

	suite.Require().NoError(err)
	suite.True(result.Verified)
	suite.Equal("JOHN DOE", result.AccountName)
	suite.Equal("0123456789", result.AccountNumber)
	suite.Empty(result.Error)
	suite.resolver.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestVerifyAccount_MissingFieldMakesNoCall() {
	ctx := context.Background()

	for _, req := range []domain.VerificationRequest{
		{AccountNumber: "0123456789"},
		{BankCode: "058"},
		{AccountNumber: "   ", BankCode: "058"},
	} {
		result, err := suite.service.VerifyAccount(ctx, req)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.False(result.Verified)
		suite.Equal(services.MsgMissingFields, result.Error)
	}

	suite.resolver.AssertNumberOfCalls(suite.T(), "ResolveAccount", 0)
}

func (suite *BankServiceTestSuite) TestVerifyAccount_ProviderRejection() {
	ctx := context.Background()
	providerErr := &apperrors.ProviderError{StatusCode: 422, Message: "Could not resolve account name. Check parameters or try again."}
	suite.resolver.On("ResolveAccount", ctx, "0000000000", "058").Return(nil, providerErr).Once()

	result, err := suite.service.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0000000000", BankCode: "058"})

	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.False(result.Verified)
	suite.Equal(providerErr.Message, result.Error)
}

func (suite *BankServiceTestSuite) TestVerifyAccount_ProviderRejectionWithoutMessage() {
	ctx := context.Background()
	suite.resolver.On("ResolveAccount", ctx, "0000000000", "058").
		Return(nil, &apperrors.ProviderError{StatusCode: 400}).Once()

	result, err := suite.service.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0000000000", BankCode: "058"})

	suite.Error(err)
	suite.Equal(services.MsgProviderFallback, result.Error)
}

func (suite *BankServiceTestSuite) TestVerifyAccount_MissingSecret() {
	ctx := context.Background()
	suite.resolver.On("ResolveAccount", ctx, "0123456789", "058").
		Return(nil, fmt.Errorf("%w: paystack secret key missing", apperrors.ErrConfiguration)).Once()

	result, err := suite.service.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})

	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.False(result.Verified)
	suite.Equal(services.MsgNotConfigured, result.Error)
}

func (suite *BankServiceTestSuite) TestVerifyAccount_TransportFailureHidesDetails() {
	ctx := context.Background()
	suite.resolver.On("ResolveAccount", ctx, "0123456789", "058").
		Return(nil, fmt.Errorf("%w: dial tcp: connection refused", apperrors.ErrTransport)).Once()

	result, err := suite.service.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})

	suite.ErrorIs(err, apperrors.ErrTransport)
	suite.False(result.Verified)
	suite.Equal(services.MsgUnavailable, result.Error)
	suite.NotContains(result.Error, "connection refused")
}

func (suite *BankServiceTestSuite) TestVerifyAccount_CacheHitSkipsProvider() {
	ctx := context.Background()
	svc := services.NewBankService(suite.resolver, services.WithVerificationCache(suite.cache, time.Hour, []byte(testCacheSecret)))
	suite.cache.On("FindVerification", ctx, mock.AnythingOfType("string")).
		Return(&domain.ResolvedAccount{AccountName: "JANE DOE", AccountNumber: "0123456789"}, nil).Once()

	result, err := svc.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})

	suite.Require().NoError(err)
	suite.True(result.Verified)
	suite.Equal("JANE DOE", result.AccountName)
	suite.resolver.AssertNumberOfCalls(suite.T(), "ResolveAccount", 0)
	suite.cache.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestVerifyAccount_CacheMissStoresSuccess() {
	ctx := context.Background()
	svc := services.NewBankService(suite.resolver, services.WithVerificationCache(suite.cache, time.Hour, []byte(testCacheSecret)))
	account := domain.ResolvedAccount{AccountName: "JOHN DOE", AccountNumber: "0123456789"}

	suite.cache.On("FindVerification", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()
	suite.resolver.On("ResolveAccount", ctx, "0123456789", "058").Return(&account, nil).Once()
	suite.cache.On("SaveVerification", ctx, mock.MatchedBy(func(key string) bool {
		return len(key) == 64
	}), account, time.Hour).Return(nil).Once()

	result, err := svc.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})

	suite.Require().NoError(err)
	suite.True(result.Verified)
	suite.cache.AssertExpectations(suite.T())
	suite.resolver.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestVerifyAccount_CacheKeyDependsOnSecret() {
	ctx := context.Background()
	req := domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"}
	hit := &domain.ResolvedAccount{AccountName: "JANE DOE", AccountNumber: "0123456789"}

	var keys []string
	suite.cache.On("FindVerification", ctx, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { keys = append(keys, args.String(1)) }).
		Return(hit, nil).Times(3)

	first := services.NewBankService(suite.resolver, services.WithVerificationCache(suite.cache, time.Hour, []byte("secret-one")))
	second := services.NewBankService(suite.resolver, services.WithVerificationCache(suite.cache, time.Hour, []byte("secret-two")))
	for _, svc := range []*services.BankService{first, first, second} {
		_, err := svc.VerifyAccount(ctx, req)
		suite.Require().NoError(err)
	}

	suite.Require().Len(keys, 3)
	suite.Equal(keys[0], keys[1])
	suite.NotEqual(keys[0], keys[2])
	for _, k := range keys {
		suite.Regexp(`^[0-9a-f]{64}$`, k)
		suite.NotContains(k, "0123456789")
	}
}

func (suite *BankServiceTestSuite) TestVerifyAccount_FailuresAreNotCached() {
	ctx := context.Background()
	svc := services.NewBankService(suite.resolver, services.WithVerificationCache(suite.cache, time.Hour, []byte(testCacheSecret)))

	suite.cache.On("FindVerification", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()
	suite.resolver.On("ResolveAccount", ctx, "0123456789", "058").
		Return(nil, &apperrors.ProviderError{StatusCode: 422, Message: "Invalid account"}).Once()

	result, err := svc.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})

	suite.Error(err)
	suite.False(result.Verified)
	suite.cache.AssertNotCalled(suite.T(), "SaveVerification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankServiceTestSuite) TestVerifyAccount_CacheErrorFallsThrough() {
	ctx := context.Background()
	svc := services.NewBankService(suite.resolver, services.WithVerificationCache(suite.cache, time.Hour, []byte(testCacheSecret)))
	account := domain.ResolvedAccount{AccountName: "JOHN DOE", AccountNumber: "0123456789"}

	suite.cache.On("FindVerification", ctx, mock.AnythingOfType("string")).Return(nil, errors.New("redis down")).Once()
	suite.resolver.On("ResolveAccount", ctx, "0123456789", "058").Return(&account, nil).Once()
	suite.cache.On("SaveVerification", ctx, mock.AnythingOfType("string"), account, time.Hour).Return(errors.New("redis down")).Once()

	result, err := svc.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})

	suite.Require().NoError(err)
	suite.True(result.Verified)
}

func (suite *BankServiceTestSuite) TestVerifyAccount_ZeroTTLDisablesCache() {
	ctx := context.Background()
	svc := services.NewBankService(suite.resolver, services.WithVerificationCache(suite.cache, 0, []byte(testCacheSecret)))
	suite.resolver.On("ResolveAccount", ctx, "0123456789", "058").
		Return(&domain.ResolvedAccount{AccountName: "JOHN DOE", AccountNumber: "0123456789"}, nil).Twice()

	for i := 0; i < 2; i++ {
		result, err := svc.VerifyAccount(ctx, domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})
		suite.Require().NoError(err)
		suite.True(result.Verified)
	}

	suite.resolver.AssertNumberOfCalls(suite.T(), "ResolveAccount", 2)
	suite.cache.AssertNotCalled(suite.T(), "FindVerification", mock.Anything, mock.Anything)
}

func (suite *BankServiceTestSuite) TestVerifyAccount_NoResolver() {
	svc := services.NewBankService(nil)

	result, err := svc.VerifyAccount(context.Background(), domain.VerificationRequest{AccountNumber: "0123456789", BankCode: "058"})

	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.False(result.Verified)
}

func TestBankServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}
