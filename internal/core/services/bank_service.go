package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/SscSPs/coin_wallet_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/coin_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/coin_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/coin_wallet_app/internal/platform/metrics"
	"github.com/SscSPs/coin_wallet_app/internal/utils/banks"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/blake2b"
)

// Messages returned to callers in VerificationResult.Error.
const (
	MsgMissingFields    = "Account number and bank code are required"
	MsgNotConfigured    = "Bank verification is not configured"
	MsgProviderFallback = "Failed to verify account"
	MsgUnavailable      = "Unable to verify account at this time"
)

// BankService resolves bank names and verifies accounts with the provider.
type BankService struct {
	BaseService
	resolver gateways.AccountResolver
	cache    portsrepo.VerificationCacheRepositoryFacade
	cacheTTL time.Duration
	cacheKey [32]byte
	validate *validator.Validate
}

// BankServiceOption configures optional BankService collaborators.
type BankServiceOption func(*BankService)

// WithVerificationCache caches successful verifications for ttl, keyed by a
// MAC of the account under secret. A nil repository or non-positive ttl
// leaves caching disabled.
func WithVerificationCache(repo portsrepo.VerificationCacheRepositoryFacade, ttl time.Duration, secret []byte) BankServiceOption {
	return func(s *BankService) {
		if repo != nil && ttl > 0 {
			s.cache = repo
			s.cacheTTL = ttl
			s.cacheKey = blake2b.Sum256(secret)
		}
	}
}

// NewBankService creates a BankService.
func NewBankService(resolver gateways.AccountResolver, opts ...BankServiceOption) *BankService {
	s := &BankService{
		resolver: resolver,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.BankSvcFacade = (*BankService)(nil)

func (s *BankService) GetBankCode(ctx context.Context, bankName string) (string, error) {
	code, ok := banks.GetBankCode(bankName)
	if !ok {
		return "", fmt.Errorf("%w: bank '%s'", apperrors.ErrNotFound, strings.TrimSpace(bankName))
	}
	return code, nil
}

func (s *BankService) ListBanks(ctx context.Context) []domain.BankDirectoryEntry {
	return banks.ListBanks()
}

// VerifyAccount resolves the account holder name. Every failure is folded into the
// returned result; the error only classifies it for the caller's status mapping.
func (s *BankService) VerifyAccount(ctx context.Context, req domain.VerificationRequest) (result domain.VerificationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.GetLogger(ctx).Error("Panic during bank verification", slog.Any("panic", r))
			metrics.RecordVerification(metrics.OutcomeError)
			result = failure(MsgUnavailable)
			err = fmt.Errorf("%w: panic during verification", apperrors.ErrTransport)
		}
	}()

	req.AccountNumber = strings.TrimSpace(req.AccountNumber)
	req.BankCode = strings.TrimSpace(req.BankCode)
	if verr := s.validate.StructCtx(ctx, req); verr != nil {
		metrics.RecordVerification(metrics.OutcomeInvalid)
		return failure(MsgMissingFields), fmt.Errorf("%w: %s", apperrors.ErrValidation, verr.Error())
	}

	logger := s.GetLogger(ctx).With(slog.String("bank_code", req.BankCode))
	key := s.verificationCacheKey(req)

	if s.cache != nil {
		cached, cerr := s.cache.FindVerification(ctx, key)
		switch {
		case cerr == nil:
			metrics.RecordVerification(metrics.OutcomeCacheHit)
			logger.Debug("Bank verification served from cache")
			return success(*cached, req), nil
		case !errors.Is(cerr, apperrors.ErrNotFound):
			logger.Warn("Verification cache lookup failed", slog.String("error", cerr.Error()))
		}
	}

	if s.resolver == nil {
		metrics.RecordVerification(metrics.OutcomeMisconfigured)
		return failure(MsgNotConfigured), fmt.Errorf("%w: no account resolver", apperrors.ErrConfiguration)
	}

	account, rerr := s.resolver.ResolveAccount(ctx, req.AccountNumber, req.BankCode)
	if rerr != nil {
		var providerErr *apperrors.ProviderError
		switch {
		case errors.Is(rerr, apperrors.ErrConfiguration):
			logger.Error("Bank verification provider not configured", slog.String("error", rerr.Error()))
			metrics.RecordVerification(metrics.OutcomeMisconfigured)
			return failure(MsgNotConfigured), rerr
		case errors.As(rerr, &providerErr):
			logger.Info("Bank verification rejected by provider", slog.Int("provider_status", providerErr.StatusCode))
			metrics.RecordVerification(metrics.OutcomeRejected)
			msg := providerErr.Message
			if msg == "" {
				msg = MsgProviderFallback
			}
			return failure(msg), rerr
		default:
			logger.Error("Bank verification request failed", slog.String("error", rerr.Error()))
			metrics.RecordVerification(metrics.OutcomeError)
			return failure(MsgUnavailable), rerr
		}
	}

	if s.cache != nil {
		if cerr := s.cache.SaveVerification(ctx, key, *account, s.cacheTTL); cerr != nil {
			logger.Warn("Failed to cache bank verification", slog.String("error", cerr.Error()))
		}
	}

	metrics.RecordVerification(metrics.OutcomeVerified)
	return success(*account, req), nil
}

func success(account domain.ResolvedAccount, req domain.VerificationRequest) domain.VerificationResult {
	number := account.AccountNumber
	if number == "" {
		number = req.AccountNumber
	}
	return domain.VerificationResult{
		Verified:      true,
		AccountName:   account.AccountName,
		AccountNumber: number,
	}
}

func failure(msg string) domain.VerificationResult {
	return domain.VerificationResult{Verified: false, Error: msg}
}

// verificationCacheKey is a keyed blake2b MAC so keys cannot be reversed by
// enumerating account numbers without the server secret.
func (s *BankService) verificationCacheKey(req domain.VerificationRequest) string {
	h, _ := blake2b.New256(s.cacheKey[:]) // 32-byte keys are always accepted
	h.Write([]byte(req.BankCode + ":" + req.AccountNumber))
	return hex.EncodeToString(h.Sum(nil))
}
