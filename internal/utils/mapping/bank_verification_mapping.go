package mapping

import (
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/SscSPs/coin_wallet_app/internal/models"
)

// ToModelBankVerification converts a resolved account to a cache row verified at now
func ToModelBankVerification(key string, d domain.ResolvedAccount, now time.Time, ttl time.Duration) models.BankVerification {
	return models.BankVerification{
		CacheKey:      key,
		AccountName:   d.AccountName,
		AccountNumber: d.AccountNumber,
		VerifiedAt:    now,
		ExpiresAt:     now.Add(ttl),
	}
}

// ToDomainResolvedAccount converts a cache row to a resolved account
func ToDomainResolvedAccount(m models.BankVerification) domain.ResolvedAccount {
	return domain.ResolvedAccount{
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
	}
}
