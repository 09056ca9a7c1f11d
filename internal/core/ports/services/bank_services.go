package services

import (
	"context"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
)

// BankDirectorySvc defines bank name lookups.
type BankDirectorySvc interface {
	// GetBankCode returns apperrors.ErrNotFound for unknown names.
	GetBankCode(ctx context.Context, bankName string) (string, error)
	ListBanks(ctx context.Context) []domain.BankDirectoryEntry
}

// BankVerificationSvc verifies bank accounts with the provider.
type BankVerificationSvc interface {
	// VerifyAccount always returns a populated result. The error, when non-nil,
	// classifies the failure (validation, configuration, upstream, transport).
	VerifyAccount(ctx context.Context, req domain.VerificationRequest) (domain.VerificationResult, error)
}

// BankSvcFacade combines all bank-related service interfaces
type BankSvcFacade interface {
	BankDirectorySvc
	BankVerificationSvc
}
