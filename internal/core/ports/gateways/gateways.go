package gateways

import (
	"context"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
)

// AccountResolver resolves a bank account against a verification provider.
//
// Implementations return an error matching apperrors.ErrConfiguration when they hold no
// credentials, an *apperrors.ProviderError when the provider rejects the account, and an
// error matching apperrors.ErrTransport when the provider cannot be reached or decoded.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.ResolvedAccount, error)
}

// GeoLocator looks up the country of an IP address. An empty ip means "the caller".
type GeoLocator interface {
	LookupCountry(ctx context.Context, ip string) (countryCode, countryName string, err error)
}

// RemoteProcedures are database-side procedures invoked by name. Their internals live
// in the database; only the call contract is known here.
type RemoteProcedures interface {
	// DistributeReward credits the user for an action on a piece of content.
	DistributeReward(ctx context.Context, userID, contentID string, contentType domain.ContentType, action domain.InteractionAction) error

	// IncrementViewCount bumps the view counter of a piece of content.
	IncrementViewCount(ctx context.Context, contentID string, contentType domain.ContentType) error

	// IncrementContactCount bumps the contact counter of a piece of content.
	IncrementContactCount(ctx context.Context, contentID string, contentType domain.ContentType) error
}
