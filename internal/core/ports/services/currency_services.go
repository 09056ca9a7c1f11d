package services

import (
	"context"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyConverterSvc defines coin and fiat conversions. None of these fail;
// unknown currencies degrade to an identity rate or a bare number.
type CurrencyConverterSvc interface {
	ListRates(ctx context.Context) []domain.CurrencyRate
	CoinsToFiat(ctx context.Context, coins decimal.Decimal, currency string) decimal.Decimal
	FiatToCoins(ctx context.Context, amount decimal.Decimal, currency string) decimal.Decimal
	ConvertCurrency(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) decimal.Decimal
	FormatCurrency(ctx context.Context, amount decimal.Decimal, currency string) string
}

// LocationSvc resolves the display location of a caller.
type LocationSvc interface {
	// GetUserLocation never fails; it falls back to domain.DefaultLocation.
	GetUserLocation(ctx context.Context, clientIP string) domain.LocationData
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyConverterSvc
	LocationSvc
}
