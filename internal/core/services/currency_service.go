package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/SscSPs/coin_wallet_app/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/coin_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/coin_wallet_app/internal/utils/conversion"
	"github.com/shopspring/decimal"
)

// CurrencyService exposes the coin conversion table and caller location lookup.
type CurrencyService struct {
	BaseService
	geo gateways.GeoLocator
}

// NewCurrencyService creates a CurrencyService. A nil geo locator makes every
// location lookup return the default location.
func NewCurrencyService(geo gateways.GeoLocator) *CurrencyService {
	return &CurrencyService{geo: geo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) ListRates(ctx context.Context) []domain.CurrencyRate {
	return conversion.ListRates()
}

func (s *CurrencyService) CoinsToFiat(ctx context.Context, coins decimal.Decimal, currency string) decimal.Decimal {
	s.logUnknown(ctx, currency)
	return conversion.CoinsToFiat(coins, currency)
}

func (s *CurrencyService) FiatToCoins(ctx context.Context, amount decimal.Decimal, currency string) decimal.Decimal {
	s.logUnknown(ctx, currency)
	return conversion.FiatToCoins(amount, currency)
}

func (s *CurrencyService) ConvertCurrency(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) decimal.Decimal {
	s.logUnknown(ctx, fromCurrency)
	s.logUnknown(ctx, toCurrency)
	return conversion.ConvertCurrency(amount, fromCurrency, toCurrency)
}

func (s *CurrencyService) FormatCurrency(ctx context.Context, amount decimal.Decimal, currency string) string {
	return conversion.FormatCurrency(amount, currency)
}

// GetUserLocation maps the caller's IP to a country and display currency.
// Any lookup failure or unsupported country yields domain.DefaultLocation.
func (s *CurrencyService) GetUserLocation(ctx context.Context, clientIP string) domain.LocationData {
	if s.geo == nil {
		return domain.DefaultLocation()
	}

	countryCode, countryName, err := s.geo.LookupCountry(ctx, clientIP)
	if err != nil {
		s.LogWarn(ctx, "Location lookup failed, using default location", slog.String("error", err.Error()))
		return domain.DefaultLocation()
	}

	rate, ok := conversion.CurrencyForCountry(countryCode)
	if !ok {
		s.LogDebug(ctx, "No supported currency for country, using default location", slog.String("country_code", countryCode))
		return domain.DefaultLocation()
	}

	if countryName == "" {
		countryName = countryCode
	}
	return domain.LocationData{
		Country:        countryName,
		CountryCode:    countryCode,
		Currency:       rate.Code,
		CurrencySymbol: rate.Symbol,
	}
}

func (s *CurrencyService) logUnknown(ctx context.Context, currency string) {
	if !conversion.IsSupported(currency) {
		s.LogDebug(ctx, "Unknown currency, converting at identity rate", slog.String("currency", currency))
	}
}
