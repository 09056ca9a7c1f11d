package dto

import (
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyRateResponse describes one row of the coin conversion table.
type CurrencyRateResponse struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate" swaggertype:"string" example:"5"`
}

// ListCurrencyRatesResponse wraps the conversion table with its base currency.
type ListCurrencyRatesResponse struct {
	BaseCurrency string                 `json:"baseCurrency"`
	Rates        []CurrencyRateResponse `json:"rates"`
}

// ConvertCurrencyQuery holds the query parameters of a cross-rate conversion.
type ConvertCurrencyQuery struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
}

// CoinsToFiatQuery holds the query parameters of a coin to fiat conversion.
type CoinsToFiatQuery struct {
	Coins    string `form:"coins" binding:"required"`
	Currency string `form:"currency" binding:"required"`
}

// FiatToCoinsQuery holds the query parameters of a fiat to coin conversion.
type FiatToCoinsQuery struct {
	Amount   string `form:"amount" binding:"required"`
	Currency string `form:"currency" binding:"required"`
}

// ConvertCurrencyResponse is the result of a cross-rate conversion.
type ConvertCurrencyResponse struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Result    decimal.Decimal `json:"result" swaggertype:"string"`
	Formatted string          `json:"formatted"`
}

// CoinsToFiatResponse is the fiat value of a coin amount.
type CoinsToFiatResponse struct {
	Coins     decimal.Decimal `json:"coins" swaggertype:"string"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	Formatted string          `json:"formatted"`
}

// FiatToCoinsResponse is the coin value of a fiat amount.
type FiatToCoinsResponse struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"string"`
	Currency string          `json:"currency"`
	Coins    decimal.Decimal `json:"coins" swaggertype:"string"`
}

// LocationResponse is the caller's country and display currency.
type LocationResponse struct {
	Country        string `json:"country"`
	CountryCode    string `json:"countryCode"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to its response DTO
func ToCurrencyRateResponse(r domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		Code:   r.Code,
		Name:   r.Name,
		Symbol: r.Symbol,
		Rate:   r.Rate,
	}
}

// ToListCurrencyRatesResponse converts the conversion table to its response DTO
func ToListCurrencyRatesResponse(base string, rates []domain.CurrencyRate) ListCurrencyRatesResponse {
	res := ListCurrencyRatesResponse{
		BaseCurrency: base,
		Rates:        make([]CurrencyRateResponse, len(rates)),
	}
	for i, r := range rates {
		res.Rates[i] = ToCurrencyRateResponse(r)
	}
	return res
}

// ToLocationResponse converts domain.LocationData to its response DTO
func ToLocationResponse(loc domain.LocationData) LocationResponse {
	return LocationResponse{
		Country:        loc.Country,
		CountryCode:    loc.CountryCode,
		Currency:       loc.Currency,
		CurrencySymbol: loc.CurrencySymbol,
	}
}
