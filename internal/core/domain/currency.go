package domain

import "github.com/shopspring/decimal"

// CurrencyRate is one row of the coin conversion table.
// Rate is expressed as fiat units per one coin.
type CurrencyRate struct {
	Code   string          `json:"code"`   // e.g., "NGN"
	Name   string          `json:"name"`   // e.g., "Nigerian Naira"
	Symbol string          `json:"symbol"` // e.g., "₦"
	Rate   decimal.Decimal `json:"rate"`
}

// LocationData describes where a caller appears to be and which currency to show them.
type LocationData struct {
	Country        string `json:"country"`
	CountryCode    string `json:"countryCode"` // ISO 3166-1 alpha-2
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
}

// DefaultLocation is used whenever the caller's location cannot be determined.
func DefaultLocation() LocationData {
	return LocationData{
		Country:        "United States",
		CountryCode:    "US",
		Currency:       "USD",
		CurrencySymbol: "$",
	}
}
