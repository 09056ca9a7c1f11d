// Package conversion converts between the platform coin and real-world currencies.
//
// Every exported conversion rounds its own result to two decimal places (half-up),
// so chained conversions round once per step.
package conversion

import (
	"sort"
	"strings"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GetRate returns the table entry for a currency code.
func GetRate(code string) (domain.CurrencyRate, bool) {
	r, ok := rateTable[normalize(code)]
	return r, ok
}

// ListRates returns every supported currency ordered by code.
func ListRates() []domain.CurrencyRate {
	rates := make([]domain.CurrencyRate, 0, len(rateTable))
	for _, r := range rateTable {
		rates = append(rates, r)
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Code < rates[j].Code })
	return rates
}

// IsSupported reports whether code has an entry in the rate table.
func IsSupported(code string) bool {
	_, ok := GetRate(code)
	return ok
}

// rateOrIdentity falls back to 1 for unknown currencies so callers never fail.
func rateOrIdentity(code string) decimal.Decimal {
	if r, ok := GetRate(code); ok {
		return r.Rate
	}
	return decimal.NewFromInt(1)
}

// RoundMoney rounds to two decimal places, ties toward positive infinity.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}

// CoinsToFiat converts a coin amount into the given currency.
func CoinsToFiat(coins decimal.Decimal, currency string) decimal.Decimal {
	return RoundMoney(coins.Mul(rateOrIdentity(currency)))
}

// FiatToCoins converts a fiat amount in the given currency into coins.
func FiatToCoins(amount decimal.Decimal, currency string) decimal.Decimal {
	return RoundMoney(amount.Div(rateOrIdentity(currency)))
}

// ConvertCurrency converts between two fiat currencies using their coin rates as a cross rate.
func ConvertCurrency(amount decimal.Decimal, fromCurrency, toCurrency string) decimal.Decimal {
	return RoundMoney(amount.Mul(rateOrIdentity(toCurrency)).Div(rateOrIdentity(fromCurrency)))
}

// FormatCurrency renders amount with the currency symbol and thousands grouping,
// e.g. 1234.5 USD -> "$1,234.5". Unknown currencies get the bare number.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	r, ok := GetRate(currency)
	if !ok {
		return amount.String()
	}
	return r.Symbol + groupThousands(RoundMoney(amount).String())
}

// groupThousands inserts commas into the integer part of a plain decimal string.
func groupThousands(s string) string {
	var b strings.Builder
	if strings.HasPrefix(s, "-") {
		b.WriteByte('-')
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// CurrencyForCountry returns the supported currency used in a country.
func CurrencyForCountry(countryCode string) (domain.CurrencyRate, bool) {
	code, ok := countryCurrency[normalize(countryCode)]
	if !ok {
		return domain.CurrencyRate{}, false
	}
	return GetRate(code)
}
