package conversion

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCoinsToFiat_BaseAnchor(t *testing.T) {
	got := CoinsToFiat(decimal.NewFromInt(100), "NGN")
	assert.True(t, dec("500.00").Equal(got), "100 coins should be 500 NGN, got %s", got)
}

func TestCoinsToFiat_UnknownCurrencyUsesIdentity(t *testing.T) {
	got := CoinsToFiat(dec("42.129"), "XYZ")
	assert.True(t, dec("42.13").Equal(got), "got %s", got)
}

func TestCoinsToFiat_CaseInsensitiveCode(t *testing.T) {
	assert.True(t, CoinsToFiat(decimal.NewFromInt(100), " ngn ").Equal(dec("500")))
}

func TestFiatToCoins(t *testing.T) {
	assert.True(t, dec("100").Equal(FiatToCoins(dec("500"), "NGN")))
	got := FiatToCoins(dec("0.01"), "USD")
	assert.True(t, dec("3.03").Equal(got), "got %s", got)
}

func TestConvertCurrency_CrossRate(t *testing.T) {
	// 1500 NGN -> 300 coins -> 0.99 USD
	got := ConvertCurrency(dec("1500"), "NGN", "USD")
	assert.True(t, dec("0.99").Equal(got), "got %s", got)

	same := ConvertCurrency(dec("12.345"), "GBP", "GBP")
	assert.True(t, dec("12.35").Equal(same), "got %s", same)
}

func TestRoundMoney_HalfUp(t *testing.T) {
	cases := map[string]string{
		"1.005":  "1.01",
		"1.004":  "1",
		"2.5":    "2.5",
		"-1.005": "-1",
		"-1.006": "-1.01",
		"0":      "0",
	}
	for in, want := range cases {
		got := RoundMoney(dec(in))
		assert.True(t, dec(want).Equal(got), "RoundMoney(%s) = %s, want %s", in, got, want)
	}
}

func TestRoundTrip_WithinRoundingTolerance(t *testing.T) {
	samples := []string{"0", "1", "7", "99.99", "100", "2500", "123456.78"}
	for _, r := range ListRates() {
		// One cent of fiat error turns into 0.005/rate coins after dividing back.
		tolerance := dec("0.005").Div(r.Rate).Add(dec("0.01"))
		for _, s := range samples {
			n := dec(s)
			back := FiatToCoins(CoinsToFiat(n, r.Code), r.Code)
			assert.True(t, back.Sub(n).Abs().LessThanOrEqual(tolerance),
				"%s: %s -> %s exceeds tolerance %s", r.Code, n, back, tolerance)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.5", FormatCurrency(dec("1234.5"), "USD"))
	assert.Equal(t, "₦1,000,000", FormatCurrency(dec("1000000"), "NGN"))
	assert.Equal(t, "£0.99", FormatCurrency(dec("0.994"), "GBP"))
}

func TestFormatCurrency_KeepsEveryDigit(t *testing.T) {
	assert.Equal(t, "$12,345,678,901,234,567.89", FormatCurrency(dec("12345678901234567.89"), "USD"))
	assert.Equal(t, "$-1,234,567.5", FormatCurrency(dec("-1234567.5"), "USD"))
	assert.Equal(t, "$999", FormatCurrency(dec("999"), "USD"))

	huge := FormatCurrency(dec("1e400"), "USD")
	assert.NotContains(t, huge, "∞")
	assert.True(t, strings.HasPrefix(huge, "$1,000,000,"))
	assert.Equal(t, 400, strings.Count(huge, "0"))
}

func TestFormatCurrency_UnknownReturnsBareNumber(t *testing.T) {
	assert.Equal(t, "1234.5", FormatCurrency(dec("1234.5"), "ZZZ"))
}

func TestListRates_SortedAndPositive(t *testing.T) {
	rates := ListRates()
	require.NotEmpty(t, rates)
	seen := map[string]bool{}
	for i, r := range rates {
		assert.True(t, r.Rate.IsPositive(), "%s rate must be positive", r.Code)
		assert.False(t, seen[r.Code], "duplicate code %s", r.Code)
		seen[r.Code] = true
		if i > 0 {
			assert.Less(t, rates[i-1].Code, r.Code)
		}
	}
}

func TestCurrencyForCountry(t *testing.T) {
	gh, ok := CurrencyForCountry("gh")
	require.True(t, ok)
	assert.Equal(t, "GHS", gh.Code)

	fr, ok := CurrencyForCountry("FR")
	require.True(t, ok)
	assert.Equal(t, "EUR", fr.Code)

	_, ok = CurrencyForCountry("AQ")
	assert.False(t, ok)
}

func TestCountryTableOnlyReferencesSupportedCurrencies(t *testing.T) {
	for country, code := range countryCurrency {
		assert.True(t, IsSupported(code), "%s maps to unsupported %s", country, code)
	}
}
