package conversion

import (
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BaseCurrency anchors the table: 100 coins are worth 500 NGN.
const BaseCurrency = "NGN"

func rate(code, name, symbol, value string) domain.CurrencyRate {
	return domain.CurrencyRate{Code: code, Name: name, Symbol: symbol, Rate: decimal.RequireFromString(value)}
}

// rateTable is built once at init and never mutated afterwards.
var rateTable = map[string]domain.CurrencyRate{
	"NGN": rate("NGN", "Nigerian Naira", "₦", "5"),
	"USD": rate("USD", "US Dollar", "$", "0.0033"),
	"EUR": rate("EUR", "Euro", "€", "0.0031"),
	"GBP": rate("GBP", "British Pound", "£", "0.0026"),
	"CAD": rate("CAD", "Canadian Dollar", "C$", "0.0045"),
	"AUD": rate("AUD", "Australian Dollar", "A$", "0.005"),
	"GHS": rate("GHS", "Ghanaian Cedi", "₵", "0.05"),
	"KES": rate("KES", "Kenyan Shilling", "KSh", "0.43"),
	"ZAR": rate("ZAR", "South African Rand", "R", "0.061"),
	"EGP": rate("EGP", "Egyptian Pound", "E£", "0.16"),
	"XOF": rate("XOF", "West African CFA Franc", "CFA", "2"),
	"XAF": rate("XAF", "Central African CFA Franc", "FCFA", "2"),
	"UGX": rate("UGX", "Ugandan Shilling", "USh", "12.5"),
	"TZS": rate("TZS", "Tanzanian Shilling", "TSh", "8.6"),
	"RWF": rate("RWF", "Rwandan Franc", "FRw", "4.35"),
	"MAD": rate("MAD", "Moroccan Dirham", "DH", "0.033"),
	"INR": rate("INR", "Indian Rupee", "₹", "0.28"),
	"CNY": rate("CNY", "Chinese Yuan", "¥", "0.024"),
	"JPY": rate("JPY", "Japanese Yen", "¥", "0.5"),
	"AED": rate("AED", "UAE Dirham", "د.إ", "0.012"),
	"BRL": rate("BRL", "Brazilian Real", "R$", "0.017"),
}

// countryCurrency maps ISO 3166-1 alpha-2 codes to a supported currency.
var countryCurrency = map[string]string{
	"NG": "NGN",
	"US": "USD",
	"GB": "GBP",
	"CA": "CAD",
	"AU": "AUD",
	"GH": "GHS",
	"KE": "KES",
	"ZA": "ZAR",
	"EG": "EGP",
	"UG": "UGX",
	"TZ": "TZS",
	"RW": "RWF",
	"MA": "MAD",
	"IN": "INR",
	"CN": "CNY",
	"JP": "JPY",
	"AE": "AED",
	"BR": "BRL",
	// Eurozone
	"DE": "EUR", "FR": "EUR", "IT": "EUR", "ES": "EUR", "NL": "EUR", "IE": "EUR",
	"PT": "EUR", "BE": "EUR", "AT": "EUR", "FI": "EUR", "GR": "EUR",
	// UEMOA
	"SN": "XOF", "CI": "XOF", "BJ": "XOF", "TG": "XOF", "ML": "XOF", "BF": "XOF", "NE": "XOF",
	// CEMAC
	"CM": "XAF", "GA": "XAF", "CG": "XAF", "TD": "XAF", "CF": "XAF", "GQ": "XAF",
}
