// Package banks resolves human-entered Nigerian bank names to routing codes.
package banks

import (
	"sort"
	"strings"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
)

// bankCodes is keyed by lowercase, trimmed name. Aliases are separate entries;
// lookups never do partial matching.
var bankCodes = map[string]string{
	"access bank":                  "044",
	"access bank (diamond)":        "063",
	"alat by wema":                 "035A",
	"citibank nigeria":             "023",
	"ecobank nigeria":              "050",
	"fidelity bank":                "070",
	"first bank of nigeria":        "011",
	"first bank":                   "011",
	"first city monument bank":     "214",
	"fcmb":                         "214",
	"globus bank":                  "00103",
	"guaranty trust bank":          "058",
	"gtbank":                       "058",
	"heritage bank":                "030",
	"jaiz bank":                    "301",
	"keystone bank":                "082",
	"lotus bank":                   "303",
	"polaris bank":                 "076",
	"providus bank":                "101",
	"stanbic ibtc bank":            "221",
	"standard chartered bank":      "068",
	"sterling bank":                "232",
	"suntrust bank":                "100",
	"taj bank":                     "302",
	"titan trust bank":             "102",
	"union bank of nigeria":        "032",
	"union bank":                   "032",
	"united bank for africa":       "033",
	"uba":                          "033",
	"unity bank":                   "215",
	"wema bank":                    "035",
	"zenith bank":                  "057",
	"kuda bank":                    "50211",
	"kuda":                         "50211",
	"opay":                         "999992",
	"palmpay":                      "999991",
	"moniepoint microfinance bank": "50515",
	"moniepoint":                   "50515",
	"vfd microfinance bank":        "566",
	"carbon":                       "565",
	"fairmoney microfinance bank":  "51318",
	"rubies mfb":                   "125",
	"sparkle microfinance bank":    "51310",
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetBankCode returns the routing code for a bank name. The boolean is false when
// the name is unknown; callers should ask the user to pick from ListBanks.
func GetBankCode(bankName string) (string, bool) {
	code, ok := bankCodes[normalize(bankName)]
	return code, ok
}

// ListBanks returns the directory ordered by name.
func ListBanks() []domain.BankDirectoryEntry {
	entries := make([]domain.BankDirectoryEntry, 0, len(bankCodes))
	for name, code := range bankCodes {
		entries = append(entries, domain.BankDirectoryEntry{Name: name, Code: code})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
