package banks

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBankCode_NormalizesInput(t *testing.T) {
	code, ok := GetBankCode("  GTBank ")
	assert.True(t, ok)
	assert.Equal(t, "058", code)
}

func TestGetBankCode_AliasesShareCode(t *testing.T) {
	a, _ := GetBankCode("gtbank")
	b, _ := GetBankCode("Guaranty Trust Bank")
	assert.Equal(t, a, b)

	uba, _ := GetBankCode("UBA")
	full, _ := GetBankCode("United Bank for Africa")
	assert.Equal(t, uba, full)
}

func TestGetBankCode_Unknown(t *testing.T) {
	code, ok := GetBankCode("Unknown Bank")
	assert.False(t, ok)
	assert.Empty(t, code)
}

func TestGetBankCode_NoPartialMatching(t *testing.T) {
	_, ok := GetBankCode("zenith")
	assert.False(t, ok)
	_, ok = GetBankCode("")
	assert.False(t, ok)
}

func TestListBanks(t *testing.T) {
	entries := ListBanks()
	assert.Len(t, entries, len(bankCodes))
	numeric := regexp.MustCompile(`^[0-9]+$`)
	for i, e := range entries {
		assert.Equal(t, normalize(e.Name), e.Name, "directory keys must already be normalized")
		if e.Name == "alat by wema" {
			// Paystack routes ALAT with a suffixed code.
			assert.Equal(t, "035A", e.Code)
		} else {
			assert.Regexp(t, numeric, e.Code)
		}
		if i > 0 {
			assert.Less(t, entries[i-1].Name, e.Name)
		}
	}
}
