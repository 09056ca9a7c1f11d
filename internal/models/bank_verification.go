package models

import "time"

// BankVerification is a cached successful account resolution.
type BankVerification struct {
	CacheKey      string    `db:"cache_key" json:"-"`
	AccountName   string    `db:"account_name" json:"accountName"`
	AccountNumber string    `db:"account_number" json:"accountNumber"`
	VerifiedAt    time.Time `db:"verified_at" json:"verifiedAt"`
	ExpiresAt     time.Time `db:"expires_at" json:"expiresAt"`
}

// Expired reports whether the entry is no longer usable at now.
func (v BankVerification) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
