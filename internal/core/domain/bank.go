package domain

// BankDirectoryEntry maps a normalized bank name to its routing code.
type BankDirectoryEntry struct {
	Name string `json:"name"` // lowercase, trimmed
	Code string `json:"code"`
}

// VerificationRequest identifies the bank account to resolve.
type VerificationRequest struct {
	AccountNumber string `json:"account_number" validate:"required"`
	BankCode      string `json:"bank_code" validate:"required"`
}

// VerificationResult is the normalized outcome of a bank account verification.
// Exactly one of AccountName or Error is meaningful, depending on Verified.
type VerificationResult struct {
	Verified      bool   `json:"verified"`
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ResolvedAccount is what the verification provider reports for a valid account.
type ResolvedAccount struct {
	AccountName   string
	AccountNumber string
}
