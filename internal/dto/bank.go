package dto

import "github.com/SscSPs/coin_wallet_app/internal/core/domain"

// VerifyBankAccountRequest is the body accepted by the verification proxy.
// Presence of both fields is checked by the bank service so every failure
// shares the verification result shape.
type VerifyBankAccountRequest struct {
	AccountNumber string `json:"account_number" example:"0123456789"`
	BankCode      string `json:"bank_code" example:"058"`
}

// VerifyBankAccountResponse mirrors domain.VerificationResult on the wire.
type VerifyBankAccountResponse struct {
	Verified      bool   `json:"verified"`
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Error         string `json:"error,omitempty"`
}

// BankResponse is one entry of the bank directory.
type BankResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// BankLookupQuery holds the name to resolve.
type BankLookupQuery struct {
	Name string `form:"name" binding:"required"`
}

// ToVerificationRequest converts the request DTO to the domain request
func (r VerifyBankAccountRequest) ToVerificationRequest() domain.VerificationRequest {
	return domain.VerificationRequest{
		AccountNumber: r.AccountNumber,
		BankCode:      r.BankCode,
	}
}

// ToVerifyBankAccountResponse converts a domain.VerificationResult to its response DTO
func ToVerifyBankAccountResponse(r domain.VerificationResult) VerifyBankAccountResponse {
	return VerifyBankAccountResponse{
		Verified:      r.Verified,
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		Error:         r.Error,
	}
}

// ToListBankResponse converts directory entries to response DTOs
func ToListBankResponse(entries []domain.BankDirectoryEntry) []BankResponse {
	res := make([]BankResponse, len(entries))
	for i, e := range entries {
		res[i] = BankResponse{Name: e.Name, Code: e.Code}
	}
	return res
}
