package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	portssvc "github.com/SscSPs/coin_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/coin_wallet_app/internal/dto"
	"github.com/SscSPs/coin_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests related to banks and account verification.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// registerVerificationRoutes registers the bank verification proxy.
func registerVerificationRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)
	rg.POST("/verify-bank-account", h.verifyBankAccount)
}

// registerBankRoutes registers the bank directory routes.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.GET("", h.listBanks)
		banks.GET("/lookup", h.lookupBank)
	}
}

// verifyBankAccount godoc
// @Summary Verify a bank account
// @Description Resolves the account holder name with the payment provider. Every response uses the verification result shape.
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   request body dto.VerifyBankAccountRequest true "Account to verify"
// @Success 200 {object} dto.VerifyBankAccountResponse
// @Failure 400 {object} dto.VerifyBankAccountResponse "Missing field or account rejected"
// @Failure 429 {object} dto.VerifyBankAccountResponse "Too many requests"
// @Failure 500 {object} dto.VerifyBankAccountResponse "Verification not configured"
// @Failure 502 {object} dto.VerifyBankAccountResponse "Provider unreachable"
// @Router /functions/v1/verify-bank-account [post]
func (h *bankHandler) verifyBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VerifyBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for VerifyBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.VerifyBankAccountResponse{Verified: false, Error: "Invalid request body"})
		return
	}

	result, err := h.bankService.VerifyAccount(c.Request.Context(), req.ToVerificationRequest())
	status := verificationStatus(err)
	if err != nil {
		logger.Info("Bank verification failed", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ToVerifyBankAccountResponse(result))
}

// verificationStatus maps a verification failure to its HTTP status.
func verificationStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConfiguration):
		return http.StatusInternalServerError
	case errors.Is(err, apperrors.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// listBanks godoc
// @Summary List supported banks
// @Description Returns the bank directory sorted by name
// @Tags banks
// @Produce  json
// @Success 200 {array} dto.BankResponse
// @Router /api/v1/banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListBankResponse(h.bankService.ListBanks(c.Request.Context())))
}

// lookupBank godoc
// @Summary Look up a bank code
// @Description Resolves a bank name (case and surrounding spaces ignored) to its routing code
// @Tags banks
// @Produce  json
// @Param   name query string true "Bank name"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Missing name"
// @Failure 404 {object} map[string]string "Bank not found"
// @Router /api/v1/banks/lookup [get]
func (h *bankHandler) lookupBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.BankLookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'name' is required"})
		return
	}

	code, err := h.bankService.GetBankCode(c.Request.Context(), q.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Bank '%s' not found", strings.TrimSpace(q.Name))})
			return
		}
		logger.Error("Failed to look up bank", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up bank"})
		return
	}

	c.JSON(http.StatusOK, dto.BankResponse{Name: strings.ToLower(strings.TrimSpace(q.Name)), Code: code})
}
