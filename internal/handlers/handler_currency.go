package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/coin_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/coin_wallet_app/internal/dto"
	"github.com/SscSPs/coin_wallet_app/internal/middleware"
	"github.com/SscSPs/coin_wallet_app/internal/utils/conversion"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// maxAmountLength bounds amount query values; scientific notation is rejected
// so a short input cannot expand into an arbitrarily large number.
const maxAmountLength = 32

// currencyHandler handles HTTP requests related to coin conversion and location.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listRates)
		currencies.GET("/convert", h.convertCurrency)
		currencies.GET("/coins-to-fiat", h.coinsToFiat)
		currencies.GET("/fiat-to-coins", h.fiatToCoins)
	}
	rg.GET("/location", h.getLocation)
}

// listRates godoc
// @Summary List coin conversion rates
// @Description Returns fiat units per coin for every supported currency
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.ListCurrencyRatesResponse
// @Router /api/v1/currencies [get]
func (h *currencyHandler) listRates(c *gin.Context) {
	rates := h.currencyService.ListRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyRatesResponse(conversion.BaseCurrency, rates))
}

// convertCurrency godoc
// @Summary Convert between fiat currencies
// @Description Converts through the coin cross-rate, rounded to 2 decimals. Unknown codes use a rate of 1.
// @Tags currencies
// @Produce  json
// @Param   amount query string true "Amount"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConvertCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/v1/currencies/convert [get]
func (h *currencyHandler) convertCurrency(c *gin.Context) {
	var q dto.ConvertCurrencyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badQuery(c, err)
		return
	}
	amount, ok := parseAmount(c, q.Amount, "amount")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	from, to := normalizeCode(q.From), normalizeCode(q.To)
	result := h.currencyService.ConvertCurrency(ctx, amount, from, to)
	c.JSON(http.StatusOK, dto.ConvertCurrencyResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Result:    result,
		Formatted: h.currencyService.FormatCurrency(ctx, result, to),
	})
}

// coinsToFiat godoc
// @Summary Convert coins to fiat
// @Description Returns the fiat value of a coin amount, rounded to 2 decimals
// @Tags currencies
// @Produce  json
// @Param   coins query string true "Coin amount"
// @Param   currency query string true "Currency code"
// @Success 200 {object} dto.CoinsToFiatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/v1/currencies/coins-to-fiat [get]
func (h *currencyHandler) coinsToFiat(c *gin.Context) {
	var q dto.CoinsToFiatQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badQuery(c, err)
		return
	}
	coins, ok := parseAmount(c, q.Coins, "coins")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	currency := normalizeCode(q.Currency)
	amount := h.currencyService.CoinsToFiat(ctx, coins, currency)
	c.JSON(http.StatusOK, dto.CoinsToFiatResponse{
		Coins:     coins,
		Currency:  currency,
		Amount:    amount,
		Formatted: h.currencyService.FormatCurrency(ctx, amount, currency),
	})
}

// fiatToCoins godoc
// @Summary Convert fiat to coins
// @Description Returns the coin value of a fiat amount, rounded to 2 decimals
// @Tags currencies
// @Produce  json
// @Param   amount query string true "Fiat amount"
// @Param   currency query string true "Currency code"
// @Success 200 {object} dto.FiatToCoinsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/v1/currencies/fiat-to-coins [get]
func (h *currencyHandler) fiatToCoins(c *gin.Context) {
	var q dto.FiatToCoinsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badQuery(c, err)
		return
	}
	amount, ok := parseAmount(c, q.Amount, "amount")
	if !ok {
		return
	}

	currency := normalizeCode(q.Currency)
	c.JSON(http.StatusOK, dto.FiatToCoinsResponse{
		Amount:   amount,
		Currency: currency,
		Coins:    h.currencyService.FiatToCoins(c.Request.Context(), amount, currency),
	})
}

// getLocation godoc
// @Summary Get the caller's location
// @Description Maps the client IP to a country and display currency. Falls back to the United States.
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.LocationResponse
// @Router /api/v1/location [get]
func (h *currencyHandler) getLocation(c *gin.Context) {
	loc := h.currencyService.GetUserLocation(c.Request.Context(), c.ClientIP())
	c.JSON(http.StatusOK, dto.ToLocationResponse(loc))
}

func badQuery(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
}

func parseAmount(c *gin.Context, raw, field string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxAmountLength || strings.ContainsAny(raw, "eE") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter '" + field + "' must be a plain number of at most " + strconv.Itoa(maxAmountLength) + " characters"})
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter '" + field + "' must be a number"})
		return decimal.Zero, false
	}
	return d, true
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
