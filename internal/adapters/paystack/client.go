// Package paystack resolves Nigerian bank accounts with the Paystack API.
package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/SscSPs/coin_wallet_app/internal/core/ports/gateways"
	"github.com/SscSPs/coin_wallet_app/internal/platform/metrics"
)

const (
	DefaultBaseURL = "https://api.paystack.co"

	defaultFailureMessage = "Failed to verify account"
	maxBodyBytes          = 1 << 20
)

// Client is a minimal Paystack REST client.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	SecretKey  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New creates a Paystack client. A missing secret is not an error here; every
// resolve call reports it instead so operators can see it per request.
func New(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		secretKey:  cfg.SecretKey,
		httpClient: httpClient,
	}
}

var _ gateways.AccountResolver = (*Client)(nil)

type resolveResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    *struct {
		AccountNumber string `json:"account_number"`
		AccountName   string `json:"account_name"`
		BankID        int    `json:"bank_id"`
	} `json:"data"`
}

// ResolveAccount calls GET /bank/resolve for the account number and bank code.
func (c *Client) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.ResolvedAccount, error) {
	if c.secretKey == "" {
		return nil, fmt.Errorf("%w: paystack secret key not configured", apperrors.ErrConfiguration)
	}

	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("bank_code", bankCode)
	reqURL := c.baseURL + "/bank/resolve?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", apperrors.ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	account, err := c.do(req)
	metrics.RecordUpstreamCall("paystack", time.Since(start), err == nil)
	return account, err
}

func (c *Client) do(req *http.Request) (*domain.ResolvedAccount, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: paystack request: %w", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read paystack response: %w", apperrors.ErrTransport, err)
	}

	var payload resolveResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode paystack response (status %d): %w", apperrors.ErrTransport, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !payload.Status {
		msg := payload.Message
		if msg == "" {
			msg = defaultFailureMessage
		}
		return nil, &apperrors.ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	if payload.Data == nil || payload.Data.AccountName == "" {
		return nil, fmt.Errorf("%w: paystack response missing account data", apperrors.ErrTransport)
	}

	return &domain.ResolvedAccount{
		AccountName:   payload.Data.AccountName,
		AccountNumber: payload.Data.AccountNumber,
	}, nil
}
