// Package supabase calls database-side procedures through the PostgREST RPC endpoint.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/SscSPs/coin_wallet_app/internal/core/ports/gateways"
	"github.com/SscSPs/coin_wallet_app/internal/platform/metrics"
)

// Procedure names as defined in the database.
const (
	procDistributeReward      = "distribute_reward"
	procIncrementViewCount    = "increment_view_count"
	procIncrementContactCount = "increment_contact_count"
)

// Client is a PostgREST RPC client authenticated with the service role key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New creates a new RPC client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: supabase URL is required", apperrors.ErrConfiguration)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: supabase service key is required", apperrors.ErrConfiguration)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

var _ gateways.RemoteProcedures = (*Client)(nil)

func (c *Client) DistributeReward(ctx context.Context, userID, contentID string, contentType domain.ContentType, action domain.InteractionAction) error {
	return c.RPC(ctx, procDistributeReward, map[string]any{
		"p_user_id":      userID,
		"p_content_id":   contentID,
		"p_content_type": string(contentType),
		"p_action":       string(action),
	})
}

func (c *Client) IncrementViewCount(ctx context.Context, contentID string, contentType domain.ContentType) error {
	return c.RPC(ctx, procIncrementViewCount, map[string]any{
		"p_content_id":   contentID,
		"p_content_type": string(contentType),
	})
}

func (c *Client) IncrementContactCount(ctx context.Context, contentID string, contentType domain.ContentType) error {
	return c.RPC(ctx, procIncrementContactCount, map[string]any{
		"p_content_id":   contentID,
		"p_content_type": string(contentType),
	})
}

// RPC calls a database function by name and discards its result.
func (c *Client) RPC(ctx context.Context, fn string, params any) error {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params for %s: %w", fn, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/v1/rpc/"+fn, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: create request for %s: %w", apperrors.ErrTransport, fn, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	err = c.do(req, fn)
	metrics.RecordUpstreamCall("supabase_rpc", time.Since(start), err == nil)
	return err
}

func (c *Client) do(req *http.Request, fn string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: rpc %s: %w", apperrors.ErrTransport, fn, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read rpc %s response: %w", apperrors.ErrTransport, fn, err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		msg := fmt.Sprintf("rpc %s failed with status %d", fn, resp.StatusCode)
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Message != "" {
				msg = errResp.Message
			} else if errResp.Error != "" {
				msg = errResp.Error
			}
		}
		return &apperrors.ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}
	return nil
}
