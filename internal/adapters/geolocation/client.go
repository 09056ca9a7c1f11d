// Package geolocation looks up the country of an IP address with an ipapi.co style API.
package geolocation

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/ports/gateways"
	"github.com/SscSPs/coin_wallet_app/internal/platform/metrics"
	"github.com/tidwall/gjson"
)

const DefaultBaseURL = "https://ipapi.co"

// Client queries the geolocation service. It is unauthenticated.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a geolocation client.
func New(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: timeout}}
}

var _ gateways.GeoLocator = (*Client)(nil)

// lookupPath returns the lookup path for ip. Loopback, private and unparsable
// addresses fall back to the service's "caller" endpoint.
func lookupPath(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return "/json/"
	}
	return "/" + parsed.String() + "/json/"
}

// LookupCountry returns the ISO country code and country name for ip.
func (c *Client) LookupCountry(ctx context.Context, ip string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+lookupPath(ip), nil)
	if err != nil {
		return "", "", fmt.Errorf("%w: create request: %w", apperrors.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	code, name, err := c.do(req)
	metrics.RecordUpstreamCall("geolocation", time.Since(start), err == nil)
	return code, name, err
}

func (c *Client) do(req *http.Request) (string, string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("%w: geolocation request: %w", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", "", fmt.Errorf("%w: read geolocation response: %w", apperrors.ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("%w: geolocation status %d", apperrors.ErrTransport, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return "", "", fmt.Errorf("%w: geolocation response is not JSON", apperrors.ErrTransport)
	}

	result := gjson.ParseBytes(body)
	if result.Get("error").Bool() {
		return "", "", fmt.Errorf("%w: geolocation error: %s", apperrors.ErrUpstream, result.Get("reason").String())
	}

	code := strings.ToUpper(result.Get("country_code").String())
	if code == "" {
		return "", "", fmt.Errorf("%w: geolocation response missing country_code", apperrors.ErrTransport)
	}
	return code, result.Get("country_name").String(), nil
}
