// Package backend is the typed client for the upstream booking/marketplace
// REST API. Every call is single-attempt and bounded by a wall-clock budget;
// the backend owns retries and consistency, the gateway only relays.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bookline/gateway/internal/domain"
	"github.com/bookline/gateway/internal/infrastructure/config"
)

type Client struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	bookingTimeout time.Duration
}

// UpstreamError carries a non-2xx backend response so handlers can relay the
// exact status and details to the caller.
type UpstreamError struct {
	StatusCode int
	Details    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Details)
}

func NewClient(cfg config.BackendConfig) *Client {
	maxRedirects := cfg.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = 3
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		requestTimeout: cfg.RequestTimeout,
		bookingTimeout: cfg.BookingTimeout,
		httpClient: &http.Client{
			// 307/308 re-sends preserve method and body; past the cap the
			// last response is returned as-is rather than erroring out.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// doJSON performs one bounded request and decodes a 2xx JSON body into out.
// A nil out discards the body. Non-2xx responses become *UpstreamError;
// hitting the deadline becomes domain.ErrGatewayTimeout.
func (c *Client) doJSON(ctx context.Context, method, path, accessToken string, in, out any, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Cookie", "access_token="+url.QueryEscape(accessToken))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", method, path, domain.ErrGatewayTimeout)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{StatusCode: resp.StatusCode, Details: string(data)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("unexpected content type %q from %s", contentType, path)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}
