package programacion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is the HTTP wrapper for the programaciones REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new programaciones HTTP client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	timeout := cfg.Timeout
	if timeout == "" {
		timeout = defaultTimeout
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid programaciones timeout %q: %w", timeout, err)
	}

	limit := rate.Inf
	burst := cfg.Burst
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
		if burst <= 0 {
			burst = 1
		}
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: d},
		limiter:     rate.NewLimiter(limit, burst),
	}, nil
}

// FetchByFichaAndCoordination fetches every schedule wrapper for a ficha and coordinación
// via GET /programaciones/ficha/{ficha}/coordinacion/{coordinacion}.
func (c *Client) FetchByFichaAndCoordination(ctx context.Context, ficha, coordinacion string) ([]Wrapper, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("programaciones rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf(pathByFichaAndCoordination, c.baseURL,
		url.PathEscape(ficha), url.PathEscape(coordinacion))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build programaciones request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call programaciones API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read programaciones response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	return Decode(raw)
}
