package vtex

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/vtexops/vtex-exporter-go/internal/config"
	"github.com/vtexops/vtex-exporter-go/internal/export"
)

const (
	requestTimeout = 30 * time.Second

	// Self-imposed pause between successive page requests. Fixed, not
	// adaptive.
	pageDelay = 300 * time.Millisecond

	detailAttempts = 3
	detailBackoff  = 2 * time.Second
)

// Client talks to one VTEX account's REST APIs. Authentication is two
// static header-carried tokens; every call is a plain GET returning
// JSON. Callers are single-threaded, requests are never issued in
// parallel.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
	retry   export.Policy
	log     *zap.Logger

	pause func()
}

// NewClient builds a Client for the account described by cfg.
func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				MaxConnsPerHost:     75,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
				DisableKeepAlives:   false,
			},
		},
		baseURL: cfg.BaseURL(),
		headers: map[string]string{
			"Content-Type":        "application/json",
			"Accept":              "application/json",
			"X-VTEX-API-AppKey":   cfg.AppKey,
			"X-VTEX-API-AppToken": cfg.AppToken,
		},
		retry: export.NewPolicy(detailAttempts, detailBackoff),
		log:   log,
		pause: func() { time.Sleep(pageDelay) },
	}
}

// getJSON issues an authenticated GET against the account host and
// returns the raw response body. Any non-200 status is an error.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, params.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status code %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response for %s: %w", path, err)
	}
	return body, nil
}
