// Package swissunihockey talks to the swissunihockey v2 API. The API is
// undocumented and its payload shapes drift across seasons and endpoints, so
// everything here degrades to empty values instead of failing: retrieval
// methods never return errors, and diagnostics land in a bounded error log.
package swissunihockey

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"floorball-games-service/internal/cache"
	"floorball-games-service/internal/errlog"
	"floorball-games-service/internal/logging"
	"floorball-games-service/internal/metrics"
	"floorball-games-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL      string
	HTTPClient   *http.Client
	Timeout      time.Duration
	MaxAttempts  int
	RetryBackoff time.Duration
	GamesLimit   int
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	Errors       *errlog.Log
	Cache        *cache.Cache
}

// Client fetches and normalizes swissunihockey data. It satisfies
// providers.DataProvider.
type Client struct {
	baseURL      string
	httpClient   httpDoer
	maxAttempts  int
	retryBackoff time.Duration
	gamesLimit   int
	logger       *slog.Logger
	metrics      *metrics.Recorder
	errors       *errlog.Log
	cache        *cache.Cache
	now          func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	gamesLimit := cfg.GamesLimit
	if gamesLimit <= 0 {
		gamesLimit = defaultGamesLimit
	}
	return &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL),
		httpClient:   resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		maxAttempts:  maxAttempts,
		retryBackoff: cfg.RetryBackoff,
		gamesLimit:   gamesLimit,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		errors:       cfg.Errors,
		cache:        cfg.Cache,
		now:          time.Now,
	}
}

// Diagnostics returns the recent fetch failures.
func (c *Client) Diagnostics() []errlog.Entry {
	return c.errors.Entries()
}

// fetch issues a GET for a JSON endpoint and returns the decoded payload.
// Every failure mode (network, status, malformed body) degrades to an empty
// map plus one diagnostic entry; callers never see an error.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) map[string]any {
	key := cache.Key(endpoint, params)
	if payload, ok := c.cache.Get(key); ok {
		return payload
	}

	body, err := c.do(ctx, endpoint, params, acceptJSON)
	if err != nil {
		c.diagnose(endpoint, err)
		return map[string]any{}
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		c.diagnose(endpoint, &providers.MalformedResponseError{Endpoint: endpoint, Err: err})
		return map[string]any{}
	}

	c.cache.Set(key, payload)
	return payload
}

// fetchRaw issues a GET for a non-JSON endpoint (the calendar export) and
// returns the raw body, or nil after a logged failure.
func (c *Client) fetchRaw(ctx context.Context, endpoint string, params url.Values, accept string) []byte {
	body, err := c.do(ctx, endpoint, params, accept)
	if err != nil {
		c.diagnose(endpoint, err)
		return nil
	}
	return body
}

// do runs the request with up to maxAttempts tries and linearly increasing
// backoff. Only network failures and the transient status subset are
// retried; other statuses abort immediately.
func (c *Client) do(ctx context.Context, endpoint string, params url.Values, accept string) ([]byte, error) {
	target := c.resolveURL(endpoint, params)

	var body []byte
	op := func() error {
		start := time.Now()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", accept)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			netErr := &providers.NetworkError{Endpoint: endpoint, Err: err}
			c.metrics.RecordFetchAttempt(endpoint, time.Since(start), netErr)
			return netErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			upErr := &providers.UpstreamError{
				Endpoint:   endpoint,
				StatusCode: resp.StatusCode,
				Body:       strings.TrimSpace(string(snippet)),
			}
			c.metrics.RecordFetchAttempt(endpoint, time.Since(start), upErr)
			if !providers.IsTransient(upErr) {
				return backoff.Permanent(upErr)
			}
			return upErr
		}

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			netErr := &providers.NetworkError{Endpoint: endpoint, Err: err}
			c.metrics.RecordFetchAttempt(endpoint, time.Since(start), netErr)
			return netErr
		}

		c.metrics.RecordFetchAttempt(endpoint, time.Since(start), nil)
		body = b
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(newLinearBackOff(c.retryBackoff), uint64(c.maxAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) resolveURL(endpoint string, params url.Values) string {
	target := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		target = c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	}
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	return target
}

func (c *Client) diagnose(endpoint string, err error) {
	c.errors.Append(fmt.Sprintf("%s: %v", endpoint, err))
	logging.Warn(c.logger, "upstream fetch failed",
		logging.FieldEndpoint, endpoint,
		"error", err,
	)
}
