package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Defaults applied by NewClient when the corresponding Config field is unset.
const (
	DefaultBaseURL = "https://api.amber.com.au/v1"
	DefaultTimeout = 30 * time.Second

	// DefaultRetryAfter is used when a 429 response carries no parseable
	// RateLimit-Reset header.
	DefaultRetryAfter = 60 * time.Second
)

// maxErrorBody caps how much of a non-2xx response body is captured for
// error reporting.
const maxErrorBody = 64 * 1024

// Config configures the API client.
type Config struct {
	// BaseURL is the API root, without a trailing slash. Required.
	BaseURL string
	// APIKey is the bearer credential. Empty means unauthenticated.
	APIKey string
	// HTTPClient performs the requests. Defaults to a client with a
	// 30-second timeout.
	HTTPClient *http.Client
	// MaxRetries is the rate-limit retry budget. Zero is valid and means
	// a single attempt even when retries are enabled.
	MaxRetries int
	// DisableRetry turns off automatic rate-limit retries.
	DisableRetry bool
	// Logger receives per-attempt diagnostics at debug level. Defaults
	// to a logger that discards everything.
	Logger logrus.FieldLogger
}

// Client is the HTTP API client. All configuration is fixed at
// construction, so a Client is safe for concurrent use.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	maxRetries   int
	disableRetry bool
	log          logrus.FieldLogger

	// sleep waits out the rate-limit backoff. Overridden in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.MaxRetries < 0 {
		return nil, errors.New("max retries must not be negative")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	log := cfg.Logger
	if log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		log = silent
	}

	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		httpClient:   httpClient,
		maxRetries:   cfg.MaxRetries,
		disableRetry: cfg.DisableRetry,
		log:          log,
		sleep:        wait,
	}, nil
}

// Get performs an authenticated GET against path with the given query
// parameters and decodes the JSON response body into result.
//
// HTTP 429 responses are absorbed by a bounded retry loop: the wait is
// taken from the RateLimit-Reset header (DefaultRetryAfter when absent or
// unparseable) and the identical request is re-issued, up to MaxRetries
// times. All other failures surface immediately as one of the error types
// in errors.go.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		c.log.WithFields(logrus.Fields{
			"url":      endpoint,
			"attempt":  attempt + 1,
			"attempts": c.maxRetries + 1,
		}).Debug("GET")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return &TransportError{Err: err, URL: endpoint, Attempt: attempt}
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &TransportError{Err: err, URL: endpoint, Attempt: attempt}
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return c.handleResponse(resp, endpoint, result)
		}

		retryAfter := retryAfterFrom(resp.Header)
		drain(resp)

		if c.disableRetry {
			return &RateLimitError{RetryAfter: retryAfter}
		}
		if attempt >= c.maxRetries {
			return &RateLimitError{RetryAfter: retryAfter, Attempts: attempt, Exhausted: true}
		}

		c.log.WithFields(logrus.Fields{
			"url":        endpoint,
			"retryAfter": retryAfter,
		}).Debug("rate limit hit, waiting before retry")

		if err := c.sleep(ctx, retryAfter); err != nil {
			return &TransportError{Err: err, URL: endpoint, Attempt: attempt}
		}
	}
}

func (c *Client) handleResponse(resp *http.Response, endpoint string, result any) error {
	defer resp.Body.Close()

	fields := logrus.Fields{"url": endpoint, "status": resp.StatusCode}
	if remaining := resp.Header.Get("RateLimit-Remaining"); remaining != "" {
		fields["rateLimitRemaining"] = remaining
	}
	c.log.WithFields(fields).Debug("response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := "<body not available>"
		if body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil {
			text = string(body)
		}
		return &StatusError{StatusCode: resp.StatusCode, Body: text}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &DecodeError{Err: err, URL: endpoint}
	}
	return nil
}

// retryAfterFrom reads the RateLimit-Reset header as a whole number of
// seconds, falling back to DefaultRetryAfter.
func retryAfterFrom(h http.Header) time.Duration {
	if v := h.Get("RateLimit-Reset"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return DefaultRetryAfter
}

// drain discards the response body so the connection can be reused before
// the next attempt.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
}

// wait blocks for d or until the context is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
