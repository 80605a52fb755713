package amber

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/amberelectric/amber-go/internal/api"
)

const (
	// DefaultBaseURL is the production Amber Electric API root.
	DefaultBaseURL = api.DefaultBaseURL

	// DefaultMaxRetries is the default rate-limit retry budget.
	DefaultMaxRetries = 3
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL          string
	apiKey           string
	httpClient       *http.Client
	maxRetries       int
	retryOnRateLimit bool
	logger           logrus.FieldLogger
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey sets the bearer credential used for authenticated endpoints.
// When not given, the AMBER_API_KEY environment variable is consulted.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the API base URL. Useful for testing against a
// local server.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client must be safe for
// concurrent use.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithMaxRetries sets the maximum number of retry attempts for
// rate-limited requests. Default: 3. Zero disables retries just like
// WithRetryOnRateLimit(false), but the latter is clearer about intent and
// fails without consuming the server's stated wait.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithRetryOnRateLimit enables or disables automatic retries on HTTP 429.
// Default: enabled. When disabled, rate-limited calls fail immediately
// with a RateLimitExceededError carrying the server's suggested wait.
func WithRetryOnRateLimit(enabled bool) Option {
	return func(c *clientConfig) {
		c.retryOnRateLimit = enabled
	}
}

// WithLogger sets the logger that receives per-request diagnostics at
// debug level. By default the client is silent.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *clientConfig) {
		c.logger = log
	}
}
