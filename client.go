package amber

import (
	"os"

	"github.com/amberelectric/amber-go/internal/api"
)

// EnvAPIKey is the environment variable consulted for a default credential
// when no WithAPIKey option is given. It is read once, at construction.
const EnvAPIKey = "AMBER_API_KEY"

// Client is the Amber Electric API client.
//
// Its configuration is immutable after New, so a single Client may be
// shared freely across goroutines; concurrent calls only share the
// underlying http.Client's connection pool.
type Client struct {
	api *api.Client
}

// New creates a new Amber client.
//
// Without options the client uses the public API base URL, picks up its
// credential from the AMBER_API_KEY environment variable (if set), and
// retries rate-limited requests up to 3 times. A client without a
// credential can still call CurrentRenewables, which is an open endpoint.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:          DefaultBaseURL,
		maxRetries:       DefaultMaxRetries,
		retryOnRateLimit: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv(EnvAPIKey)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:      cfg.baseURL,
		APIKey:       cfg.apiKey,
		HTTPClient:   cfg.httpClient,
		MaxRetries:   cfg.maxRetries,
		DisableRetry: !cfg.retryOnRateLimit,
		Logger:       cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}
