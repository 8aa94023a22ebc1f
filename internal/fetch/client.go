package fetch

import (
	"log/slog"
	"net/http"
	"time"

	"mediapeek/internal/logging"
)

const (
	defaultRequestTimeout = 120 * time.Second
	defaultResolveTimeout = 20 * time.Second
	defaultRetryAttempts  = 3
	defaultRetryDelay     = 2 * time.Second
	defaultUserAgent      = "mediapeek/dev"
)

// Client performs range resolution and bounded window downloads against
// remote HTTP(S) origins.
type Client struct {
	httpClient     *http.Client
	userAgent      string
	resolveTimeout time.Duration
	retryAttempts  int
	retryDelay     time.Duration
	logger         *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRequestTimeout bounds each download request end to end.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithResolveTimeout bounds range resolution requests.
func WithResolveTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.resolveTimeout = timeout
		}
	}
}

// WithRetryAttempts sets how many times a window fetch is attempted before
// the strategy is abandoned.
func WithRetryAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.retryAttempts = attempts
		}
	}
}

// WithRetryDelay sets the base delay between fetch attempts. The delay grows
// linearly with the attempt number.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay > 0 {
			c.retryDelay = delay
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if agent != "" {
			c.userAgent = agent
		}
	}
}

// WithLogger attaches a logger for fetch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "fetch")
		}
	}
}

// NewClient creates a fetch client with sane defaults.
func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient:     &http.Client{Timeout: defaultRequestTimeout},
		userAgent:      defaultUserAgent,
		resolveTimeout: defaultResolveTimeout,
		retryAttempts:  defaultRetryAttempts,
		retryDelay:     defaultRetryDelay,
		logger:         logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}
