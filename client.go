package prtg

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/CC-Digital-Innovation/go-prtg/internal/httpclient"
	"github.com/CC-Digital-Innovation/go-prtg/internal/middleware"
	"github.com/CC-Digital-Innovation/go-prtg/observability"
)

const (
	// DefaultMaxRetries is the default number of retries for failed requests.
	DefaultMaxRetries = 3
	// DefaultRetryWaitTime is the default wait time before the first retry.
	DefaultRetryWaitTime = 1 * time.Second
	// DefaultTimeout is the default per-call HTTP timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultConfirmDeadline is the default overall budget for confirming
	// that a created object has become visible.
	DefaultConfirmDeadline = 60 * time.Second
	// DefaultConfirmWaitTime is the default wait before the first
	// confirmation re-poll.
	DefaultConfirmWaitTime = 500 * time.Millisecond

	// NoTimeout disables the per-call HTTP timeout. A request can then
	// block for as long as the server keeps the connection open, bounded
	// only by the caller's context.
	NoTimeout time.Duration = -1
	// NoConfirmDeadline polls for creation confirmation until the caller's
	// context is cancelled. Without a context deadline this can poll
	// forever.
	NoConfirmDeadline time.Duration = -1
)

// Client talks to one PRTG instance. All methods are safe for concurrent
// use; retries, rate limiting and credential injection run inside the
// shared HTTP transport.
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	logger     observability.Logger
	metrics    observability.MetricsRecorder

	confirmDeadline time.Duration
	confirmBase     time.Duration
}

// Compile-time check to ensure Client implements the ManagementAPI interface.
var _ ManagementAPI = (*Client)(nil)

// ClientConfig holds configuration for the PRTG client.
type ClientConfig struct {
	// BaseURL is the root of the PRTG web interface,
	// e.g. "https://prtg.example.com". Required.
	BaseURL string

	// Credentials authenticate every request: BasicAuth, PasshashAuth or
	// TokenAuth. Required.
	Credentials Credentials

	// MaxRetries sets the maximum number of retries for failed requests
	MaxRetries int

	// RetryWaitTime sets the wait time before the first retry; each
	// further retry doubles it
	RetryWaitTime time.Duration

	// RetryOn replaces the retried status codes (defaults to 502, 503,
	// 504). Listing 500 here opts into retrying it, for servers that
	// answer with 500 while restarting.
	RetryOn []int

	// Timeout bounds each call end to end, retries and backoff included
	// (defaults to 30 seconds). Pass NoTimeout to wait indefinitely;
	// sensor tree exports on large installs can take minutes.
	Timeout time.Duration

	// ConfirmDeadline bounds how long AddGroup and AddDevice wait for the
	// created object to become visible (defaults to 60 seconds). Pass
	// NoConfirmDeadline to poll until the context is cancelled.
	ConfirmDeadline time.Duration

	// ConfirmWaitTime sets the wait before the first confirmation
	// re-poll; each further poll doubles it
	ConfirmWaitTime time.Duration

	// RateLimitPerMinute caps outgoing requests (0 = no limit)
	RateLimitPerMinute int

	// InsecureSkipVerify disables TLS certificate verification. Only for
	// instances running with the self-signed certificate PRTG ships with.
	InsecureSkipVerify bool

	// TrustBundle is a PEM certificate bundle that replaces the system
	// roots, for instances with a private CA
	TrustBundle []byte

	// Logger for observability (optional, uses noop logger if nil)
	Logger observability.Logger

	// Metrics recorder for observability (optional, uses noop recorder if nil)
	Metrics observability.MetricsRecorder
}

// New creates a PRTG client with default settings and validates the
// connection. This is the recommended way to create a client for most use
// cases.
//
// Default settings:
//   - Max retries: 3 (on 502, 503, 504)
//   - Retry wait time: 1 second, doubling per retry
//   - Per-call timeout: 30 seconds
//   - Creation confirm deadline: 60 seconds
//
// The constructor performs one GET /api/healthstatus.json with the given
// credentials and fails if the instance is unreachable or the credentials
// are rejected, so a constructed client is known to work.
//
// For custom configuration, use NewWithConfig.
//
// Example:
//
//	client, err := prtg.New(ctx, "https://prtg.example.com",
//	    prtg.TokenAuth{Token: "your-api-token"})
func New(ctx context.Context, baseURL string, credentials Credentials) (*Client, error) {
	return NewWithConfig(ctx, &ClientConfig{
		BaseURL:     baseURL,
		Credentials: credentials,
	})
}

// NewWithConfig creates a PRTG client with custom configuration and
// validates the connection the same way New does.
//
// Example:
//
//	client, err := prtg.NewWithConfig(ctx, &prtg.ClientConfig{
//	    BaseURL:     "https://prtg.example.com",
//	    Credentials: prtg.BasicAuth{Username: "prtgadmin", Password: "secret"},
//	    RetryOn:     []int{500, 502, 503, 504},
//	    Logger:      myLogger,
//	})
func NewWithConfig(ctx context.Context, cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.Credentials == nil {
		return nil, errors.New("credentials are required")
	}
	if cfg.InsecureSkipVerify && len(cfg.TrustBundle) > 0 {
		return nil, errors.New("InsecureSkipVerify and TrustBundle are mutually exclusive")
	}

	// Set defaults
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryWaitTime == 0 {
		cfg.RetryWaitTime = DefaultRetryWaitTime
	}
	if cfg.ConfirmDeadline == 0 {
		cfg.ConfirmDeadline = DefaultConfirmDeadline
	}
	if cfg.ConfirmWaitTime == 0 {
		cfg.ConfirmWaitTime = DefaultConfirmWaitTime
	}
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}
	timeout := cfg.Timeout
	switch {
	case timeout == 0:
		timeout = DefaultTimeout
	case timeout < 0:
		timeout = 0 // httpclient treats zero as no timeout
	}

	tlsCfg, err := resolveTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	// Build middleware chain (applied in reverse order: last = innermost).
	// Auth sits inside retry so every attempt and every redirect hop
	// carries credentials, and everything logged further out sees the URL
	// before credentials are attached.
	middlewares := []httpclient.Middleware{
		middleware.Observability(cfg.Logger, cfg.Metrics),
	}
	if cfg.RateLimitPerMinute > 0 {
		limiter := rate.NewLimiter(
			rate.Limit(float64(cfg.RateLimitPerMinute)/60.0),
			cfg.RateLimitPerMinute,
		)
		middlewares = append(middlewares, middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: limiter,
			Logger:  cfg.Logger,
			Metrics: cfg.Metrics,
		}))
	}
	middlewares = append(middlewares,
		middleware.Retry(middleware.RetryConfig{
			MaxRetries:  cfg.MaxRetries,
			InitialWait: cfg.RetryWaitTime,
			RetryOn:     cfg.RetryOn,
			Logger:      cfg.Logger,
			Metrics:     cfg.Metrics,
		}),
		middleware.Auth(cfg.Credentials),
	)
	if tlsCfg != nil {
		middlewares = append(middlewares, middleware.TLSConfig(tlsCfg))
	}

	client := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpclient.New(
			httpclient.WithTimeout(timeout),
			httpclient.WithMiddleware(middlewares...),
		),
		logger:          cfg.Logger,
		metrics:         cfg.Metrics,
		confirmDeadline: cfg.ConfirmDeadline,
		confirmBase:     cfg.ConfirmWaitTime,
	}

	// Fail fast on bad credentials or an unreachable instance.
	if _, err := client.get(ctx, healthStatusPath, nil); err != nil {
		return nil, errors.Wrap(err, "validate connection")
	}

	return client, nil
}

func resolveTLSConfig(cfg *ClientConfig) (*tls.Config, error) {
	if cfg.InsecureSkipVerify {
		return middleware.InsecureSkipVerify(), nil
	}
	if len(cfg.TrustBundle) > 0 {
		tlsCfg, err := middleware.TrustBundle(cfg.TrustBundle)
		if err != nil {
			return nil, errors.Wrap(err, "load trust bundle")
		}
		return tlsCfg, nil
	}
	return nil, nil //nolint:nilnil // nil config means default TLS verification
}
