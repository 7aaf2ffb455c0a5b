// Package observability provides interfaces for logging and metrics collection
// in the go-prtg library.
//
// This package defines standard interfaces that allow users to integrate their
// own logging and metrics implementations with PRTG API clients.
//
// # Logger Interface
//
// The Logger interface supports structured logging with key-value pairs:
//
//	logger := observability.NewZapLogger(zapLogger)
//	client, err := prtg.NewWithConfig(ctx, &prtg.ClientConfig{
//		BaseURL:     baseURL,
//		Credentials: prtg.TokenAuth{Token: token},
//		Logger:      logger,
//	})
//
// Supported log levels:
//   - Debug: Detailed diagnostic information
//   - Info: General informational messages
//   - Warn: Warning messages for potentially problematic situations
//   - Error: Error messages for failures
//
// Request URLs are redacted before they reach the logger: credential query
// parameters (username, password, passhash, apitoken) never appear in log
// output at any level.
//
// # MetricsRecorder Interface
//
// The MetricsRecorder interface tracks API client metrics:
//
//	metrics := observability.NewPrometheusRecorder(prometheus.DefaultRegisterer)
//	client, err := prtg.NewWithConfig(ctx, &prtg.ClientConfig{
//		BaseURL:     baseURL,
//		Credentials: prtg.TokenAuth{Token: token},
//		Metrics:     metrics,
//	})
//
// Tracked metrics include:
//   - HTTP request count, status codes, and duration
//   - Retry attempts for failed requests
//   - Rate limiting events and wait times
//   - Error occurrences by type
//
// # Default Behavior
//
// If no logger or metrics recorder is provided, the client uses no-op
// implementations that discard all events. This ensures zero overhead
// when observability is not needed.
//
// # Bundled Adapters
//
// NewZapLogger adapts a *zap.Logger; NewPrometheusRecorder registers
// Prometheus collectors on a caller-supplied registry. Both are thin:
// implementing the interfaces against another logging or metrics stack
// is a few lines each (see examples/observability for both in use).
package observability
