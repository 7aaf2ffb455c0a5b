package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/CC-Digital-Innovation/go-prtg/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
// Logged URLs are redacted first, so credential query parameters never reach
// the logger. Each request carries a generated request id that correlates its
// start, completion, and failure log lines.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// Compute redacted URL string once to avoid multiple allocations
	urlStr := redactURL(req.URL)

	logger := t.logger.With(observability.Field{Key: "request_id", Value: uuid.NewString()})

	// Log request
	logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: urlStr},
		observability.Field{Key: "path", Value: req.URL.Path},
	)

	// Make request
	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		// Log error
		logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: urlStr},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // Observability middleware logs error but passes it through unchanged
		return nil, err
	}

	// Log response
	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "url", Value: urlStr},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("http request completed with error", fields...)
	} else {
		logger.Debug("http request completed", fields...)
	}

	// PRTG endpoints are fixed paths with object ids in the query string,
	// so the raw path is already low-cardinality for metrics labels.
	t.metrics.RecordHTTPRequest(req.Method, req.URL.Path, resp.StatusCode, duration)

	return resp, nil
}
