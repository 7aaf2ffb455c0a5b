package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// prometheusRecorder implements MetricsRecorder on top of Prometheus collectors.
type prometheusRecorder struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	retries       *prometheus.CounterVec
	rateLimitWait *prometheus.HistogramVec
	errors        *prometheus.CounterVec
}

// NewPrometheusRecorder returns a MetricsRecorder that registers its
// collectors with reg. Pass prometheus.DefaultRegisterer to expose the
// metrics on the default registry. Registering two recorders on the same
// registry panics with a duplicate-registration error, so create one
// recorder per registry and share it between clients.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NewPrometheusRecorder(reg prometheus.Registerer) MetricsRecorder {
	factory := promauto.With(reg)

	return &prometheusRecorder{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prtg_client_http_requests_total",
			Help: "The number of HTTP requests sent to the PRTG server",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prtg_client_http_request_duration_seconds",
			Help:    "Duration of HTTP requests to the PRTG server",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		retries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prtg_client_http_retries_total",
			Help: "The number of retried HTTP requests per endpoint",
		}, []string{"path"}),
		rateLimitWait: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prtg_client_rate_limit_wait_seconds",
			Help:    "Time spent waiting on the client-side rate limiter",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prtg_client_errors_total",
			Help: "The number of client errors by operation and type",
		}, []string{"operation", "type"}),
	}
}

func (r *prometheusRecorder) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	r.httpRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	r.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (r *prometheusRecorder) RecordRetry(_ int, endpoint string) {
	r.retries.WithLabelValues(endpoint).Inc()
}

func (r *prometheusRecorder) RecordRateLimit(endpoint string, wait time.Duration) {
	r.rateLimitWait.WithLabelValues(endpoint).Observe(wait.Seconds())
}

func (r *prometheusRecorder) RecordError(operation, errorType string) {
	r.errors.WithLabelValues(operation, errorType).Inc()
}
