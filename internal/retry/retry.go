package retry

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// DefaultStatusCodes returns the status codes retried when no explicit set is
// configured:
//   - 502 (Bad Gateway)
//   - 503 (Service Unavailable)
//   - 504 (Gateway Timeout)
//
// PRTG reports most request-level problems as 400 with an XML error body, so
// only gateway-style failures are transient by default. 500, 408 and 429 can
// be added through configuration.
func DefaultStatusCodes() []int {
	return []int{
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	}
}

// Retryable returns true if the HTTP status code is in the configured
// retryable set. Client errors outside the set are never retryable: a 400
// carries a PRTG error message that will not change on a second attempt.
func Retryable(statusCode int, retryOn []int) bool {
	for _, code := range retryOn {
		if statusCode == code {
			return true
		}
	}

	return false
}

// ParseRetryAfter parses the Retry-After HTTP header and returns the duration to wait.
// The Retry-After header can contain either:
//   - Number of seconds (e.g., "120")
//   - HTTP-date (not currently supported, returns 0)
//
// Returns 0 if the header is empty or cannot be parsed.
func ParseRetryAfter(retryAfterHeader string) time.Duration {
	if retryAfterHeader == "" {
		return 0
	}

	seconds, err := strconv.Atoi(retryAfterHeader)
	if err == nil {
		return time.Duration(seconds) * time.Second
	}

	return 0
}

// maxShift bounds the exponential growth so the shift cannot overflow the
// duration. base 500ms * 2^16 is already over nine hours, far beyond any
// sane confirmation deadline.
const maxShift = 16

// Backoff yields jittered exponential wait times for polling loops.
// Each call to Next doubles the base interval and randomizes the result
// within [wait/2, wait], so concurrent pollers spread out instead of
// hitting the server in lockstep.
type Backoff struct {
	base    time.Duration
	attempt int
}

// NewBackoff returns a Backoff starting at the given base interval.
func NewBackoff(base time.Duration) *Backoff {
	return &Backoff{base: base}
}

// Next returns the wait before the following attempt.
func (b *Backoff) Next() time.Duration {
	wait := b.base << b.attempt
	if b.attempt < maxShift {
		b.attempt++
	}

	half := wait / 2

	return half + time.Duration(rand.Int63n(int64(half+1)))
}
