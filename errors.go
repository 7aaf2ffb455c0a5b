package prtg

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by the client. Match them with errors.Is; they
// may arrive wrapped with request context.
var (
	// ErrAuthenticationFailed is returned when the server answers 401.
	// PRTG rejects the credential parameters, or the account is locked out.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNotFound is returned when the server answers 404 for an endpoint.
	ErrNotFound = errors.New("resource not found")

	// ErrTimeout is returned when a request exhausted its retry budget on
	// timeouts without ever receiving a response.
	ErrTimeout = errors.New("request timed out")

	// ErrCreationNotConfirmed is returned when a creation call went through
	// but no new record appeared in the listing before the confirmation
	// deadline. The object may or may not exist on the server.
	ErrCreationNotConfirmed = errors.New("object creation not confirmed")

	// ErrMalformedResponse is returned when a response body cannot be
	// decoded in the documented shape.
	ErrMalformedResponse = errors.New("malformed server response")

	// ErrIDParseFailed is returned when no object id can be extracted from
	// a URL that should carry one.
	ErrIDParseFailed = errors.New("no object id in url")

	// ErrObjectNotFound is returned by exact-name lookups that match no
	// object. Unlike ErrNotFound this is a successful server response with
	// an empty result set.
	ErrObjectNotFound = errors.New("object not found")

	// ErrDuplicateObject is returned by exact-name lookups that match more
	// than one object.
	ErrDuplicateObject = errors.New("multiple objects share the name")

	// ErrInvalidPriority is returned by SetPriority for values outside 1-5.
	// The request is rejected client-side without touching the server.
	ErrInvalidPriority = errors.New("priority must be between 1 and 5")
)

// BadRequestError reports a 400 response. Message carries the text PRTG
// wrapped in the XML error body, e.g. a rejected parameter combination.
// Match with errors.As.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return "bad request: " + e.Message
}

// ServerError reports a non-2xx response with no more specific mapping.
// Match with errors.As to read the status code.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status=%d", e.StatusCode)
}
