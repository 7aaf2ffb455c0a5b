package prtg

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestBadRequestError(t *testing.T) {
	var badReq *BadRequestError
	err := errors.Wrap(&BadRequestError{Message: "device not found"}, "POST /adddevice2.htm")

	if !errors.As(err, &badReq) {
		t.Fatal("wrapped BadRequestError not matched by errors.As")
	}
	if badReq.Message != "device not found" {
		t.Errorf("Message = %q, want %q", badReq.Message, "device not found")
	}
	if badReq.Error() != "bad request: device not found" {
		t.Errorf("Error() = %q", badReq.Error())
	}
}

func TestServerError(t *testing.T) {
	var srvErr *ServerError
	err := errors.Wrap(&ServerError{StatusCode: 503}, "GET /api/table.json")

	if !errors.As(err, &srvErr) {
		t.Fatal("wrapped ServerError not matched by errors.As")
	}
	if srvErr.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", srvErr.StatusCode)
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"authentication failed", ErrAuthenticationFailed},
		{"not found", ErrNotFound},
		{"timeout", ErrTimeout},
		{"creation not confirmed", ErrCreationNotConfirmed},
		{"object not found", ErrObjectNotFound},
		{"duplicate object", ErrDuplicateObject},
		{"id parse failed", ErrIDParseFailed},
		{"malformed response", ErrMalformedResponse},
		{"invalid priority", ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := errors.Wrap(errors.Wrap(tt.sentinel, "inner"), "outer")
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is lost the sentinel through wrapping")
			}
		})
	}
}
