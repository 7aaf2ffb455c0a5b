package middleware

import (
	"maps"
	"net/http"
	"net/url"
)

// Credentials supplies the query parameters that authenticate a request.
// PRTG only recognizes credentials in the query string, so implementations
// add their parameter set (username+password, username+passhash, or
// apitoken) to the passed values.
type Credentials interface {
	Apply(query url.Values)
}

// Auth returns a middleware that injects authentication query parameters
// into all requests. The credential parameters ride the query string on
// both GET and POST calls; PRTG ignores Authorization headers.
func Auth(creds Credentials) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &authTransport{
			next:  next,
			creds: creds,
		}
	}
}

type authTransport struct {
	next  http.RoundTripper
	creds Credentials
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid modifying original
	req = cloneRequest(req)

	query := req.URL.Query()
	t.creds.Apply(query)
	req.URL.RawQuery = query.Encode()

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map
// and URL, so credential injection never touches the caller's request.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)

	if req.URL != nil {
		u := *req.URL
		r.URL = &u
	}

	return r
}
