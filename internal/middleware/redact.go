package middleware

import "net/url"

// sensitiveParams are the credential query parameters PRTG accepts.
// Their values must never reach a logger or metrics label.
var sensitiveParams = []string{"username", "password", "passhash", "apitoken"}

// redactURL renders the URL with credential parameter values replaced by
// REDACTED. Every middleware that logs a request URL goes through here.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	query := u.Query()

	redacted := false
	for _, param := range sensitiveParams {
		if query.Has(param) {
			query.Set(param, "REDACTED")
			redacted = true
		}
	}

	if !redacted {
		return u.String()
	}

	clone := *u
	clone.RawQuery = query.Encode()

	return clone.String()
}
