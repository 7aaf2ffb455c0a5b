package prtg

import "net/url"

// Credentials supplies the query parameters that authenticate requests.
// PRTG recognizes credentials only in the query string, on GET and POST
// alike, so implementations attach exactly their documented parameter set
// and nothing else.
//
// Credentials are read-only once handed to a client; to rotate them,
// construct a new client. Credential values never appear in log output:
// the transport redacts URLs before logging.
type Credentials interface {
	// Apply adds the credential parameters to the query.
	Apply(query url.Values)
}

// BasicAuth authenticates with a username and the account password.
// The password rides every request URL, so prefer PasshashAuth or TokenAuth
// where available.
type BasicAuth struct {
	Username string
	Password string
}

// Apply sets the username and password parameters.
func (a BasicAuth) Apply(query url.Values) {
	query.Set("username", a.Username)
	query.Set("password", a.Password)
}

// PasshashAuth authenticates with a username and the account passhash shown
// under Setup > Account Settings in the PRTG web interface. The passhash is
// sent as the passhash parameter and never degrades to a password parameter.
type PasshashAuth struct {
	Username string
	Passhash string
}

// Apply sets the username and passhash parameters.
func (a PasshashAuth) Apply(query url.Values) {
	query.Set("username", a.Username)
	query.Set("passhash", a.Passhash)
}

// TokenAuth authenticates with an API token. Tokens are scoped per user and
// can be revoked individually, which makes them the preferred strategy for
// automation accounts.
type TokenAuth struct {
	Token string
}

// Apply sets the apitoken parameter.
func (a TokenAuth) Apply(query url.Values) {
	query.Set("apitoken", a.Token)
}
