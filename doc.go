// Package prtg provides a Go client for the PRTG Network Monitor HTTP API.
//
// PRTG exposes its management surface as query-parameter RPC over HTTP:
// table queries return JSON, property and status reads return small XML
// documents, and object creation goes through the same form handlers the
// web interface uses. This package wraps that surface with typed
// operations for probes, groups, devices, sensors, object properties and
// object actions.
//
// # Authentication
//
// Three credential strategies are supported, carried as query parameters
// the way the server expects them:
//
//	prtg.BasicAuth{Username: "u", Password: "p"}   // username + password
//	prtg.PasshashAuth{Username: "u", Passhash: "h"} // username + passhash
//	prtg.TokenAuth{Token: "t"}                      // apitoken
//
// The constructor validates credentials against /api/healthstatus.json and
// fails fast, so a constructed client is known to work. Credential values
// are redacted from all log output.
//
// # Retry Logic
//
// Requests that fail with 502, 503 or 504 are retried with exponential
// backoff (default 3 retries, 1s initial wait, doubling). ClientConfig.RetryOn
// replaces the retried status set, e.g. to retry 500 against servers that
// answer with it while restarting. Client errors such as 400 are never
// retried.
//
// # Errors
//
// Failures map onto sentinel errors (prtg.ErrAuthenticationFailed,
// prtg.ErrNotFound, prtg.ErrObjectNotFound, prtg.ErrTimeout, ...) matched
// with errors.Is, and onto the typed *prtg.BadRequestError and
// *prtg.ServerError matched with errors.As.
//
// # Example Usage
//
//	client, err := prtg.New(ctx, "https://prtg.example.com",
//	    prtg.TokenAuth{Token: "your-api-token"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	devices, err := client.GetDevicesByGroupID(ctx, 2001)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, device := range devices {
//	    fmt.Printf("%d %s (%s)\n", device.ObjID(), device.Name(), device.Host())
//	}
//
// # Creating Objects
//
// PRTG has no official creation API. AddGroup and AddDevice post the form
// the web interface submits and then poll until the new object becomes
// visible, because the server's response carries no object id. CloneGroup
// and CloneDevice duplicate existing objects instead and recover the new
// id from the redirect URL the server answers with.
//
// All client methods are safe for concurrent use.
package prtg
