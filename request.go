package prtg

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
)

// API endpoint paths. PRTG mixes documented /api/ endpoints with the
// undocumented form handlers the web UI itself posts to (addgroup2.htm,
// adddevice2.htm, moveobjectnow.htm).
const (
	healthStatusPath      = "/api/healthstatus.json"
	tablePath             = "/api/table.json"
	sensorTreePath        = "/api/table.xml"
	addGroupPath          = "/addgroup2.htm"
	addDevicePath         = "/adddevice2.htm"
	duplicateObjectPath   = "/api/duplicateobject.htm"
	getObjectPropertyPath = "/api/getobjectproperty.htm"
	setObjectPropertyPath = "/api/setobjectproperty.htm"
	getObjectStatusPath   = "/api/getobjectstatus.htm"
	moveObjectPath        = "/moveobjectnow.htm"
	pausePath             = "/api/pause.htm"
	pauseForPath          = "/api/pauseobjectfor.htm"
	deleteObjectPath      = "/api/deleteobject.htm"
	setPriorityPath       = "/api/setpriority.htm"
	deviceViewPath        = "/device.htm"
)

// apiResponse carries what callers need once status mapping has passed:
// the raw body and the URL the request ended up at after any redirects.
// Clone endpoints answer with a redirect to the new object's page, so the
// final URL is the only place the new object ID appears.
type apiResponse struct {
	body     []byte
	finalURL string
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (*apiResponse, error) {
	return c.do(ctx, http.MethodGet, endpoint, query)
}

func (c *Client) post(ctx context.Context, endpoint string, query url.Values) (*apiResponse, error) {
	return c.do(ctx, http.MethodPost, endpoint, query)
}

// do runs one PRTG call. Parameters travel in the query string for both
// GET and POST: the server reads them from there regardless of method, and
// the credential middleware appends its own parameters the same way.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values) (*apiResponse, error) {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := wrapTransportError(err, method, endpoint)
		c.metrics.RecordError(endpoint, errorKind(wrapped))
		return nil, wrapped
	}
	defer resp.Body.Close() //nolint:errcheck // nothing useful to do with a close error here

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		wrapped := wrapTransportError(err, method, endpoint)
		c.metrics.RecordError(endpoint, errorKind(wrapped))
		return nil, wrapped
	}

	if err := mapStatusError(resp.StatusCode, body); err != nil {
		c.metrics.RecordError(endpoint, errorKind(err))
		return nil, errors.Wrapf(err, "%s %s", method, endpoint)
	}

	finalURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return &apiResponse{body: body, finalURL: finalURL}, nil
}

// wrapTransportError maps low-level transport failures onto the package's
// sentinels where one applies. Timeouts from the client's own limit and
// from a caller deadline both surface as ErrTimeout; an explicit caller
// cancellation keeps context.Canceled so callers can tell the two apart.
func wrapTransportError(err error, method, endpoint string) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return errors.Wrapf(err, "%s %s", method, endpoint)
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return errors.Wrapf(ErrTimeout, "%s %s: %v", method, endpoint, err)
	default:
		return errors.Wrapf(err, "%s %s", method, endpoint)
	}
}

// xmlErrorBody is the shape PRTG answers 400s with: the human-readable
// message sits in the <error> child of the root element.
type xmlErrorBody struct {
	Message *string `xml:"error"`
}

// mapStatusError translates a non-2xx status into the package's error
// taxonomy. Retries have already run by the time this sees a response, so
// whatever status is left is final.
func mapStatusError(statusCode int, body []byte) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusBadRequest:
		var e xmlErrorBody
		if err := xml.Unmarshal(body, &e); err != nil || e.Message == nil {
			return errors.Wrap(ErrMalformedResponse, "status 400 without an <error> element")
		}
		return &BadRequestError{Message: *e.Message}
	case statusCode == http.StatusUnauthorized:
		return ErrAuthenticationFailed
	case statusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return &ServerError{StatusCode: statusCode}
	}
}

// errorKind buckets an error for the errors_total metric. Buckets are
// deliberately coarse so the label stays low-cardinality.
func errorKind(err error) string {
	var badReq *BadRequestError
	var srvErr *ServerError
	switch {
	case errors.As(err, &badReq):
		return "bad_request"
	case errors.Is(err, ErrAuthenticationFailed):
		return "authentication"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.As(err, &srvErr):
		return "server_error"
	default:
		return "transport"
	}
}

// getTable queries /api/table.json for one content type and decodes the
// record array. Filters are merged on top of the content and column
// parameters.
func (c *Client) getTable(ctx context.Context, content, columns string, filters url.Values) ([]Entity, error) {
	query := url.Values{}
	query.Set("content", content)
	query.Set("columns", columns)
	for key, vals := range filters {
		for _, v := range vals {
			query.Add(key, v)
		}
	}

	resp, err := c.get(ctx, tablePath, query)
	if err != nil {
		return nil, err
	}
	return decodeTable(resp.body, content)
}

// decodeTable unwraps a /api/table.json envelope. PRTG keys the record
// array by content type ("groups", "devices", ...), alongside metadata
// fields this client does not use.
func decodeTable(body []byte, key string) ([]Entity, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "decode table envelope: %v", err)
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, errors.Wrapf(ErrMalformedResponse, "table response missing %q array", key)
	}
	var records []Entity
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "decode %q records: %v", key, err)
	}
	return records, nil
}

// xmlResultBody is the shape of getobjectproperty.htm and
// getobjectstatus.htm responses.
type xmlResultBody struct {
	Result *string `xml:"result"`
}

// decodeXMLResult pulls the <result> text out of a property or status
// response. A missing element means the server answered with something
// other than the expected document.
func decodeXMLResult(body []byte) (string, error) {
	var r xmlResultBody
	if err := xml.Unmarshal(body, &r); err != nil {
		return "", errors.Wrapf(ErrMalformedResponse, "decode <result> element: %v", err)
	}
	if r.Result == nil {
		return "", errors.Wrap(ErrMalformedResponse, "response missing <result> element")
	}
	return *r.Result, nil
}

// idQuery seeds values with the id parameter almost every object endpoint
// takes.
func idQuery(id int) url.Values {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return q
}

// subFilter builds the substring-match expression PRTG filter parameters
// understand.
func subFilter(name string) string {
	return "@sub(" + name + ")"
}
