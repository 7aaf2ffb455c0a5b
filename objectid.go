package prtg

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/cockroachdb/errors"
)

// objectIDPattern finds the first id query parameter. PRTG answers
// duplicateobject calls with a redirect to the new object's page, and the
// id parameter of the final URL is the only place the new id appears.
var objectIDPattern = regexp.MustCompile(`[?&]id=(\d+)`)

// parseObjectID extracts the object id from a URL's id query parameter.
// The URL is percent-decoded first so an encoded separator still matches;
// if decoding fails the raw string is searched as-is. A URL without an id
// parameter yields ErrIDParseFailed, never a silent zero id.
func parseObjectID(rawURL string) (int, error) {
	decoded, err := url.QueryUnescape(rawURL)
	if err != nil {
		decoded = rawURL
	}

	match := objectIDPattern.FindStringSubmatch(decoded)
	if match == nil {
		return 0, errors.Wrap(ErrIDParseFailed, "parse redirect url")
	}

	id, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, errors.Wrap(ErrIDParseFailed, "object id out of range")
	}

	return id, nil
}
