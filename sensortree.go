package prtg

import (
	"context"
	"net/url"
	"strconv"
)

// GetSensorTree returns the monitoring tree as raw XML, rooted at the
// given group. Pass 0 to export the whole instance from the root group.
//
// The export is returned verbatim: the tree schema varies with the PRTG
// version and licensed sensor types, so decoding is left to the caller.
// Full exports on large installs can take minutes; see ClientConfig.Timeout.
func (c *Client) GetSensorTree(ctx context.Context, groupID int) (string, error) {
	query := url.Values{}
	query.Set("content", "sensortree")
	if groupID != 0 {
		query.Set("id", strconv.Itoa(groupID))
	}

	resp, err := c.get(ctx, sensorTreePath, query)
	if err != nil {
		return "", err
	}
	return string(resp.body), nil
}
