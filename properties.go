package prtg

import (
	"context"
	"strings"
)

// GetObjectProperty reads one settings property of any object, e.g. "host"
// or "serviceurl". Property names match the field names on the object's
// settings page.
func (c *Client) GetObjectProperty(ctx context.Context, id int, name string) (string, error) {
	query := idQuery(id)
	query.Set("name", name)
	// Without this flag the server HTML-encodes the value.
	query.Set("show", "nohtmlencode")

	resp, err := c.get(ctx, getObjectPropertyPath, query)
	if err != nil {
		return "", err
	}
	return decodeXMLResult(resp.body)
}

// GetObjectStatus reads one live status field of any object, e.g.
// "status" or "lastup". Unlike properties, status fields reflect
// monitoring state rather than configuration.
func (c *Client) GetObjectStatus(ctx context.Context, id int, name string) (string, error) {
	query := idQuery(id)
	query.Set("name", name)
	query.Set("show", "nohtmlencode")

	resp, err := c.get(ctx, getObjectStatusPath, query)
	if err != nil {
		return "", err
	}
	return decodeXMLResult(resp.body)
}

// SetObjectProperty writes one settings property of any object.
func (c *Client) SetObjectProperty(ctx context.Context, id int, name, value string) error {
	query := idQuery(id)
	query.Set("name", name)
	query.Set("value", value)

	_, err := c.get(ctx, setObjectPropertyPath, query)
	return err
}

// GetHostname returns the hostname or IP address of a device.
func (c *Client) GetHostname(ctx context.Context, id int) (string, error) {
	return c.GetObjectProperty(ctx, id, "host")
}

// GetServiceURL returns the service URL of an object.
func (c *Client) GetServiceURL(ctx context.Context, id int) (string, error) {
	return c.GetObjectProperty(ctx, id, "serviceurl")
}

// SetHostname sets the hostname or IP address of a device.
func (c *Client) SetHostname(ctx context.Context, id int, host string) error {
	return c.SetObjectProperty(ctx, id, "host", host)
}

// SetIcon sets the icon of a device.
func (c *Client) SetIcon(ctx context.Context, id int, icon Icon) error {
	return c.SetObjectProperty(ctx, id, "deviceicon", string(icon))
}

// SetLocation sets the location of an object.
func (c *Client) SetLocation(ctx context.Context, id int, location string) error {
	return c.SetObjectProperty(ctx, id, "location", location)
}

// SetServiceURL sets the service URL of an object.
func (c *Client) SetServiceURL(ctx context.Context, id int, url string) error {
	return c.SetObjectProperty(ctx, id, "serviceurl", url)
}

// SetTags replaces the tags of an object. The server reads every space as
// a tag separator, so spaces inside a tag become hyphens before the tags
// are joined with spaces.
func (c *Client) SetTags(ctx context.Context, id int, tags []string) error {
	cleaned := make([]string, len(tags))
	for i, tag := range tags {
		cleaned[i] = strings.ReplaceAll(tag, " ", "-")
	}
	return c.SetObjectProperty(ctx, id, "tags", strings.Join(cleaned, " "))
}

// SetInheritLocationOff makes an object keep its own location instead of
// inheriting the parent's.
func (c *Client) SetInheritLocationOff(ctx context.Context, id int) error {
	return c.SetObjectProperty(ctx, id, "locationgroup_", "0")
}

// SetInheritLocationOn makes an object inherit its location from the
// parent.
func (c *Client) SetInheritLocationOn(ctx context.Context, id int) error {
	return c.SetObjectProperty(ctx, id, "locationgroup_", "1")
}
