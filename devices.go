package prtg

import (
	"context"
	"net/url"
	"strconv"
)

// deviceColumns lists the table columns device queries request.
const deviceColumns = "objid,name,active,status,probe,group,host,priority,tags,location,parentid,icon"

func (c *Client) getDevices(ctx context.Context, filters url.Values) ([]Entity, error) {
	return c.getTable(ctx, "devices", deviceColumns, filters)
}

// GetAllDevices returns all devices with their details.
func (c *Client) GetAllDevices(ctx context.Context) ([]Entity, error) {
	return c.getDevices(ctx, nil)
}

// GetDevicesByGroupID returns the devices under the given group, including
// ones in nested subgroups.
func (c *Client) GetDevicesByGroupID(ctx context.Context, groupID int) ([]Entity, error) {
	filters := url.Values{}
	filters.Set("id", strconv.Itoa(groupID))
	return c.getDevices(ctx, filters)
}

// GetDevicesByNameContaining returns the devices whose name contains the
// given substring.
func (c *Client) GetDevicesByNameContaining(ctx context.Context, name string) ([]Entity, error) {
	filters := url.Values{}
	filters.Set("filter_name", subFilter(name))
	return c.getDevices(ctx, filters)
}

// GetDeviceByName returns the device with the given name. It returns
// ErrObjectNotFound when no device matches and ErrDuplicateObject when
// more than one does.
func (c *Client) GetDeviceByName(ctx context.Context, name string) (Entity, error) {
	filters := url.Values{}
	filters.Set("filter_name", name)

	devices, err := c.getDevices(ctx, filters)
	if err != nil {
		return nil, err
	}
	return exactlyOne(devices, "device")
}

// GetDevice returns one device by id, or ErrObjectNotFound.
func (c *Client) GetDevice(ctx context.Context, id int) (Entity, error) {
	filters := url.Values{}
	filters.Set("filter_objid", strconv.Itoa(id))

	devices, err := c.getDevices(ctx, filters)
	if err != nil {
		return nil, err
	}
	return firstRecord(devices, "device")
}

// AddDevice creates a device under the given group and returns its record.
// An empty icon falls back to DefaultIcon.
//
// Creation works the same way as AddGroup: an unofficial form post with no
// usable response, confirmed by diffing name-filtered listings. Further
// settings go through SetObjectProperty once the device exists.
func (c *Client) AddDevice(ctx context.Context, name, host string, parentID int, icon Icon) (Entity, error) {
	if icon == "" {
		icon = DefaultIcon
	}

	list := func(ctx context.Context) ([]Entity, error) {
		return c.GetDevicesByNameContaining(ctx, name)
	}

	before, err := list(ctx)
	if err != nil {
		return nil, err
	}

	query := idQuery(parentID)
	query.Set("name_", name)
	query.Set("host_", host)
	query.Set("deviceicon_", string(icon))
	if _, err := c.post(ctx, addDevicePath, query); err != nil {
		return nil, err
	}

	return c.confirmCreation(ctx, list, before, c.confirmDeadline)
}

// CloneDevice duplicates the device cloneID under parentID with a new name
// and host, and returns the new device's id. The clone starts paused;
// resume it with ResumeObject once it is configured.
func (c *Client) CloneDevice(ctx context.Context, name, host string, parentID, cloneID int) (int, error) {
	query := idQuery(cloneID)
	query.Set("name", name)
	query.Set("host", host)
	query.Set("targetid", strconv.Itoa(parentID))

	resp, err := c.get(ctx, duplicateObjectPath, query)
	if err != nil {
		return 0, err
	}
	// The id of the clone appears only in the redirect target URL.
	return parseObjectID(resp.finalURL)
}

// DeviceURL returns the web interface URL of a device, for linking from
// dashboards and tickets.
func (c *Client) DeviceURL(id int) string {
	return c.baseURL + deviceViewPath + "?id=" + strconv.Itoa(id)
}
