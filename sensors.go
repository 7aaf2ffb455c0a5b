package prtg

import (
	"context"
	"net/url"
	"strconv"
)

// sensorColumns lists the table columns sensor queries request.
const sensorColumns = "objid,probe,group,device,status,priority,active,name"

func (c *Client) getSensors(ctx context.Context, filters url.Values) ([]Entity, error) {
	return c.getTable(ctx, "sensors", sensorColumns, filters)
}

// GetSensorsByName returns the sensors with the given name. Sensor names
// repeat across devices, so the group and device filters narrow the match;
// pass "" to skip either. The group filter is a substring match, the
// device filter an exact one.
func (c *Client) GetSensorsByName(ctx context.Context, name, group, device string) ([]Entity, error) {
	filters := url.Values{}
	filters.Set("filter_name", name)
	if group != "" {
		filters.Set("filter_group", subFilter(group))
	}
	if device != "" {
		filters.Set("filter_device", device)
	}
	return c.getSensors(ctx, filters)
}

// GetSensorsByNameContaining returns the sensors whose name contains the
// given substring, narrowed by the same optional group and device filters
// as GetSensorsByName.
func (c *Client) GetSensorsByNameContaining(ctx context.Context, name, group, device string) ([]Entity, error) {
	filters := url.Values{}
	filters.Set("filter_name", subFilter(name))
	if group != "" {
		filters.Set("filter_group", subFilter(group))
	}
	if device != "" {
		filters.Set("filter_device", device)
	}
	return c.getSensors(ctx, filters)
}

// GetSensor returns one sensor by id, or ErrObjectNotFound.
func (c *Client) GetSensor(ctx context.Context, id int) (Entity, error) {
	filters := url.Values{}
	filters.Set("filter_objid", strconv.Itoa(id))

	sensors, err := c.getSensors(ctx, filters)
	if err != nil {
		return nil, err
	}
	return firstRecord(sensors, "sensor")
}
