package prtg

import (
	"context"
	"net/url"
	"strconv"
)

// probeColumns lists the table columns probe queries request. Asking for
// an explicit column set keeps responses small and stable across PRTG
// versions.
const probeColumns = "objid,name,active,tags,parentid,priority,status,groupnum,devicenum,location"

// getProbes queries the probes table. Probes hang directly off the root
// group, so the parent filter is fixed to 0.
func (c *Client) getProbes(ctx context.Context, filters url.Values) ([]Entity, error) {
	if filters == nil {
		filters = url.Values{}
	}
	filters.Set("filter_parentid", "0")
	return c.getTable(ctx, "probes", probeColumns, filters)
}

// GetAllProbes returns all probes with their details.
func (c *Client) GetAllProbes(ctx context.Context) ([]Entity, error) {
	return c.getProbes(ctx, nil)
}

// GetProbeByName returns the probe with the given name. It returns
// ErrObjectNotFound when no probe matches and ErrDuplicateObject when
// more than one does.
func (c *Client) GetProbeByName(ctx context.Context, name string) (Entity, error) {
	filters := url.Values{}
	filters.Set("filter_name", name)

	probes, err := c.getProbes(ctx, filters)
	if err != nil {
		return nil, err
	}
	return exactlyOne(probes, "probe")
}

// GetProbe returns one probe by id, or ErrObjectNotFound.
func (c *Client) GetProbe(ctx context.Context, id int) (Entity, error) {
	filters := url.Values{}
	filters.Set("filter_objid", strconv.Itoa(id))

	probes, err := c.getProbes(ctx, filters)
	if err != nil {
		return nil, err
	}
	return firstRecord(probes, "probe")
}
