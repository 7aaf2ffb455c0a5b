package prtg

import (
	"context"
	"net/url"
	"strconv"
)

// groupColumns lists the table columns group queries request.
const groupColumns = "objid,name,active,status,probe,priority,tags,location,parentid,groupnum,devicenum"

func (c *Client) getGroups(ctx context.Context, filters url.Values) ([]Entity, error) {
	return c.getTable(ctx, "groups", groupColumns, filters)
}

// GetAllGroups returns all groups with their details.
func (c *Client) GetAllGroups(ctx context.Context) ([]Entity, error) {
	return c.getGroups(ctx, nil)
}

// GetGroupsByNameContaining returns the groups whose name contains the
// given substring.
func (c *Client) GetGroupsByNameContaining(ctx context.Context, name string) ([]Entity, error) {
	filters := url.Values{}
	filters.Set("filter_name", subFilter(name))
	return c.getGroups(ctx, filters)
}

// GetGroupByName returns the group with the given name. It returns
// ErrObjectNotFound when no group matches and ErrDuplicateObject when more
// than one does.
//
// The server-side exact-name filter chokes on names containing "[]";
// GetGroupsByNameContaining works for those.
func (c *Client) GetGroupByName(ctx context.Context, name string) (Entity, error) {
	filters := url.Values{}
	filters.Set("filter_name", name)

	groups, err := c.getGroups(ctx, filters)
	if err != nil {
		return nil, err
	}
	return exactlyOne(groups, "group")
}

// GetGroup returns one group by id, or ErrObjectNotFound.
func (c *Client) GetGroup(ctx context.Context, id int) (Entity, error) {
	filters := url.Values{}
	filters.Set("filter_objid", strconv.Itoa(id))

	groups, err := c.getGroups(ctx, filters)
	if err != nil {
		return nil, err
	}
	return firstRecord(groups, "group")
}

// AddGroup creates a group under the given parent and returns its record.
//
// PRTG has no official creation API; this posts the same form the web UI
// submits, which answers with an HTML page carrying no object id. The new
// group is found by diffing name-filtered listings taken before and after
// the post, polling until it shows up or ConfirmDeadline passes. Further
// settings go through SetObjectProperty once the group exists.
func (c *Client) AddGroup(ctx context.Context, name string, parentID int) (Entity, error) {
	list := func(ctx context.Context) ([]Entity, error) {
		return c.GetGroupsByNameContaining(ctx, name)
	}

	before, err := list(ctx)
	if err != nil {
		return nil, err
	}

	query := idQuery(parentID)
	query.Set("name_", name)
	if _, err := c.post(ctx, addGroupPath, query); err != nil {
		return nil, err
	}

	return c.confirmCreation(ctx, list, before, c.confirmDeadline)
}

// CloneGroup duplicates the group cloneID under parentID with a new name
// and returns the new group's id. The clone starts paused; resume it with
// ResumeObject once it is configured.
func (c *Client) CloneGroup(ctx context.Context, name string, parentID, cloneID int) (int, error) {
	query := idQuery(cloneID)
	query.Set("name", name)
	query.Set("targetid", strconv.Itoa(parentID))

	resp, err := c.get(ctx, duplicateObjectPath, query)
	if err != nil {
		return 0, err
	}
	// The server answers with a redirect to the new object's settings
	// page; its id appears only in that URL.
	return parseObjectID(resp.finalURL)
}
