package prtg

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
)

// MoveObject moves an object under a new parent group.
func (c *Client) MoveObject(ctx context.Context, id, groupID int) error {
	query := idQuery(id)
	query.Set("targetid", strconv.Itoa(groupID))

	_, err := c.get(ctx, moveObjectPath, query)
	return err
}

// PauseObject pauses monitoring of an object indefinitely.
func (c *Client) PauseObject(ctx context.Context, id int) error {
	query := idQuery(id)
	query.Set("action", "0")

	_, err := c.get(ctx, pausePath, query)
	return err
}

// PauseObjectFor pauses monitoring of an object for the given number of
// minutes; monitoring resumes by itself afterwards.
func (c *Client) PauseObjectFor(ctx context.Context, id, minutes int) error {
	query := idQuery(id)
	query.Set("duration", strconv.Itoa(minutes))
	query.Set("action", "0")

	_, err := c.get(ctx, pauseForPath, query)
	return err
}

// ResumeObject resumes monitoring of a paused object.
func (c *Client) ResumeObject(ctx context.Context, id int) error {
	query := idQuery(id)
	query.Set("action", "1")

	_, err := c.get(ctx, pausePath, query)
	return err
}

// DeleteObject deletes an object and everything beneath it. There is no
// undo; the approval the web interface would ask for is sent along.
func (c *Client) DeleteObject(ctx context.Context, id int) error {
	query := idQuery(id)
	query.Set("approve", "1")

	_, err := c.get(ctx, deleteObjectPath, query)
	return err
}

// SetPriority sets the priority of an object. Valid priorities are 1
// (lowest) through 5 (highest); anything else returns ErrInvalidPriority
// without a request being made.
func (c *Client) SetPriority(ctx context.Context, id, priority int) error {
	if priority < 1 || priority > 5 {
		return errors.Wrapf(ErrInvalidPriority, "priority %d", priority)
	}

	query := idQuery(id)
	query.Set("prio", strconv.Itoa(priority))

	_, err := c.get(ctx, setPriorityPath, query)
	return err
}
