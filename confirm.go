package prtg

import (
	"context"
	"reflect"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/CC-Digital-Innovation/go-prtg/internal/retry"
	"github.com/CC-Digital-Innovation/go-prtg/observability"
)

// listFunc fetches the current set of records matching a creation's name
// filter.
type listFunc func(ctx context.Context) ([]Entity, error)

// confirmCreation polls list until a record shows up that was not in the
// before snapshot and returns the first such record in server order.
//
// The unofficial creation endpoints answer with an HTML page that carries
// no object ID, and the new object becomes visible to table queries only
// after the server has finished deferred setup work. Confirming by
// snapshot difference is the only reliable way to identify the object just
// created; a name filter alone cannot tell it apart from pre-existing
// objects with similar names. Full-record equality keeps the diff honest
// when several objects share a name. If another client creates a matching
// object between snapshot and poll, that object is indistinguishable from
// ours; the protocol offers nothing to close that race.
//
// A zero deadline fails immediately without touching the server. A
// negative deadline polls until ctx is cancelled.
func (c *Client) confirmCreation(ctx context.Context, list listFunc, before []Entity, deadline time.Duration) (Entity, error) {
	if deadline == 0 {
		return nil, errors.Wrap(ErrCreationNotConfirmed, "confirmation deadline is zero")
	}

	// A nil channel never fires, which is exactly what a negative
	// deadline wants.
	var deadlineCh <-chan time.Time
	if deadline > 0 {
		timer := time.NewTimer(deadline)
		defer timer.Stop()
		deadlineCh = timer.C
	}

	backoff := retry.NewBackoff(c.confirmBase)
	polls := 0
	for {
		after, err := list(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "confirm creation")
		}
		polls++

		if record, ok := firstNewRecord(before, after); ok {
			return record, nil
		}

		wait := backoff.Next()
		c.logger.Debug("created object not visible yet, waiting",
			observability.Field{Key: "polls", Value: polls},
			observability.Field{Key: "wait", Value: wait.String()},
		)

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "confirm creation")
		case <-deadlineCh:
			return nil, errors.Wrapf(ErrCreationNotConfirmed,
				"no new record after %d polls within %s", polls, deadline)
		case <-time.After(wait):
		}
	}
}

// firstNewRecord returns the first record in after with no deep-equal
// match in before.
func firstNewRecord(before, after []Entity) (Entity, bool) {
	for _, candidate := range after {
		if !containsRecord(before, candidate) {
			return candidate, true
		}
	}
	return nil, false
}

func containsRecord(records []Entity, target Entity) bool {
	for _, record := range records {
		if reflect.DeepEqual(record, target) {
			return true
		}
	}
	return false
}
