package prtg

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/CC-Digital-Innovation/go-prtg/observability"
)

func newConfirmClient() *Client {
	return &Client{
		logger:      observability.NoopLogger(),
		metrics:     observability.NoopMetricsRecorder(),
		confirmBase: time.Millisecond,
	}
}

func TestConfirmCreationReturnsNewRecord(t *testing.T) {
	before := []Entity{{"objid": float64(1), "name": "A"}}
	responses := [][]Entity{
		{{"objid": float64(1), "name": "A"}},
		{{"objid": float64(1), "name": "A"}},
		{{"objid": float64(1), "name": "A"}, {"objid": float64(2), "name": "B"}},
	}

	calls := 0
	list := func(_ context.Context) ([]Entity, error) {
		resp := responses[calls]
		calls++
		return resp, nil
	}

	got, err := newConfirmClient().confirmCreation(context.Background(), list, before, 5*time.Second)
	if err != nil {
		t.Fatalf("confirmCreation failed: %v", err)
	}

	want := Entity{"objid": float64(2), "name": "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("record = %v, want %v", got, want)
	}
	if calls != 3 {
		t.Errorf("list calls = %d, want 3 (two unchanged polls, then the diff)", calls)
	}
}

func TestConfirmCreationPrefersFirstNewRecord(t *testing.T) {
	before := []Entity{{"objid": float64(1), "name": "A"}}
	after := []Entity{
		{"objid": float64(1), "name": "A"},
		{"objid": float64(2), "name": "B"},
		{"objid": float64(3), "name": "B"},
	}
	list := func(_ context.Context) ([]Entity, error) { return after, nil }

	got, err := newConfirmClient().confirmCreation(context.Background(), list, before, time.Second)
	if err != nil {
		t.Fatalf("confirmCreation failed: %v", err)
	}
	if got.ObjID() != 2 {
		t.Errorf("ObjID = %d, want 2 (first new record in server order)", got.ObjID())
	}
}

func TestConfirmCreationZeroDeadline(t *testing.T) {
	calls := 0
	list := func(_ context.Context) ([]Entity, error) {
		calls++
		return nil, nil
	}

	_, err := newConfirmClient().confirmCreation(context.Background(), list, nil, 0)
	if !errors.Is(err, ErrCreationNotConfirmed) {
		t.Fatalf("error = %v, want ErrCreationNotConfirmed", err)
	}
	if calls != 0 {
		t.Errorf("list calls = %d, want 0 (zero deadline must not poll)", calls)
	}
}

func TestConfirmCreationDeadlineExceeded(t *testing.T) {
	before := []Entity{{"objid": float64(1), "name": "A"}}
	calls := 0
	list := func(_ context.Context) ([]Entity, error) {
		calls++
		return before, nil
	}

	_, err := newConfirmClient().confirmCreation(context.Background(), list, before, 30*time.Millisecond)
	if !errors.Is(err, ErrCreationNotConfirmed) {
		t.Fatalf("error = %v, want ErrCreationNotConfirmed", err)
	}
	if calls == 0 {
		t.Error("expected at least one poll before the deadline")
	}
}

func TestConfirmCreationIndefiniteDeadlineStopsOnContext(t *testing.T) {
	list := func(_ context.Context) ([]Entity, error) {
		return []Entity{{"objid": float64(1)}}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(25 * time.Millisecond)
		cancel()
	}()

	_, err := newConfirmClient().confirmCreation(ctx, list, []Entity{{"objid": float64(1)}}, NoConfirmDeadline)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrCreationNotConfirmed) {
		t.Error("cancellation must not report ErrCreationNotConfirmed")
	}
}

func TestConfirmCreationPropagatesListErrors(t *testing.T) {
	list := func(_ context.Context) ([]Entity, error) {
		return nil, errors.Wrap(ErrAuthenticationFailed, "GET /api/table.json")
	}

	_, err := newConfirmClient().confirmCreation(context.Background(), list, nil, time.Second)
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("error = %v, want the list error to surface", err)
	}
}
