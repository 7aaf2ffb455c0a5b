package prtg

import (
	"context"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
)

const probesSuccess = `{
  "prtg-version": "24.1.90.1299",
  "treesize": 2,
  "probes": [
    {"objid": 1, "name": "Local Probe", "active": true, "tags": "", "parentid": 0, "priority": 3, "status": "Up", "groupnum": 3, "devicenum": 12, "location": ""},
    {"objid": 1001, "name": "Remote Probe DC2", "active": true, "tags": "remote", "parentid": 0, "priority": 3, "status": "Up", "groupnum": 1, "devicenum": 5, "location": "DC2"}
  ]
}`

func TestGetAllProbesAlwaysFiltersRoot(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if got := query.Get("content"); got != "probes" {
				t.Errorf("content = %q, want probes", got)
			}
			// Objects of other kinds match content=probes queries on some
			// PRTG versions unless the root parent filter is applied.
			if got := query.Get("filter_parentid"); got != "0" {
				t.Errorf("filter_parentid = %q, want 0", got)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(probesSuccess)) //nolint:errcheck
		},
	})

	probes, err := client.GetAllProbes(context.Background())
	if err != nil {
		t.Fatalf("GetAllProbes failed: %v", err)
	}
	if len(probes) != 2 {
		t.Fatalf("len(probes) = %d, want 2", len(probes))
	}
	if probes[1].Name() != "Remote Probe DC2" {
		t.Errorf("Name = %q", probes[1].Name())
	}
}

func TestGetProbeByNameDuplicate(t *testing.T) {
	duplicates := `{"prtg-version": "24.1.90.1299", "treesize": 2, "probes": [
  {"objid": 1, "name": "Probe"},
  {"objid": 2, "name": "Probe"}
]}`

	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(duplicates)) //nolint:errcheck
		},
	})

	_, err := client.GetProbeByName(context.Background(), "Probe")
	if !errors.Is(err, ErrDuplicateObject) {
		t.Errorf("error = %v, want ErrDuplicateObject", err)
	}
}

func TestGetProbeByID(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("filter_objid"); got != "1001" {
				t.Errorf("filter_objid = %q, want 1001", got)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"prtg-version": "24.1.90.1299", "treesize": 1, "probes": [{"objid": 1001, "name": "Remote Probe DC2"}]}`)) //nolint:errcheck
		},
	})

	probe, err := client.GetProbe(context.Background(), 1001)
	if err != nil {
		t.Fatalf("GetProbe failed: %v", err)
	}
	if probe.ObjID() != 1001 {
		t.Errorf("ObjID = %d, want 1001", probe.ObjID())
	}
}

func TestGetProbeNotFound(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"prtg-version": "24.1.90.1299", "treesize": 0, "probes": []}`)) //nolint:errcheck
		},
	})

	_, err := client.GetProbe(context.Background(), 9999)
	if !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("error = %v, want ErrObjectNotFound", err)
	}
}
