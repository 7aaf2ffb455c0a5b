package prtg

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

const devicesTwoSuccess = `{
  "prtg-version": "24.1.90.1299",
  "treesize": 2,
  "devices": [
    {"objid": 2101, "name": "core-switch", "active": true, "status": "Up", "probe": "Local Probe", "group": "Network", "host": "10.0.0.1", "priority": 3, "tags": "switch", "location": "", "parentid": 2010, "icon": "A_Switch_1.png"},
    {"objid": 2102, "name": "edge-router", "active": true, "status": "Up", "probe": "Local Probe", "group": "Network", "host": "10.0.0.2", "priority": 4, "tags": "router", "location": "", "parentid": 2010, "icon": "A_Hardware_1.png"}
  ]
}`

func TestGetDevicesByGroupIDSendsID(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if got := query.Get("content"); got != "devices" {
				t.Errorf("content = %q, want devices", got)
			}
			// Scoping by group travels as the id parameter, not a filter.
			if got := query.Get("id"); got != "2010" {
				t.Errorf("id = %q, want 2010", got)
			}
			if got := query.Get("columns"); got != deviceColumns {
				t.Errorf("columns = %q, want %q", got, deviceColumns)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(devicesTwoSuccess)) //nolint:errcheck
		},
	})

	devices, err := client.GetDevicesByGroupID(context.Background(), 2010)
	if err != nil {
		t.Fatalf("GetDevicesByGroupID failed: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("len(devices) = %d, want 2", len(devices))
	}
	if devices[0].Host() != "10.0.0.1" {
		t.Errorf("Host = %q, want 10.0.0.1", devices[0].Host())
	}
}

func TestGetDeviceByNameNotFound(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"prtg-version": "24.1.90.1299", "treesize": 0, "devices": []}`)) //nolint:errcheck
		},
	})

	_, err := client.GetDeviceByName(context.Background(), "ghost")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("error = %v, want ErrObjectNotFound", err)
	}
}

func TestAddDevice(t *testing.T) {
	var listCalls atomic.Int32

	beforeList := `{"prtg-version": "24.1.90.1299", "treesize": 0, "devices": []}`
	afterList := `{"prtg-version": "24.1.90.1299", "treesize": 1, "devices": [
  {"objid": 5150, "name": "db-primary", "host": "10.0.1.20", "active": true}
]}`

	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			if listCalls.Add(1) == 1 {
				w.Write([]byte(beforeList)) //nolint:errcheck
				return
			}
			w.Write([]byte(afterList)) //nolint:errcheck
		},
		addDevicePath: func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			query := r.URL.Query()
			if got := query.Get("id"); got != "2010" {
				t.Errorf("id = %q, want 2010", got)
			}
			if got := query.Get("name_"); got != "db-primary" {
				t.Errorf("name_ = %q, want db-primary", got)
			}
			if got := query.Get("host_"); got != "10.0.1.20" {
				t.Errorf("host_ = %q, want 10.0.1.20", got)
			}
			if got := query.Get("deviceicon_"); got != string(IconServer) {
				t.Errorf("deviceicon_ = %q, want default icon %q", got, IconServer)
			}
			w.WriteHeader(http.StatusOK)
		},
	}, func(cfg *ClientConfig) {
		cfg.ConfirmWaitTime = time.Millisecond
	})

	// Empty icon falls back to the default.
	device, err := client.AddDevice(context.Background(), "db-primary", "10.0.1.20", 2010, "")
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	if device.ObjID() != 5150 {
		t.Errorf("ObjID = %d, want 5150", device.ObjID())
	}
}

func TestAddDeviceCustomIcon(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(devicesTwoSuccess)) //nolint:errcheck
		},
		addDevicePath: func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("deviceicon_"); got != string(IconSwitch) {
				t.Errorf("deviceicon_ = %q, want %q", got, IconSwitch)
			}
			w.WriteHeader(http.StatusOK)
		},
	}, func(cfg *ClientConfig) {
		cfg.ConfirmWaitTime = time.Millisecond
		cfg.ConfirmDeadline = 20 * time.Millisecond
	})

	// The listing never changes, so this ends in ErrCreationNotConfirmed;
	// the icon parameter assertion above is the point.
	_, err := client.AddDevice(context.Background(), "core-switch", "10.0.0.1", 2010, IconSwitch)
	if !errors.Is(err, ErrCreationNotConfirmed) {
		t.Errorf("error = %v, want ErrCreationNotConfirmed", err)
	}
}

func TestCloneDevice(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		duplicateObjectPath: func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if got := query.Get("id"); got != "2101" {
				t.Errorf("id = %q, want 2101", got)
			}
			if got := query.Get("name"); got != "core-switch-b" {
				t.Errorf("name = %q, want core-switch-b", got)
			}
			if got := query.Get("host"); got != "10.0.0.3" {
				t.Errorf("host = %q, want 10.0.0.3", got)
			}
			if got := query.Get("targetid"); got != "2010" {
				t.Errorf("targetid = %q, want 2010", got)
			}
			http.Redirect(w, r, "/device.htm?id=6001", http.StatusFound)
		},
		"/device.htm": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	id, err := client.CloneDevice(context.Background(), "core-switch-b", "10.0.0.3", 2010, 2101)
	if err != nil {
		t.Fatalf("CloneDevice failed: %v", err)
	}
	if id != 6001 {
		t.Errorf("id = %d, want 6001", id)
	}
}

func TestDeviceURL(t *testing.T) {
	client, server := newTestClient(t, map[string]http.HandlerFunc{})

	want := server.URL + "/device.htm?id=2101"
	if got := client.DeviceURL(2101); got != want {
		t.Errorf("DeviceURL = %q, want %q", got, want)
	}
}
