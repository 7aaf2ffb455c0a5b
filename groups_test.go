package prtg

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestGetAllGroupsQuery(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if got := query.Get("content"); got != "groups" {
				t.Errorf("content = %q, want groups", got)
			}
			if got := query.Get("columns"); got != groupColumns {
				t.Errorf("columns = %q, want %q", got, groupColumns)
			}
			if got := query.Get("apitoken"); got != "test-token" {
				t.Errorf("apitoken = %q, want test-token", got)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(groupsTwoSuccess)) //nolint:errcheck
		},
	})

	groups, err := client.GetAllGroups(context.Background())
	if err != nil {
		t.Fatalf("GetAllGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].ObjID() != 2001 || groups[0].Name() != "Linux Servers" {
		t.Errorf("first group = %v", groups[0])
	}
}

func TestGetGroupsByNameContainingUsesSubFilter(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("filter_name"); got != "@sub(Servers)" {
				t.Errorf("filter_name = %q, want @sub(Servers)", got)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(groupsTwoSuccess)) //nolint:errcheck
		},
	})

	if _, err := client.GetGroupsByNameContaining(context.Background(), "Servers"); err != nil {
		t.Fatalf("GetGroupsByNameContaining failed: %v", err)
	}
}

func TestGetGroupByName(t *testing.T) {
	tests := []struct {
		name     string
		response string
		check    func(t *testing.T, group Entity, err error)
	}{
		{
			name: "single match",
			response: `{"prtg-version": "24.1.90.1299", "treesize": 1, "groups": [
  {"objid": 2001, "name": "Linux Servers", "active": true}
]}`,
			check: func(t *testing.T, group Entity, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if group.ObjID() != 2001 {
					t.Errorf("ObjID = %d, want 2001", group.ObjID())
				}
			},
		},
		{
			name:     "no match",
			response: groupsEmpty,
			check: func(t *testing.T, _ Entity, err error) {
				if !errors.Is(err, ErrObjectNotFound) {
					t.Errorf("error = %v, want ErrObjectNotFound", err)
				}
			},
		},
		{
			name:     "multiple matches",
			response: groupsTwoSuccess,
			check: func(t *testing.T, _ Entity, err error) {
				if !errors.Is(err, ErrDuplicateObject) {
					t.Errorf("error = %v, want ErrDuplicateObject", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, map[string]http.HandlerFunc{
				tablePath: func(w http.ResponseWriter, r *http.Request) {
					if got := r.URL.Query().Get("filter_name"); got != "Linux Servers" {
						t.Errorf("filter_name = %q, want exact name", got)
					}
					w.WriteHeader(http.StatusOK)
					w.Write([]byte(tt.response)) //nolint:errcheck
				},
			})

			group, err := client.GetGroupByName(context.Background(), "Linux Servers")
			tt.check(t, group, err)
		})
	}
}

func TestGetGroupByID(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("filter_objid"); got != "2001" {
				t.Errorf("filter_objid = %q, want 2001", got)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"prtg-version": "24.1.90.1299", "treesize": 1, "groups": [{"objid": 2001, "name": "Linux Servers"}]}`)) //nolint:errcheck
		},
	})

	group, err := client.GetGroup(context.Background(), 2001)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if group.Name() != "Linux Servers" {
		t.Errorf("Name = %q", group.Name())
	}
}

func TestAddGroup(t *testing.T) {
	var listCalls, posted atomic.Int32

	beforeList := `{"prtg-version": "24.1.90.1299", "treesize": 1, "groups": [
  {"objid": 2001, "name": "web-tier-old", "active": true}
]}`
	afterList := `{"prtg-version": "24.1.90.1299", "treesize": 2, "groups": [
  {"objid": 2001, "name": "web-tier-old", "active": true},
  {"objid": 4000, "name": "web-tier", "active": true}
]}`

	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("filter_name"); got != "@sub(web-tier)" {
				t.Errorf("filter_name = %q, want @sub(web-tier)", got)
			}
			w.WriteHeader(http.StatusOK)
			if listCalls.Add(1) == 1 {
				w.Write([]byte(beforeList)) //nolint:errcheck
				return
			}
			w.Write([]byte(afterList)) //nolint:errcheck
		},
		addGroupPath: func(w http.ResponseWriter, r *http.Request) {
			posted.Add(1)
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			query := r.URL.Query()
			if got := query.Get("id"); got != "2001" {
				t.Errorf("id = %q, want 2001", got)
			}
			if got := query.Get("name_"); got != "web-tier" {
				t.Errorf("name_ = %q, want web-tier", got)
			}
			// The real endpoint answers with an HTML page.
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("<html><body>OK</body></html>")) //nolint:errcheck
		},
	}, func(cfg *ClientConfig) {
		cfg.ConfirmWaitTime = time.Millisecond
	})

	group, err := client.AddGroup(context.Background(), "web-tier", 2001)
	if err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}

	if group.ObjID() != 4000 {
		t.Errorf("ObjID = %d, want 4000", group.ObjID())
	}
	if posted.Load() != 1 {
		t.Errorf("creation posts = %d, want 1", posted.Load())
	}
	// One snapshot before the post, one confirming poll after it.
	if listCalls.Load() != 2 {
		t.Errorf("list calls = %d, want 2", listCalls.Load())
	}
}

func TestAddGroupNeverConfirms(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		tablePath: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(groupsEmpty)) //nolint:errcheck
		},
		addGroupPath: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}, func(cfg *ClientConfig) {
		cfg.ConfirmWaitTime = time.Millisecond
		cfg.ConfirmDeadline = 25 * time.Millisecond
	})

	_, err := client.AddGroup(context.Background(), "ghost", 2001)
	if !errors.Is(err, ErrCreationNotConfirmed) {
		t.Errorf("error = %v, want ErrCreationNotConfirmed", err)
	}
}

func TestCloneGroup(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		duplicateObjectPath: func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if got := query.Get("id"); got != "3001" {
				t.Errorf("id = %q, want 3001", got)
			}
			if got := query.Get("name"); got != "web-tier-copy" {
				t.Errorf("name = %q, want web-tier-copy", got)
			}
			if got := query.Get("targetid"); got != "2001" {
				t.Errorf("targetid = %q, want 2001", got)
			}
			http.Redirect(w, r, "/group.htm?id=4242", http.StatusFound)
		},
		"/group.htm": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	id, err := client.CloneGroup(context.Background(), "web-tier-copy", 2001, 3001)
	if err != nil {
		t.Fatalf("CloneGroup failed: %v", err)
	}
	if id != 4242 {
		t.Errorf("id = %d, want 4242", id)
	}
}

func TestCloneGroupRedirectWithoutIDFailsIDParse(t *testing.T) {
	client, _ := newTestClient(t, map[string]http.HandlerFunc{
		duplicateObjectPath: func(w http.ResponseWriter, r *http.Request) {
			// Older servers redirect to an error page when the clone
			// source is not cloneable; that URL carries no object id.
			http.Redirect(w, r, "/error.htm?errormsg=cannot+clone", http.StatusFound)
		},
		"/error.htm": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	_, err := client.CloneGroup(context.Background(), "copy", 2001, 3001)
	if err == nil {
		t.Fatal("expected error when no object id can be extracted")
	}
	if !errors.Is(err, ErrIDParseFailed) {
		t.Errorf("error = %v, want ErrIDParseFailed", err)
	}
}
