package prtg

import "github.com/cockroachdb/errors"

// Entity is one monitored object as returned by the PRTG table API: a
// schemaless field map keyed by column name. Records are read-only
// snapshots; which fields are present depends on the columns the query
// requested.
//
// Identity is the server-assigned objid. Everything else, including the
// name, can collide between objects.
type Entity map[string]any

// ObjID returns the server-assigned object id, or 0 when the field is
// absent.
func (e Entity) ObjID() int {
	return e.intField("objid")
}

// Name returns the object name, or "" when absent.
func (e Entity) Name() string {
	return e.stringField("name")
}

// ParentID returns the id of the parent object, or 0 when absent.
// Probes report parent id 0; they hang directly off the root group.
func (e Entity) ParentID() int {
	return e.intField("parentid")
}

// Host returns the device address field, or "" for objects without one.
func (e Entity) Host() string {
	return e.stringField("host")
}

// Status returns the display status, e.g. "Up", "Down", "Paused".
func (e Entity) Status() string {
	return e.stringField("status")
}

// Tags returns the space-separated tag list.
func (e Entity) Tags() string {
	return e.stringField("tags")
}

// Priority returns the object priority (1-5), or 0 when absent.
func (e Entity) Priority() int {
	return e.intField("priority")
}

// Active reports whether the object is not paused. The table API encodes
// the column differently depending on query flags, so all known shapes are
// accepted.
func (e Entity) Active() bool {
	switch v := e["active"].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v == "true" || v == "True"
	default:
		return false
	}
}

// intField reads a numeric column. JSON numbers decode as float64, hence
// the double type switch.
func (e Entity) intField(key string) int {
	switch v := e[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (e Entity) stringField(key string) string {
	s, _ := e[key].(string)

	return s
}

// exactlyOne enforces the contract of by-name lookups that promise a
// single record.
func exactlyOne(records []Entity, kind string) (Entity, error) {
	switch len(records) {
	case 0:
		return nil, errors.Wrapf(ErrObjectNotFound, "no %s with matching name", kind)
	case 1:
		return records[0], nil
	default:
		return nil, errors.Wrapf(ErrDuplicateObject, "multiple %ss with same name", kind)
	}
}

// firstRecord unwraps an id lookup, which matches at most one record.
func firstRecord(records []Entity, kind string) (Entity, error) {
	if len(records) == 0 {
		return nil, errors.Wrapf(ErrObjectNotFound, "no %s with matching id", kind)
	}
	return records[0], nil
}
