package object

import (
	"context"
	"fmt"
	"reflect"
)

// A Record is the backend representation of a configuration object.
type Record struct {
	Ref    Reference              `json:"ref"`
	ID     int64                  `json:"id,omitempty"`
	Fields map[string]interface{} `json:"fields"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	return &Record{Ref: r.Ref, ID: r.ID, Fields: cloneValue(r.Fields).(map[string]interface{})}
}

func cloneValue(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		if v == nil {
			return map[string]interface{}(nil)
		}
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			out[k] = cloneValue(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, val := range v {
			out[i] = cloneValue(val)
		}
		return out
	case []int64:
		return append([]int64(nil), v...)
	case []string:
		return append([]string(nil), v...)
	default:
		return v
	}
}

// Field returns the value of a field formatted as a string, and whether it
// is set.
func (r *Record) Field(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.Fields[name]
	if !ok || v == nil {
		return "", false
	}
	return fmt.Sprint(v), true
}

// recordBuilder writes object fields into a record. Unset values are skipped
// so that updates only overwrite what the object specifies. The first
// resolution error is kept and returned by done.
type recordBuilder struct {
	ctx context.Context
	ids IDResolver
	rec *Record
	err error
}

func newRecordBuilder(ctx context.Context, ids IDResolver, rec *Record) *recordBuilder {
	return &recordBuilder{ctx: ctx, ids: ids, rec: rec}
}

func (b *recordBuilder) set(name string, v interface{}) {
	if isZero(v) {
		return
	}
	switch v := v.(type) {
	case *bool:
		b.rec.Fields[name] = *v
	case *int:
		b.rec.Fields[name] = *v
	default:
		b.rec.Fields[name] = v
	}
}

func (b *recordBuilder) resolve(field string, ref Reference) (int64, bool) {
	if b.err != nil {
		return 0, false
	}
	id, ok, err := b.ids.ResolveID(b.ctx, ref)
	if err != nil {
		b.err = err
		return 0, false
	}
	if !ok {
		b.err = &UnresolvedIDError{Field: field, Reference: ref}
		return 0, false
	}
	return id, true
}

// ref stores the key of a referenced object along with its backend id, as
// name and nameDBID.
func (b *recordBuilder) ref(name string, ref Reference) {
	if ref.Name == "" {
		return
	}
	id, ok := b.resolve(name, ref)
	if !ok {
		return
	}
	b.rec.Fields[name] = ref.String()
	b.rec.Fields[name+"DBID"] = id
}

func (b *recordBuilder) refs(name string, refs []Reference) {
	if len(refs) == 0 {
		return
	}
	keys := make([]string, 0, len(refs))
	ids := make([]int64, 0, len(refs))
	for _, r := range refs {
		id, ok := b.resolve(name, r)
		if !ok {
			return
		}
		keys = append(keys, r.String())
		ids = append(ids, id)
	}
	b.rec.Fields[name] = keys
	b.rec.Fields[name+"DBIDs"] = ids
}

func (b *recordBuilder) done() (*Record, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.rec, nil
}

func isZero(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Map, reflect.Slice:
		return rv.Len() == 0
	case reflect.String:
		return rv.Len() == 0
	default:
		return false
	}
}

// changed reports whether want is set and differs from the existing value
// of the named field.
func changed(existing *Record, name, want string) bool {
	if want == "" {
		return false
	}
	got, ok := existing.Field(name)
	return ok && got != want
}
