// Package object contains the configuration objects that can be imported,
// and the references used to identify them.
package object

import (
	"context"
	"strings"
)

// An Object is a single desired-state configuration object.
//
// The set of implementations is closed; it is implemented by the kinds in
// this package only.
type Object interface {
	// Reference returns the identity of the object.
	Reference() Reference

	// Dependencies returns every object that must exist before the object can
	// be created or updated, sorted. The object's own reference is never
	// included for valid objects.
	Dependencies() []Reference

	// MandatoryProperties returns the names of fields that must be set before
	// the object can be created.
	MandatoryProperties() []string

	// UnchangeableProperties returns the names of fields that are set on the
	// object, differ from existing and cannot be changed after creation.
	UnchangeableProperties(existing *Record) []string

	// CloneBare returns a reduced copy of the object that only contains its
	// identity and the fields required for creation. Returns nil if the kind
	// has no reduced form.
	CloneBare() Object

	// Create materializes the object as a new record.
	Create(ctx context.Context, ids IDResolver) (*Record, error)

	// Update materializes the object on top of an existing record. The
	// existing record is not modified.
	Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error)

	fill(b *recordBuilder)
}

// An IDResolver resolves references to backend identifiers.
type IDResolver interface {
	// ResolveID returns the identifier for the given reference. If the
	// referenced object does not exist, ok is false.
	ResolveID(ctx context.Context, ref Reference) (id int64, ok bool, err error)
}

// Common contains the fields shared by most kinds.
type Common struct {
	State          string         `json:"state,omitempty"`
	UserProperties UserProperties `json:"userProperties,omitempty"`
	Folder         *FolderRef     `json:"folder,omitempty"`
}

func (c Common) dependencies(s refSet) {
	if c.Folder != nil {
		s.add(c.Folder.Reference())
	}
}

func (c Common) fill(b *recordBuilder) {
	b.set("state", c.State)
	if len(c.UserProperties) > 0 {
		b.set("userProperties", c.UserProperties.clone())
	}
	if c.Folder != nil {
		b.ref("folder", c.Folder.Reference())
	}
}

// UserProperties is a free-form set of sections, each holding key-value
// pairs.
type UserProperties map[string]map[string]interface{}

func (u UserProperties) clone() map[string]interface{} {
	out := make(map[string]interface{}, len(u))
	for section, kv := range u {
		m := make(map[string]interface{}, len(kv))
		for k, v := range kv {
			m[k] = v
		}
		out[section] = m
	}
	return out
}

// A FolderRef points to a folder by its owner and path.
type FolderRef struct {
	Type  string   `json:"type" validate:"required"`
	Owner Owner    `json:"owner"`
	Path  []string `json:"path,omitempty"`
}

// Owner is the object that owns a folder hierarchy.
type Owner struct {
	Type   string `json:"type" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Tenant string `json:"tenant,omitempty"`
}

// Reference returns the reference to the folder. A folder reference with an
// empty path points to the owner's root, which always exists, and has an
// empty name.
func (f FolderRef) Reference() Reference {
	return Reference{
		Kind:   KindFolder,
		Tenant: f.Owner.Tenant,
		Parent: f.Owner.Type + "/" + f.Owner.Name,
		Type:   f.Type,
		Name:   strings.Join(f.Path, "/"),
	}
}

// A DNKey identifies a DN within the tenant of the object referring to it.
type DNKey struct {
	Switch string `json:"switch" validate:"required"`
	Number string `json:"number" validate:"required"`
	Type   string `json:"type" validate:"required"`
}

func dnRefs(tenant string, keys []DNKey) []Reference {
	out := make([]Reference, len(keys))
	for i, k := range keys {
		out[i] = DNRef(tenant, k.Switch, k.Number, k.Type)
	}
	return out
}

func tenantRefs(tenant string, names []string, ref func(tenant, name string) Reference) []Reference {
	out := make([]Reference, len(names))
	for i, n := range names {
		out[i] = ref(tenant, n)
	}
	return out
}

func create(ctx context.Context, ids IDResolver, o Object) (*Record, error) {
	rec := &Record{Ref: o.Reference(), Fields: make(map[string]interface{})}
	b := newRecordBuilder(ctx, ids, rec)
	o.fill(b)
	return b.done()
}

func update(ctx context.Context, ids IDResolver, o Object, existing *Record) (*Record, error) {
	if existing == nil {
		return nil, &UnresolvedIDError{Field: "self", Reference: o.Reference()}
	}
	rec := existing.Clone()
	if rec.Fields == nil {
		rec.Fields = make(map[string]interface{})
	}
	b := newRecordBuilder(ctx, ids, rec)
	o.fill(b)
	return b.done()
}
