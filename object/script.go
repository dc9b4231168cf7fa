package object

import "context"

// A Script is a routing strategy, capacity rule or other executable object.
type Script struct {
	Tenant string `json:"tenant" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type,omitempty"`
	Index  *int   `json:"index,omitempty"`
	Common
}

// Reference implements Object.
func (s *Script) Reference() Reference { return ScriptRef(s.Tenant, s.Name) }

// Dependencies implements Object.
func (s *Script) Dependencies() []Reference {
	set := refSet{}
	set.add(TenantRef(s.Tenant))
	s.Common.dependencies(set)
	return set.sorted()
}

// MandatoryProperties implements Object.
func (s *Script) MandatoryProperties() []string {
	var out []string
	if s.Type == "" {
		out = append(out, "type")
	}
	return out
}

// UnchangeableProperties implements Object.
func (s *Script) UnchangeableProperties(existing *Record) []string {
	var out []string
	if changed(existing, "type", s.Type) {
		out = append(out, "type")
	}
	return out
}

// CloneBare implements Object. Scripts only refer to their tenant and
// folder.
func (s *Script) CloneBare() Object { return nil }

// Create implements Object.
func (s *Script) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, s)
}

// Update implements Object.
func (s *Script) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, s, existing)
}

func (s *Script) fill(b *recordBuilder) {
	b.set("name", s.Name)
	b.ref("tenant", TenantRef(s.Tenant))
	b.set("type", s.Type)
	b.set("index", s.Index)
	s.Common.fill(b)
}
