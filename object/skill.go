package object

import "context"

// A Skill can be assigned to persons with a level.
type Skill struct {
	Tenant string `json:"tenant" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Common
}

// Reference implements Object.
func (s *Skill) Reference() Reference { return SkillRef(s.Tenant, s.Name) }

// Dependencies implements Object.
func (s *Skill) Dependencies() []Reference {
	set := refSet{}
	set.add(TenantRef(s.Tenant))
	s.Common.dependencies(set)
	return set.sorted()
}

// MandatoryProperties implements Object.
func (s *Skill) MandatoryProperties() []string { return nil }

// UnchangeableProperties implements Object.
func (s *Skill) UnchangeableProperties(*Record) []string { return nil }

// CloneBare implements Object.
func (s *Skill) CloneBare() Object { return nil }

// Create implements Object.
func (s *Skill) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, s)
}

// Update implements Object.
func (s *Skill) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, s, existing)
}

func (s *Skill) fill(b *recordBuilder) {
	b.set("name", s.Name)
	b.ref("tenant", TenantRef(s.Tenant))
	s.Common.fill(b)
}
