package object

import "context"

// A Tenant is the top level of the configuration hierarchy.
type Tenant struct {
	Name                string `json:"name" validate:"required"`
	ChargeableNumber    string `json:"chargeableNumber,omitempty"`
	DefaultCapacityRule string `json:"defaultCapacityRule,omitempty"`
	ParentTenant        string `json:"parentTenant,omitempty"`
	Password            string `json:"password,omitempty"`
	Common
}

// Reference implements Object.
func (t *Tenant) Reference() Reference { return TenantRef(t.Name) }

// Dependencies implements Object. The default capacity rule is a script in
// the tenant itself.
func (t *Tenant) Dependencies() []Reference {
	s := refSet{}
	if t.DefaultCapacityRule != "" {
		s.add(ScriptRef(t.Name, t.DefaultCapacityRule))
	}
	if t.ParentTenant != "" {
		s.add(TenantRef(t.ParentTenant))
	}
	t.Common.dependencies(s)
	return s.sorted()
}

// MandatoryProperties implements Object.
func (t *Tenant) MandatoryProperties() []string { return nil }

// UnchangeableProperties implements Object.
func (t *Tenant) UnchangeableProperties(*Record) []string { return nil }

// CloneBare implements Object.
func (t *Tenant) CloneBare() Object { return &Tenant{Name: t.Name} }

// Create implements Object.
func (t *Tenant) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, t)
}

// Update implements Object.
func (t *Tenant) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, t, existing)
}

func (t *Tenant) fill(b *recordBuilder) {
	b.set("name", t.Name)
	b.set("chargeableNumber", t.ChargeableNumber)
	b.set("password", t.Password)
	if t.DefaultCapacityRule != "" {
		b.ref("defaultCapacityRule", ScriptRef(t.Name, t.DefaultCapacityRule))
	}
	if t.ParentTenant != "" {
		b.ref("parentTenant", TenantRef(t.ParentTenant))
	}
	t.Common.fill(b)
}
