package object

import "context"

// A Role grants privileges to its members.
type Role struct {
	Tenant      string   `json:"tenant" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members,omitempty"`
	Common
}

// Reference implements Object.
func (r *Role) Reference() Reference { return RoleRef(r.Tenant, r.Name) }

// Dependencies implements Object. Members are employee ids.
func (r *Role) Dependencies() []Reference {
	s := refSet{}
	s.add(TenantRef(r.Tenant))
	s.add(tenantRefs(r.Tenant, r.Members, PersonRef)...)
	r.Common.dependencies(s)
	return s.sorted()
}

// MandatoryProperties implements Object.
func (r *Role) MandatoryProperties() []string { return nil }

// UnchangeableProperties implements Object.
func (r *Role) UnchangeableProperties(*Record) []string { return nil }

// CloneBare implements Object.
func (r *Role) CloneBare() Object { return &Role{Tenant: r.Tenant, Name: r.Name} }

// Create implements Object.
func (r *Role) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, r)
}

// Update implements Object.
func (r *Role) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, r, existing)
}

func (r *Role) fill(b *recordBuilder) {
	b.set("name", r.Name)
	b.ref("tenant", TenantRef(r.Tenant))
	b.set("description", r.Description)
	b.refs("members", tenantRefs(r.Tenant, r.Members, PersonRef))
	r.Common.fill(b)
}
