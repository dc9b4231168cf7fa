package object

import "context"

// An AgentGroup is a named group of agents.
type AgentGroup struct {
	Tenant       string   `json:"tenant" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Agents       []string `json:"agents,omitempty"`
	Managers     []string `json:"managers,omitempty"`
	CapacityRule string   `json:"capacityRule,omitempty"`
	RouteDNs     []DNKey  `json:"routeDNs,omitempty" validate:"dive"`
	Common
}

// Reference implements Object.
func (g *AgentGroup) Reference() Reference { return AgentGroupRef(g.Tenant, g.Name) }

// Dependencies implements Object. Agents and managers are employee ids.
func (g *AgentGroup) Dependencies() []Reference {
	s := refSet{}
	s.add(TenantRef(g.Tenant))
	s.add(tenantRefs(g.Tenant, g.Agents, PersonRef)...)
	s.add(tenantRefs(g.Tenant, g.Managers, PersonRef)...)
	if g.CapacityRule != "" {
		s.add(ScriptRef(g.Tenant, g.CapacityRule))
	}
	s.add(dnRefs(g.Tenant, g.RouteDNs)...)
	g.Common.dependencies(s)
	return s.sorted()
}

// MandatoryProperties implements Object.
func (g *AgentGroup) MandatoryProperties() []string { return nil }

// UnchangeableProperties implements Object.
func (g *AgentGroup) UnchangeableProperties(*Record) []string { return nil }

// CloneBare implements Object.
func (g *AgentGroup) CloneBare() Object { return &AgentGroup{Tenant: g.Tenant, Name: g.Name} }

// Create implements Object.
func (g *AgentGroup) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, g)
}

// Update implements Object.
func (g *AgentGroup) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, g, existing)
}

func (g *AgentGroup) fill(b *recordBuilder) {
	b.set("name", g.Name)
	b.ref("tenant", TenantRef(g.Tenant))
	b.refs("agents", tenantRefs(g.Tenant, g.Agents, PersonRef))
	b.refs("managers", tenantRefs(g.Tenant, g.Managers, PersonRef))
	if g.CapacityRule != "" {
		b.ref("capacityRule", ScriptRef(g.Tenant, g.CapacityRule))
	}
	b.refs("routeDNs", dnRefs(g.Tenant, g.RouteDNs))
	g.Common.fill(b)
}
