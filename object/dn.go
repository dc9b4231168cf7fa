package object

import "context"

// A DN is a directory number on a switch.
type DN struct {
	Tenant         string  `json:"tenant" validate:"required"`
	Switch         string  `json:"switch" validate:"required"`
	Number         string  `json:"number" validate:"required"`
	Type           string  `json:"type" validate:"required"`
	Name           string  `json:"name,omitempty"`
	RouteType      string  `json:"routeType,omitempty"`
	Association    string  `json:"association,omitempty"`
	RegisterAll    string  `json:"registerAll,omitempty"`
	DestinationDNs []DNKey `json:"destinationDNs,omitempty" validate:"dive"`
	Group          string  `json:"group,omitempty"`
	Common
}

// Reference implements Object.
func (d *DN) Reference() Reference { return DNRef(d.Tenant, d.Switch, d.Number, d.Type) }

// Dependencies implements Object.
func (d *DN) Dependencies() []Reference {
	s := refSet{}
	s.add(TenantRef(d.Tenant), SwitchRef(d.Tenant, d.Switch))
	s.add(dnRefs(d.Tenant, d.DestinationDNs)...)
	if d.Group != "" {
		s.add(AgentGroupRef(d.Tenant, d.Group))
	}
	d.Common.dependencies(s)
	return s.sorted()
}

// MandatoryProperties implements Object.
func (d *DN) MandatoryProperties() []string {
	var out []string
	if d.RouteType == "" {
		out = append(out, "routeType")
	}
	return out
}

// UnchangeableProperties implements Object. The switch, number and type of a
// DN are part of its identity.
func (d *DN) UnchangeableProperties(*Record) []string { return nil }

// CloneBare implements Object.
func (d *DN) CloneBare() Object {
	return &DN{Tenant: d.Tenant, Switch: d.Switch, Number: d.Number, Type: d.Type, RouteType: d.RouteType}
}

// Create implements Object.
func (d *DN) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, d)
}

// Update implements Object.
func (d *DN) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, d, existing)
}

func (d *DN) fill(b *recordBuilder) {
	b.set("number", d.Number)
	b.set("type", d.Type)
	b.set("name", d.Name)
	b.ref("tenant", TenantRef(d.Tenant))
	b.ref("switch", SwitchRef(d.Tenant, d.Switch))
	b.set("routeType", d.RouteType)
	b.set("association", d.Association)
	b.set("registerAll", d.RegisterAll)
	b.refs("destinationDNs", dnRefs(d.Tenant, d.DestinationDNs))
	if d.Group != "" {
		b.ref("group", AgentGroupRef(d.Tenant, d.Group))
	}
	d.Common.fill(b)
}
