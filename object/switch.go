package object

import "context"

// A Switch is a tenant's view of a physical switch.
type Switch struct {
	Tenant            string   `json:"tenant" validate:"required"`
	Name              string   `json:"name" validate:"required"`
	PhysicalSwitch    string   `json:"physicalSwitch,omitempty"`
	TServer           string   `json:"tServer,omitempty"`
	LinkType          string   `json:"linkType,omitempty"`
	DNRange           string   `json:"dnRange,omitempty"`
	SwitchAccessCodes []string `json:"switchAccessCodes,omitempty"`
	Common
}

// Reference implements Object.
func (s *Switch) Reference() Reference { return SwitchRef(s.Tenant, s.Name) }

// Dependencies implements Object.
func (s *Switch) Dependencies() []Reference {
	set := refSet{}
	set.add(TenantRef(s.Tenant))
	if s.PhysicalSwitch != "" {
		set.add(PhysicalSwitchRef(s.PhysicalSwitch))
	}
	if s.TServer != "" {
		set.add(ApplicationRef(s.TServer))
	}
	set.add(tenantRefs(s.Tenant, s.SwitchAccessCodes, SwitchRef)...)
	s.Common.dependencies(set)
	return set.sorted()
}

// MandatoryProperties implements Object.
func (s *Switch) MandatoryProperties() []string {
	var out []string
	if s.PhysicalSwitch == "" {
		out = append(out, "physicalSwitch")
	}
	return out
}

// UnchangeableProperties implements Object.
func (s *Switch) UnchangeableProperties(existing *Record) []string {
	var out []string
	if s.PhysicalSwitch != "" && changed(existing, "physicalSwitch", PhysicalSwitchRef(s.PhysicalSwitch).String()) {
		out = append(out, "physicalSwitch")
	}
	return out
}

// CloneBare implements Object.
func (s *Switch) CloneBare() Object {
	return &Switch{Tenant: s.Tenant, Name: s.Name, PhysicalSwitch: s.PhysicalSwitch}
}

// Create implements Object.
func (s *Switch) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, s)
}

// Update implements Object.
func (s *Switch) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, s, existing)
}

func (s *Switch) fill(b *recordBuilder) {
	b.set("name", s.Name)
	b.ref("tenant", TenantRef(s.Tenant))
	if s.PhysicalSwitch != "" {
		b.ref("physicalSwitch", PhysicalSwitchRef(s.PhysicalSwitch))
	}
	if s.TServer != "" {
		b.ref("tServer", ApplicationRef(s.TServer))
	}
	b.set("linkType", s.LinkType)
	b.set("dnRange", s.DNRange)
	b.refs("switchAccessCodes", tenantRefs(s.Tenant, s.SwitchAccessCodes, SwitchRef))
	s.Common.fill(b)
}
