package object

import "context"

// A PhysicalSwitch is a telephony switch shared across tenants.
type PhysicalSwitch struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type,omitempty"`
	Common
}

// Reference implements Object.
func (p *PhysicalSwitch) Reference() Reference { return PhysicalSwitchRef(p.Name) }

// Dependencies implements Object.
func (p *PhysicalSwitch) Dependencies() []Reference {
	s := refSet{}
	p.Common.dependencies(s)
	return s.sorted()
}

// MandatoryProperties implements Object.
func (p *PhysicalSwitch) MandatoryProperties() []string {
	var out []string
	if p.Type == "" {
		out = append(out, "type")
	}
	return out
}

// UnchangeableProperties implements Object.
func (p *PhysicalSwitch) UnchangeableProperties(existing *Record) []string {
	var out []string
	if changed(existing, "type", p.Type) {
		out = append(out, "type")
	}
	return out
}

// CloneBare implements Object. Physical switches only refer to folders.
func (p *PhysicalSwitch) CloneBare() Object { return nil }

// Create implements Object.
func (p *PhysicalSwitch) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, p)
}

// Update implements Object.
func (p *PhysicalSwitch) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, p, existing)
}

func (p *PhysicalSwitch) fill(b *recordBuilder) {
	b.set("name", p.Name)
	b.set("type", p.Type)
	p.Common.fill(b)
}
