package object

import "context"

// A Person is a user or agent of a tenant, identified by employee id.
type Person struct {
	Tenant       string         `json:"tenant" validate:"required"`
	EmployeeID   string         `json:"employeeId" validate:"required"`
	UserName     string         `json:"userName,omitempty"`
	ExternalID   string         `json:"externalId,omitempty"`
	FirstName    string         `json:"firstName,omitempty"`
	LastName     string         `json:"lastName,omitempty"`
	EmailAddress string         `json:"emailAddress,omitempty" validate:"omitempty,email"`
	Password     string         `json:"password,omitempty"`
	Agent        *bool          `json:"agent,omitempty"`
	Skills       map[string]int `json:"skills,omitempty"`
	Common
}

// Reference implements Object.
func (p *Person) Reference() Reference { return PersonRef(p.Tenant, p.EmployeeID) }

// Dependencies implements Object.
func (p *Person) Dependencies() []Reference {
	s := refSet{}
	s.add(TenantRef(p.Tenant))
	for skill := range p.Skills {
		s.add(SkillRef(p.Tenant, skill))
	}
	p.Common.dependencies(s)
	return s.sorted()
}

// MandatoryProperties implements Object.
func (p *Person) MandatoryProperties() []string {
	var out []string
	if p.UserName == "" {
		out = append(out, "userName")
	}
	return out
}

// UnchangeableProperties implements Object.
func (p *Person) UnchangeableProperties(*Record) []string { return nil }

// CloneBare implements Object.
func (p *Person) CloneBare() Object {
	return &Person{Tenant: p.Tenant, EmployeeID: p.EmployeeID, UserName: p.UserName}
}

// Create implements Object.
func (p *Person) Create(ctx context.Context, ids IDResolver) (*Record, error) {
	return create(ctx, ids, p)
}

// Update implements Object.
func (p *Person) Update(ctx context.Context, ids IDResolver, existing *Record) (*Record, error) {
	return update(ctx, ids, p, existing)
}

func (p *Person) fill(b *recordBuilder) {
	b.set("employeeId", p.EmployeeID)
	b.ref("tenant", TenantRef(p.Tenant))
	b.set("userName", p.UserName)
	b.set("externalId", p.ExternalID)
	b.set("firstName", p.FirstName)
	b.set("lastName", p.LastName)
	b.set("emailAddress", p.EmailAddress)
	b.set("password", p.Password)
	b.set("agent", p.Agent)
	if len(p.Skills) > 0 {
		levels := make(map[string]interface{}, len(p.Skills))
		for skill, level := range p.Skills {
			id, ok := b.resolve("skills", SkillRef(p.Tenant, skill))
			if !ok {
				return
			}
			levels[skill] = map[string]interface{}{"skillDBID": id, "level": level}
		}
		b.set("skillLevels", levels)
	}
	p.Common.fill(b)
}
