package object

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// A Reference identifies a single configuration object. References are
// comparable and can be used as map keys.
//
// Which fields are set depends on the kind:
//
//	Tenant, PhysicalSwitch, Application  Name
//	Switch, Script, Skill, Role, ...     Tenant, Name
//	Person                               Tenant, Name (employee id)
//	DN                                   Tenant, Parent (switch), Type, Name (number)
//	Folder                               Tenant (owner's), Parent (owner), Type, Name (path)
type Reference struct {
	Kind   Kind   `json:"kind"`
	Tenant string `json:"tenant,omitempty"`
	Parent string `json:"parent,omitempty"`
	Type   string `json:"type,omitempty"`
	Name   string `json:"name"`
}

// TenantRef returns a reference to a tenant.
func TenantRef(name string) Reference { return Reference{Kind: KindTenant, Name: name} }

// PhysicalSwitchRef returns a reference to a physical switch.
func PhysicalSwitchRef(name string) Reference {
	return Reference{Kind: KindPhysicalSwitch, Name: name}
}

// ApplicationRef returns a reference to an application.
func ApplicationRef(name string) Reference { return Reference{Kind: KindApplication, Name: name} }

// SwitchRef returns a reference to a switch in a tenant.
func SwitchRef(tenant, name string) Reference {
	return Reference{Kind: KindSwitch, Tenant: tenant, Name: name}
}

// ScriptRef returns a reference to a script in a tenant.
func ScriptRef(tenant, name string) Reference {
	return Reference{Kind: KindScript, Tenant: tenant, Name: name}
}

// SkillRef returns a reference to a skill in a tenant.
func SkillRef(tenant, name string) Reference {
	return Reference{Kind: KindSkill, Tenant: tenant, Name: name}
}

// RoleRef returns a reference to a role in a tenant.
func RoleRef(tenant, name string) Reference {
	return Reference{Kind: KindRole, Tenant: tenant, Name: name}
}

// AgentGroupRef returns a reference to an agent group in a tenant.
func AgentGroupRef(tenant, name string) Reference {
	return Reference{Kind: KindAgentGroup, Tenant: tenant, Name: name}
}

// PersonRef returns a reference to a person, identified by employee id.
func PersonRef(tenant, employeeID string) Reference {
	return Reference{Kind: KindPerson, Tenant: tenant, Name: employeeID}
}

// DNRef returns a reference to a DN on a switch.
func DNRef(tenant, switchName, number, dnType string) Reference {
	return Reference{Kind: KindDN, Tenant: tenant, Parent: switchName, Type: dnType, Name: number}
}

// IsZero reports whether the reference is unset.
func (r Reference) IsZero() bool { return r == Reference{} }

// Compare returns -1, 0 or 1 depending on whether r sorts before, equal to
// or after other. References are ordered by kind name first.
func (r Reference) Compare(other Reference) int {
	if r.Kind != other.Kind {
		if r.Kind < other.Kind {
			return -1
		}
		return 1
	}
	for _, p := range [...][2]string{
		{r.Tenant, other.Tenant},
		{r.Parent, other.Parent},
		{r.Type, other.Type},
		{r.Name, other.Name},
	} {
		if c := strings.Compare(p[0], p[1]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether r sorts before other.
func (r Reference) Less(other Reference) bool { return r.Compare(other) < 0 }

// String returns the natural key of the referenced object.
func (r Reference) String() string {
	switch r.Kind {
	case KindTenant, KindPhysicalSwitch, KindApplication:
		return r.Name
	case KindDN:
		return fmt.Sprintf("%s/%s/%s (%s)", r.Tenant, r.Parent, r.Name, r.Type)
	case KindFolder:
		owner := r.Parent
		if r.Tenant != "" {
			owner = r.Tenant + "/" + owner
		}
		return fmt.Sprintf("%s:%s:%s", owner, r.Type, r.Name)
	default:
		return r.Tenant + "/" + r.Name
	}
}

// ConsoleString returns the kind and key, as shown in plans.
func (r Reference) ConsoleString() string {
	return fmt.Sprintf("%s [%s]", r.Kind, r.String())
}

// Key returns a key that uniquely identifies the reference within its kind.
// The key never contains a slash.
func (r Reference) Key() string {
	parts := [...]string{r.Tenant, r.Parent, r.Type, r.Name}
	for i, p := range parts {
		parts[i] = url.QueryEscape(p)
	}
	return strings.Join(parts[:], ":")
}

// SortReferences sorts refs in place.
func SortReferences(refs []Reference) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
}

// refSet collects dependencies. Zero-valued names are ignored so that unset
// optional references can be added unconditionally.
type refSet map[Reference]struct{}

func (s refSet) add(refs ...Reference) {
	for _, r := range refs {
		if r.Name == "" {
			continue
		}
		s[r] = struct{}{}
	}
}

func (s refSet) sorted() []Reference {
	out := make([]Reference, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	SortReferences(out)
	return out
}
