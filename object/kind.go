package object

import (
	"strings"

	"github.com/confimport/confimport/suggest"
	"github.com/pkg/errors"
)

// Kind is the type of a configuration object.
//
// Kinds are declared in name order, so comparing two kinds numerically gives
// the same result as comparing their names.
type Kind int

// Supported kinds. Application can only be referenced, it cannot be imported.
const (
	KindUnknown Kind = iota
	KindAgentGroup
	KindApplication
	KindDN
	KindFolder
	KindPerson
	KindPhysicalSwitch
	KindRole
	KindScript
	KindSkill
	KindSwitch
	KindTenant
)

var kindNames = [...]string{
	KindUnknown:        "Unknown",
	KindAgentGroup:     "AgentGroup",
	KindApplication:    "Application",
	KindDN:             "DN",
	KindFolder:         "Folder",
	KindPerson:         "Person",
	KindPhysicalSwitch: "PhysicalSwitch",
	KindRole:           "Role",
	KindScript:         "Script",
	KindSkill:          "Skill",
	KindSwitch:         "Switch",
	KindTenant:         "Tenant",
}

// Kinds returns all known kinds, excluding KindUnknown, in name order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindAgentGroup; k <= KindTenant; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Importable reports whether objects of the kind can be part of a
// configuration.
func (k Kind) Importable() bool {
	return k != KindUnknown && k != KindApplication && int(k) < len(kindNames)
}

// ParseKind returns the kind with the given name. Matching is
// case-insensitive.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	names := make([]string, 0, len(kindNames))
	for _, k := range Kinds() {
		names = append(names, k.String())
	}
	return KindUnknown, errors.Errorf("unknown kind %q.%s", name, suggest.Message(name, names))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
