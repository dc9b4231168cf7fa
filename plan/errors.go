package plan

import (
	"fmt"
	"strings"

	"github.com/confimport/confimport/object"
)

const (
	margin     = "  "
	itemPrefix = "  - "
	subPrefix  = "    - "
)

// MissingDependency is a dependency that exists neither in the configuration
// nor in the repository.
type MissingDependency struct {
	Object    object.Reference
	Reference object.Reference
}

// UnresolvedReferenceError is returned when one or more dependencies cannot
// be resolved.
type UnresolvedReferenceError struct {
	Missing []MissingDependency
}

func (e *UnresolvedReferenceError) Error() string {
	var sb strings.Builder
	sb.WriteString("Missing dependencies:")
	var last object.Reference
	for i, m := range e.Missing {
		if i == 0 || m.Object != last {
			sb.WriteString("\n" + itemPrefix + m.Object.ConsoleString())
			last = m.Object
		}
		sb.WriteString("\n" + subPrefix + m.Reference.ConsoleString())
	}
	return sb.String()
}

// MissingProperties lists the mandatory fields that are not set on an object
// that has to be created.
type MissingProperties struct {
	Object object.Reference
	Fields []string
}

// MandatoryPropertiesError is returned when objects to create are missing
// mandatory fields.
type MandatoryPropertiesError struct {
	Missing []MissingProperties
}

func (e *MandatoryPropertiesError) Error() string {
	var sb strings.Builder
	sb.WriteString("Missing properties:")
	writeFieldList(&sb, e.Missing)
	return sb.String()
}

// UnchangeableProperties lists fields of an existing object that cannot be
// changed, but differ from the desired state.
type UnchangeableProperties MissingProperties

// UnchangeableReport renders unchangeable property findings.
func UnchangeableReport(found []UnchangeableProperties) string {
	if len(found) == 0 {
		return ""
	}
	list := make([]MissingProperties, len(found))
	for i, f := range found {
		list[i] = MissingProperties(f)
	}
	var sb strings.Builder
	sb.WriteString("Unchangeable properties:")
	writeFieldList(&sb, list)
	return sb.String()
}

func writeFieldList(sb *strings.Builder, list []MissingProperties) {
	for _, m := range list {
		sb.WriteString("\n" + itemPrefix + m.Object.ConsoleString())
		for _, f := range m.Fields {
			sb.WriteString("\n" + subPrefix + f)
		}
	}
}

// DependencyCycleError is returned when a dependency cycle cannot be broken.
// Each cycle lists its members in reference order.
type DependencyCycleError struct {
	Cycles [][]object.Reference
}

func (e *DependencyCycleError) Error() string {
	var sb strings.Builder
	sb.WriteString("Could not break dependency cycle(s):")
	for _, c := range e.Cycles {
		names := make([]string, len(c))
		for i, r := range c {
			names[i] = r.ConsoleString()
		}
		sb.WriteString("\n" + itemPrefix + strings.Join(names, ", "))
	}
	return sb.String()
}

// BareCloneError is returned when an object's reduced form cannot be used to
// break a cycle.
type BareCloneError struct {
	Reference object.Reference
	Reason    string
}

func (e *BareCloneError) Error() string {
	return fmt.Sprintf("bare form of %s: %s", e.Reference.ConsoleString(), e.Reason)
}

// ApplyError is returned when applying an operation fails. Operations
// applied before the failure are not rolled back.
type ApplyError struct {
	Applied int
	Op      *Operation
	Err     error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply %s (%d applied): %v", e.Op, e.Applied, e.Err)
}

// Cause returns the underlying error.
func (e *ApplyError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *ApplyError) Unwrap() error { return e.Err }
