package object

import "fmt"

// DuplicateReferenceError is returned when two objects in a configuration
// share the same reference.
type DuplicateReferenceError struct {
	Reference Reference
}

func (e *DuplicateReferenceError) Error() string {
	return fmt.Sprintf("duplicate object %s", e.Reference.ConsoleString())
}

// SelfDependencyError is returned when an object depends on itself.
type SelfDependencyError struct {
	Reference Reference
}

func (e *SelfDependencyError) Error() string {
	return fmt.Sprintf("%s depends on itself", e.Reference.ConsoleString())
}

// UnresolvedIDError is returned when an object is materialized while one of
// its references does not exist in the backend.
type UnresolvedIDError struct {
	Field     string
	Reference Reference
}

func (e *UnresolvedIDError) Error() string {
	return fmt.Sprintf("resolve %s: %s not found", e.Field, e.Reference.ConsoleString())
}
