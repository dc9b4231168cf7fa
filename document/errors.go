package document

import (
	"fmt"

	"github.com/confimport/confimport/suggest"
)

// UndefinedVariableError is returned when a document refers to a variable
// that has no value.
type UndefinedVariableError struct {
	Name   string
	File   string
	Line   int
	Column int
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("%s:%d,%d: undefined variable %q", e.File, e.Line, e.Column, e.Name)
}

// UnknownSectionError is returned for a top-level key that is not a known
// section.
type UnknownSectionError struct {
	File    string
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("%s: unknown section %q.%s", e.File, e.Section, suggest.Message(e.Section, Sections))
}

// A FieldError reports a field that failed validation.
type FieldError struct {
	File  string
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	if e.Tag == "required" {
		return fmt.Sprintf("%s: %s is required", e.File, e.Field)
	}
	return fmt.Sprintf("%s: %s must be a valid %s", e.File, e.Field, e.Tag)
}
