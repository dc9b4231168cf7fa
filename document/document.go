// Package document decodes configuration documents.
//
// A document is a JSON or YAML object with one list per kind of object:
//
//	{
//	  "__metadata__": {"author": "ops"},
//	  "tenants": [{"name": "t1"}],
//	  "skills": [{"tenant": "t1", "name": "french"}]
//	}
//
// Before decoding, ${name} expressions are replaced with the value of the
// named variable. A literal ${ is written as $${.
package document

import (
	"github.com/confimport/confimport/object"
)

// A Document is the decoded content of a single file.
type Document struct {
	Metadata map[string]interface{} `json:"__metadata__,omitempty"`

	Tenants          []*object.Tenant         `json:"tenants,omitempty" validate:"dive,required"`
	Folders          []*object.Folder         `json:"folders,omitempty" validate:"dive,required"`
	PhysicalSwitches []*object.PhysicalSwitch `json:"physicalSwitches,omitempty" validate:"dive,required"`
	Switches         []*object.Switch         `json:"switches,omitempty" validate:"dive,required"`
	DNs              []*object.DN             `json:"dns,omitempty" validate:"dive,required"`
	Scripts          []*object.Script         `json:"scripts,omitempty" validate:"dive,required"`
	Persons          []*object.Person         `json:"persons,omitempty" validate:"dive,required"`
	Skills           []*object.Skill          `json:"skills,omitempty" validate:"dive,required"`
	Roles            []*object.Role           `json:"roles,omitempty" validate:"dive,required"`
	AgentGroups      []*object.AgentGroup     `json:"agentGroups,omitempty" validate:"dive,required"`
}

const metadataKey = "__metadata__"

// Sections are the top-level keys holding objects, in decoding order.
var Sections = []string{
	"tenants",
	"folders",
	"physicalSwitches",
	"switches",
	"dns",
	"scripts",
	"persons",
	"skills",
	"roles",
	"agentGroups",
}

// Objects returns the objects of the document in section order.
func (d *Document) Objects() []object.Object {
	var out []object.Object
	for _, o := range d.Tenants {
		out = append(out, o)
	}
	for _, o := range d.Folders {
		out = append(out, o)
	}
	for _, o := range d.PhysicalSwitches {
		out = append(out, o)
	}
	for _, o := range d.Switches {
		out = append(out, o)
	}
	for _, o := range d.DNs {
		out = append(out, o)
	}
	for _, o := range d.Scripts {
		out = append(out, o)
	}
	for _, o := range d.Persons {
		out = append(out, o)
	}
	for _, o := range d.Skills {
		out = append(out, o)
	}
	for _, o := range d.Roles {
		out = append(out, o)
	}
	for _, o := range d.AgentGroups {
		out = append(out, o)
	}
	return out
}

// Len returns the number of objects in the document.
func (d *Document) Len() int {
	return len(d.Tenants) + len(d.Folders) + len(d.PhysicalSwitches) +
		len(d.Switches) + len(d.DNs) + len(d.Scripts) + len(d.Persons) +
		len(d.Skills) + len(d.Roles) + len(d.AgentGroups)
}
