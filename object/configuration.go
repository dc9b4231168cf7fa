package object

import (
	"sort"

	"go.uber.org/multierr"
)

// A Configuration is a set of objects, uniquely keyed by reference.
type Configuration struct {
	objects map[Reference]Object
	sorted  []Object
}

// NewConfiguration creates a configuration from the given objects. Nil
// objects are ignored.
//
// An error is returned if two objects have the same reference, or if an
// object depends on itself. All violations are reported.
func NewConfiguration(objs ...Object) (*Configuration, error) {
	c := &Configuration{objects: make(map[Reference]Object, len(objs))}
	var errs error
	for _, o := range objs {
		if o == nil {
			continue
		}
		ref := o.Reference()
		if _, ok := c.objects[ref]; ok {
			errs = multierr.Append(errs, &DuplicateReferenceError{Reference: ref})
			continue
		}
		for _, dep := range o.Dependencies() {
			if dep == ref {
				errs = multierr.Append(errs, &SelfDependencyError{Reference: ref})
				break
			}
		}
		c.objects[ref] = o
		c.sorted = append(c.sorted, o)
	}
	if errs != nil {
		return nil, errs
	}
	sort.Slice(c.sorted, func(i, j int) bool {
		return c.sorted[i].Reference().Less(c.sorted[j].Reference())
	})
	return c, nil
}

// Get returns the object with the given reference, or nil.
func (c *Configuration) Get(ref Reference) Object {
	return c.objects[ref]
}

// Has reports whether the configuration contains the reference.
func (c *Configuration) Has(ref Reference) bool {
	_, ok := c.objects[ref]
	return ok
}

// Objects returns all objects, sorted by reference. The returned slice must
// not be modified.
func (c *Configuration) Objects() []Object {
	return c.sorted
}

// Len returns the number of objects.
func (c *Configuration) Len() int {
	return len(c.sorted)
}
