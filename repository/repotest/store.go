// Package repotest provides an in-memory repository for tests.
package repotest

import (
	"context"
	"fmt"
	"sync"

	"github.com/confimport/confimport/object"
	"github.com/google/go-cmp/cmp"
)

// Store is a repository that keeps all records in memory and records every
// call made to it.
type Store struct {
	// SaveError, if set, is called before a record is saved. A non-nil return
	// value fails the save.
	SaveError func(rec *object.Record) error

	mu      sync.Mutex
	records map[object.Reference]*object.Record
	lastID  int64
	Events  Events
}

// Seed adds existing records to the store. Records without an id are
// assigned one. Seeding is not recorded as an event.
func (s *Store) Seed(recs ...*object.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		s.put(rec.Clone())
	}
}

// SeedRefs seeds empty records for the given references.
func (s *Store) SeedRefs(refs ...object.Reference) {
	for _, ref := range refs {
		s.Seed(&object.Record{Ref: ref, Fields: map[string]interface{}{}})
	}
}

func (s *Store) put(rec *object.Record) {
	if s.records == nil {
		s.records = make(map[object.Reference]*object.Record)
	}
	if rec.ID == 0 {
		s.lastID++
		rec.ID = s.lastID
	} else if rec.ID > s.lastID {
		s.lastID = rec.ID
	}
	s.records[rec.Ref] = rec
}

// Get returns the stored record for a reference, or nil.
func (s *Store) Get(ref object.Reference) *object.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[ref].Clone()
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Resolve returns a copy of the record, or nil if it does not exist.
func (s *Store) Resolve(ctx context.Context, ref object.Reference) (*object.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, Event{Method: "Resolve", Ref: ref})
	return s.records[ref].Clone(), nil
}

// ResolveID returns the id of the referenced record.
func (s *Store) ResolveID(ctx context.Context, ref object.Reference) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, Event{Method: "ResolveID", Ref: ref})
	rec, ok := s.records[ref]
	if !ok {
		return 0, false, nil
	}
	return rec.ID, true, nil
}

// Save stores a copy of the record and sets its id.
func (s *Store) Save(ctx context.Context, rec *object.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	if s.SaveError != nil {
		err = s.SaveError(rec)
	}
	s.Events = append(s.Events, Event{Method: "Save", Ref: rec.Ref, Err: err})
	if err != nil {
		return err
	}
	c := rec.Clone()
	s.put(c)
	rec.ID = c.ID
	return nil
}

// Saved returns the references passed to successful saves, in order.
func (s *Store) Saved() []object.Reference {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []object.Reference
	for _, e := range s.Events {
		if e.Method == "Save" && e.Err == nil {
			out = append(out, e.Ref)
		}
	}
	return out
}

// Events is a collection of events.
type Events []Event

// Filter returns the events for the given method.
func (ee Events) Filter(method string) Events {
	var out Events
	for _, e := range ee {
		if e.Method == method {
			out = append(out, e)
		}
	}
	return out
}

// Diff returns a diff of events. Returns an empty string if the events are
// equal. Errors are compared by message.
func (ee Events) Diff(other Events) string {
	return cmp.Diff(ee, other, cmp.Comparer(func(a, b error) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return a.Error() == b.Error()
	}))
}

// String returns all events that have occurred.
//
// If no events have been recorded, returns
//
//	<no events>
func (ee Events) String() string {
	if len(ee) == 0 {
		return "<no events>"
	}
	ss := make([]string, len(ee))
	for i, e := range ee {
		ss[i] = e.String()
	}
	return fmt.Sprintf("%v", ss)
}

// An Event is a recorded call.
type Event struct {
	Method string
	Ref    object.Reference
	Err    error
}

func (e Event) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s(%s): %v", e.Method, e.Ref.ConsoleString(), e.Err)
	}
	return fmt.Sprintf("%s(%s)", e.Method, e.Ref.ConsoleString())
}
