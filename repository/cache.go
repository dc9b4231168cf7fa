package repository

import (
	"context"
	"sync"

	"github.com/confimport/confimport/object"
	"github.com/pkg/errors"
)

// A Lister lists all records of a kind.
type Lister interface {
	List(ctx context.Context, kind object.Kind) ([]*object.Record, error)
}

// A Cache holds records read during a single import run. It is populated
// explicitly with Prefetch and by the repository as records are read and
// saved.
//
// For prefetched kinds the cache is authoritative: a reference that is not
// cached does not exist.
type Cache struct {
	mu       sync.Mutex
	records  map[object.Reference]*object.Record
	complete map[object.Kind]bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		records:  make(map[object.Reference]*object.Record),
		complete: make(map[object.Kind]bool),
	}
}

// Prefetch loads all records of the given kinds.
func (c *Cache) Prefetch(ctx context.Context, l Lister, kinds ...object.Kind) error {
	for _, kind := range kinds {
		recs, err := l.List(ctx, kind)
		if err != nil {
			return errors.Wrapf(err, "list %s", kind)
		}
		c.mu.Lock()
		for _, rec := range recs {
			c.records[rec.Ref] = rec
		}
		c.complete[kind] = true
		c.mu.Unlock()
	}
	return nil
}

// lookup returns the cached record for ref. If known is false, the cache
// cannot tell whether the record exists.
func (c *Cache) lookup(ref object.Reference) (rec *object.Record, known bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.records[ref]; ok {
		return rec.Clone(), true
	}
	return nil, c.complete[ref.Kind]
}

func (c *Cache) store(rec *object.Record) {
	c.mu.Lock()
	c.records[rec.Ref] = rec.Clone()
	c.mu.Unlock()
}

// Len returns the number of cached records.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}
