package kvbackend

import (
	"context"
	"sync"

	"github.com/confimport/confimport/storage"
	"github.com/pkg/errors"
)

// Memory keeps records in memory, using the same bucket layout as Bolt.
//
// Nothing is persisted, so a Memory backend lives as long as the import
// run. It backs --memory runs and tests.
type Memory struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

// Put creates or updates a value. The value is copied.
func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	bucket, name, err := splitKey(key)
	if err != nil {
		return errors.Wrap(err, "put")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.buckets == nil {
		m.buckets = make(map[string]map[string][]byte)
	}
	b, ok := m.buckets[bucket]
	if !ok {
		b = make(map[string][]byte)
		m.buckets[bucket] = b
	}
	b[name] = append([]byte(nil), value...)
	return nil
}

// Get returns a copy of a value, or storage.ErrNotFound.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	bucket, name, err := splitKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "get")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.buckets[bucket][name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Delete removes a value. Deleting a missing key returns storage.ErrNotFound.
func (m *Memory) Delete(ctx context.Context, key string) error {
	bucket, name, err := splitKey(key)
	if err != nil {
		return errors.Wrap(err, "delete")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[bucket][name]; !ok {
		return storage.ErrNotFound
	}
	delete(m.buckets[bucket], name)
	return nil
}

// Scan returns the values in the bucket named prefix, keyed by full key.
func (m *Memory) Scan(ctx context.Context, prefix string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b := m.buckets[prefix]
	out := make(map[string][]byte, len(b))
	for name, v := range b {
		out[prefix+"/"+name] = append([]byte(nil), v...)
	}
	return out, nil
}
