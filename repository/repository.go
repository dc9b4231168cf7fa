// Package repository implements the backend repository used by import plans
// on top of a key-value store.
package repository

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/confimport/confimport/metrics"
	"github.com/confimport/confimport/object"
	"github.com/confimport/confimport/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Repository reads and writes records in a key-value store.
type Repository struct {
	// Logger is used for logging. If not set, logs are discarded.
	Logger *zap.Logger

	// Backoff algorithm used for retrying saves. If not set, exponential
	// backoff is used.
	Backoff func() backoff.BackOff

	// Metrics, if set, records request counts and durations.
	Metrics *metrics.Metrics

	kv    *storage.KV
	cache *Cache
}

// New creates a repository. The cache is optional; it should be created for
// a single import run and not be shared between runs.
func New(backend storage.KVBackend, cache *Cache) *Repository {
	return &Repository{
		kv:    &storage.KV{Backend: backend},
		cache: cache,
	}
}

func (r *Repository) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Repository) backoff() backoff.BackOff {
	if r.Backoff == nil {
		return backoff.NewExponentialBackOff()
	}
	return r.Backoff()
}

// Prefetch loads all records of the given kinds into the cache. It is a
// no-op when the repository has no cache.
func (r *Repository) Prefetch(ctx context.Context, kinds ...object.Kind) error {
	if r.cache == nil {
		return nil
	}
	start := time.Now()
	err := r.cache.Prefetch(ctx, r.kv, kinds...)
	r.Metrics.Request("prefetch", start, err)
	if err != nil {
		return errors.Wrap(err, "prefetch")
	}
	r.logger().Debug("Prefetched records", zap.Int("count", r.cache.Len()))
	return nil
}

// Resolve returns the record for a reference, or nil if it does not exist.
func (r *Repository) Resolve(ctx context.Context, ref object.Reference) (*object.Record, error) {
	if r.cache != nil {
		rec, known := r.cache.lookup(ref)
		r.Metrics.CacheLookup(known)
		if known {
			return rec, nil
		}
	}

	start := time.Now()
	rec, err := r.kv.Get(ctx, ref)
	if storage.IsNotFound(err) {
		err = nil
	}
	r.Metrics.Request("resolve", start, err)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", ref.ConsoleString())
	}
	if rec != nil && r.cache != nil {
		r.cache.store(rec)
	}
	return rec, nil
}

// ResolveID returns the id of the referenced record.
func (r *Repository) ResolveID(ctx context.Context, ref object.Reference) (int64, bool, error) {
	rec, err := r.Resolve(ctx, ref)
	if err != nil || rec == nil {
		return 0, false, err
	}
	return rec.ID, true, nil
}

// Save stores a record. Records without an id are assigned one; the id is
// set on rec once the record is stored.
//
// Failed writes are retried, except for records that cannot be encoded.
func (r *Repository) Save(ctx context.Context, rec *object.Record) error {
	logger := r.logger().With(zap.String("ref", rec.Ref.ConsoleString()))

	stored := *rec
	if stored.ID == 0 {
		id, err := r.kv.NextID(ctx)
		if err != nil {
			return errors.Wrap(err, "allocate id")
		}
		stored.ID = id
	}

	start := time.Now()
	err := backoff.RetryNotify(
		func() error {
			err := r.kv.Put(ctx, &stored)
			if _, ok := err.(*storage.EncodeError); ok {
				return backoff.Permanent(err)
			}
			return err
		},
		backoff.WithContext(r.backoff(), ctx),
		func(err error, dur time.Duration) {
			logger.Info("Retrying", zap.Error(err), zap.Duration("duration", dur))
		},
	)
	r.Metrics.Request("save", start, err)
	if err != nil {
		return errors.Wrapf(err, "save %s", rec.Ref.ConsoleString())
	}

	rec.ID = stored.ID
	if r.cache != nil {
		r.cache.store(rec)
	}
	logger.Debug("Saved record", zap.Int64("id", rec.ID))
	return nil
}
