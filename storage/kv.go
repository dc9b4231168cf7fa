// Package storage persists backend records in a key-value store.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"github.com/confimport/confimport/object"
	"github.com/pkg/errors"
)

// The KVBackend is used for persisting key-value data.
type KVBackend interface {
	// Put creates or updates a key.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the given key. Returns ErrNotFound if the given key does not
	// exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete deletes a key. Returns ErrNotFound if the given key does not exist.
	Delete(ctx context.Context, key string) error

	// Scan returns a key-value map of all keys matching the given prefix.
	Scan(ctx context.Context, prefix string) (map[string][]byte, error)
}

// A Sequencer is optionally implemented by backends that can generate
// monotonically increasing numbers atomically.
type Sequencer interface {
	NextSequence(ctx context.Context, name string) (uint64, error)
}

const sequenceKey = "meta/sequence"

// KV stores records in a KVBackend.
//
// Records are stored as JSON under records/<kind>/<reference key>.
type KV struct {
	Backend KVBackend
}

func recordPrefix(kind object.Kind) string {
	return "records/" + kind.String()
}

func recordKey(ref object.Reference) string {
	return recordPrefix(ref.Kind) + "/" + ref.Key()
}

// Put stores a record.
func (kv *KV) Put(ctx context.Context, rec *object.Record) error {
	j, err := json.Marshal(rec)
	if err != nil {
		return &EncodeError{Err: err}
	}
	if err := kv.Backend.Put(ctx, recordKey(rec.Ref), j); err != nil {
		return errors.Wrap(err, "store")
	}
	return nil
}

// Get returns the record for a reference. Returns ErrNotFound if the record
// does not exist.
func (kv *KV) Get(ctx context.Context, ref object.Reference) (*object.Record, error) {
	data, err := kv.Backend.Get(ctx, recordKey(ref))
	if err != nil {
		return nil, err
	}
	return decodeRecord(data)
}

// Delete deletes a single record.
func (kv *KV) Delete(ctx context.Context, ref object.Reference) error {
	if err := kv.Backend.Delete(ctx, recordKey(ref)); err != nil {
		return errors.Wrap(err, "delete")
	}
	return nil
}

// List returns all records of a kind, in no particular order.
func (kv *KV) List(ctx context.Context, kind object.Kind) ([]*object.Record, error) {
	values, err := kv.Backend.Scan(ctx, recordPrefix(kind))
	if err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	out := make([]*object.Record, 0, len(values))
	for k, v := range values {
		rec, err := decodeRecord(v)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", k)
		}
		out = append(out, rec)
	}
	return out, nil
}

// NextID returns a new unique record id. Ids start at 1.
func (kv *KV) NextID(ctx context.Context) (int64, error) {
	if seq, ok := kv.Backend.(Sequencer); ok {
		n, err := seq.NextSequence(ctx, "records")
		if err != nil {
			return 0, errors.Wrap(err, "next sequence")
		}
		return int64(n), nil
	}

	var cur int64
	data, err := kv.Backend.Get(ctx, sequenceKey)
	switch {
	case IsNotFound(err):
	case err != nil:
		return 0, errors.Wrap(err, "get sequence")
	default:
		cur, err = strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return 0, errors.Wrap(err, "parse sequence")
		}
	}
	cur++
	if err := kv.Backend.Put(ctx, sequenceKey, []byte(strconv.FormatInt(cur, 10))); err != nil {
		return 0, errors.Wrap(err, "store sequence")
	}
	return cur, nil
}

func decodeRecord(data []byte) (*object.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec object.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, errors.Wrap(err, "unmarshal record")
	}
	return &rec, nil
}
