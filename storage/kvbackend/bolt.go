package kvbackend

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/confimport/confimport/storage"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// Bolt stores key-value pairs in bolt db.
type Bolt struct {
	db *bolt.DB
}

// DefaultBoltFile returns the default location of the state file,
// ~/.confimport/state.db.
func DefaultBoltFile() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "get user")
	}
	return filepath.Join(u.HomeDir, ".confimport", "state.db"), nil
}

// NewBolt creates and opens a database at the given path. If the file or
// directory do not exist, they are created.
func NewBolt(file string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, errors.Wrapf(err, "ensure dir exists: %s", filepath.Dir(file))
	}
	db, err := bolt.Open(file, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt db")
	}
	return &Bolt{db: db}, nil
}

// Close closes the Bolt DB store and releases all resources.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Put creates or updates a value.
func (b *Bolt) Put(ctx context.Context, key string, value []byte) error {
	bucket, name, err := splitKey(key)
	if err != nil {
		return errors.Wrap(err, "put")
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return errors.Wrapf(err, "create bucket %s", bucket)
		}
		return bkt.Put([]byte(name), value)
	})
}

// Get returns a single value.
func (b *Bolt) Get(ctx context.Context, key string) ([]byte, error) {
	bucket, name, err := splitKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "get")
	}
	var value []byte
	err = b.db.View(func(tx *bolt.Tx) error {
		v := b.lookup(tx, bucket, name)
		if v == nil {
			return storage.ErrNotFound
		}
		// Values are only valid for the transaction.
		value = append([]byte(nil), v...)
		return nil
	})
	return value, err
}

// Delete deletes a key.
func (b *Bolt) Delete(ctx context.Context, key string) error {
	bucket, name, err := splitKey(key)
	if err != nil {
		return errors.Wrap(err, "delete")
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		if b.lookup(tx, bucket, name) == nil {
			return storage.ErrNotFound
		}
		return errors.Wrap(tx.Bucket([]byte(bucket)).Delete([]byte(name)), "delete key")
	})
}

// Scan returns all values stored directly in the bucket named prefix.
func (b *Bolt) Scan(ctx context.Context, prefix string) (map[string][]byte, error) {
	if strings.HasSuffix(prefix, "/") {
		return nil, errors.New("prefix should not contain trailing /")
	}
	ret := make(map[string][]byte)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(prefix))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			if v == nil {
				// Nested bucket.
				return nil
			}
			ret[prefix+"/"+string(k)] = append([]byte(nil), v...)
			return nil
		})
	})
	return ret, err
}

// NextSequence returns the next value of a named sequence. Sequences are
// stored in the seq bucket and start at 1.
func (b *Bolt) NextSequence(ctx context.Context, name string) (uint64, error) {
	var n uint64
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte("seq/" + name))
		if err != nil {
			return errors.Wrap(err, "ensure bucket exists")
		}
		n, err = bucket.NextSequence()
		return err
	})
	return n, err
}

func (b *Bolt) lookup(tx *bolt.Tx, bucket, name string) []byte {
	bkt := tx.Bucket([]byte(bucket))
	if bkt == nil {
		return nil
	}
	return bkt.Get([]byte(name))
}
