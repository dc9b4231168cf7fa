// Package testsuite contains conformance tests for storage.KVBackend
// implementations.
package testsuite

import (
	"bytes"
	"context"
	"runtime/debug"
	"testing"

	"github.com/confimport/confimport/storage"
	"github.com/go-stack/stack"
	"github.com/google/go-cmp/cmp"
)

// Config provides configuration options for the test suite.
type Config struct {
	// New is used to instantiate a new, empty backend.
	//
	// The returned done function is called on test completion, allowing
	// cleanup to be performed.
	New func(t *testing.T) (backend storage.KVBackend, done func())
}

// Run executes the test suite for the given configuration.
func Run(t *testing.T, cfg Config) {
	run(t, "GetPut", cfg, getPut)
	run(t, "Delete", cfg, deleteKey)
	run(t, "Scan", cfg, scan)
	run(t, "ValueCopied", cfg, valueCopied)
	run(t, "RecordStore", cfg, recordStore)
}

func run(t *testing.T, name string, cfg Config, testFunc func(*testing.T, storage.KVBackend)) {
	t.Run(name, func(t *testing.T) {
		defer checkPanic(t)
		be, done := cfg.New(t)
		defer done()
		testFunc(t, be)
	})
}

func getPut(t *testing.T, be storage.KVBackend) {
	ctx := context.Background()

	_, err := be.Get(ctx, "foo/bar")
	if !storage.IsNotFound(err) {
		t.Errorf("Get() non-existing key error = %v, want %v", err, storage.ErrNotFound)
	}

	if err := be.Put(ctx, "foo/bar", []byte("baz")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	assertValue(t, be, "foo/bar", []byte("baz"))

	if err := be.Put(ctx, "foo/bar", []byte("qux")); err != nil {
		t.Fatalf("Put() update error = %v", err)
	}
	assertValue(t, be, "foo/bar", []byte("qux"))
}

func deleteKey(t *testing.T, be storage.KVBackend) {
	ctx := context.Background()

	if err := be.Delete(ctx, "foo/nonexisting"); !storage.IsNotFound(err) {
		t.Errorf("Delete() non-existing key error = %v, want %v", err, storage.ErrNotFound)
	}
	if err := be.Put(ctx, "foo/bar", []byte("baz")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := be.Delete(ctx, "foo/bar"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := be.Get(ctx, "foo/bar"); !storage.IsNotFound(err) {
		t.Errorf("Get() deleted key error = %v, want %v", err, storage.ErrNotFound)
	}
}

func scan(t *testing.T, be storage.KVBackend) {
	ctx := context.Background()
	for k, v := range map[string]string{
		"foo/bar":     "1",
		"foo/baz":     "2",
		"foo/sub/qux": "3",
		"foobar/x":    "4",
	} {
		if err := be.Put(ctx, k, []byte(v)); err != nil {
			t.Fatalf("Put(%s) error = %v", k, err)
		}
	}

	got, err := be.Scan(ctx, "nonexisting")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Scan() non-existing prefix returned %d values", len(got))
	}

	got, err = be.Scan(ctx, "foo")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := map[string][]byte{
		"foo/bar": []byte("1"),
		"foo/baz": []byte("2"),
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Scan() (-got, +want)\n%s", diff)
	}
}

func valueCopied(t *testing.T, be storage.KVBackend) {
	ctx := context.Background()
	val := []byte("abc")
	if err := be.Put(ctx, "foo/bar", val); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	val[0] = 'x'
	got, err := be.Get(ctx, "foo/bar")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	got[1] = 'x'
	assertValue(t, be, "foo/bar", []byte("abc"))
}

func recordStore(t *testing.T, be storage.KVBackend) {
	ctx := context.Background()
	kv := &storage.KV{Backend: be}
	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		id, err := kv.NextID(ctx)
		if err != nil {
			t.Fatalf("NextID() error = %v", err)
		}
		if id <= 0 || seen[id] {
			t.Fatalf("NextID() returned %d, previously seen %v", id, seen)
		}
		seen[id] = true
	}
}

func assertValue(t *testing.T, be storage.KVBackend, key string, want []byte) {
	t.Helper()
	got, err := be.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get(%s) error = %v", key, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get(%s)\nGot:  %q\nWant: %q", key, got, want)
	}
}

func checkPanic(t *testing.T) {
	t.Helper()
	if err := recover(); err != nil {
		c := stack.Caller(2)
		debug.PrintStack()
		t.Fatalf("Panic: %k/%v: %v", c, c, err)
	}
}
