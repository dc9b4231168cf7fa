package kvbackend

import (
	"path/filepath"
	"testing"

	"github.com/confimport/confimport/storage"
	"github.com/confimport/confimport/storage/testsuite"
)

func TestMemory(t *testing.T) {
	testsuite.Run(t, testsuite.Config{
		New: func(*testing.T) (storage.KVBackend, func()) {
			return &Memory{}, func() {}
		},
	})
}

func TestBolt(t *testing.T) {
	testsuite.Run(t, testsuite.Config{
		New: func(t *testing.T) (storage.KVBackend, func()) {
			file := filepath.Join(t.TempDir(), "state.db")
			db, err := NewBolt(file)
			if err != nil {
				t.Fatal(err)
			}
			return db, func() {
				if err := db.Close(); err != nil {
					t.Errorf("close db: %v", err)
				}
			}
		},
	})
}
