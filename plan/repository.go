package plan

import (
	"context"

	"github.com/confimport/confimport/object"
)

// A Repository gives access to the configuration backend.
type Repository interface {
	// Resolve returns the record for a reference. If the record does not
	// exist, nil is returned without an error.
	Resolve(ctx context.Context, ref object.Reference) (*object.Record, error)

	// ResolveID returns the backend id of a reference. If the referenced
	// record does not exist, ok is false.
	ResolveID(ctx context.Context, ref object.Reference) (id int64, ok bool, err error)

	// Save creates or updates a record.
	Save(ctx context.Context, rec *object.Record) error
}
