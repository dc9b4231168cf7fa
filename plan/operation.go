package plan

import (
	"context"
	"fmt"

	"github.com/confimport/confimport/object"
	"github.com/pkg/errors"
)

// OpType is the type of an operation.
type OpType int

// Operation types. Skip is never assigned by the planner; pre-existing
// objects are always updated.
const (
	Unclassified OpType = iota
	Create
	Update
	Skip
)

func (t OpType) String() string {
	switch t {
	case Create:
		return "create"
	case Update:
		return "update"
	case Skip:
		return "skip"
	default:
		return "unclassified"
	}
}

// Symbol returns the symbol used for the type in plans.
func (t OpType) Symbol() string {
	switch t {
	case Create:
		return "+"
	case Update:
		return "~"
	case Skip:
		return "="
	default:
		return "?"
	}
}

// An Operation creates or updates a single object.
type Operation struct {
	Object object.Object
	Type   OpType

	// Bare is set for the reduced create of an object in a dependency
	// cycle.
	Bare bool

	// Deferred is set for the full update that follows a bare create. The
	// existing record is resolved when the operation is applied.
	Deferred bool

	existing *object.Record
}

// NewOperation returns an unclassified operation for an object.
func NewOperation(obj object.Object) *Operation {
	return &Operation{Object: obj}
}

func newBareOperation(bare object.Object) *Operation {
	return &Operation{Object: bare, Type: Create, Bare: true}
}

func newDeferredOperation(full object.Object) *Operation {
	return &Operation{Object: full, Type: Update, Deferred: true}
}

// Reference returns the reference of the operation's object.
func (op *Operation) Reference() object.Reference {
	return op.Object.Reference()
}

// Classify looks up the object in the repository and sets the operation type
// to Create if it does not exist, or Update if it does. An operation is only
// classified once.
func (op *Operation) Classify(ctx context.Context, repo Repository) error {
	if op.Type != Unclassified {
		return nil
	}
	rec, err := repo.Resolve(ctx, op.Reference())
	if err != nil {
		return errors.Wrap(err, "classify")
	}
	op.bind(rec)
	return nil
}

func (op *Operation) bind(existing *object.Record) {
	if existing == nil {
		op.Type = Create
		return
	}
	op.Type = Update
	op.existing = existing
}

// Existing returns the record bound at classification, if any.
func (op *Operation) Existing() *object.Record {
	return op.existing
}

// apply materializes and saves the object. It reports whether a change was
// persisted.
func (op *Operation) apply(ctx context.Context, repo Repository) (bool, error) {
	var (
		rec *object.Record
		err error
	)
	switch op.Type {
	case Skip:
		return false, nil
	case Create:
		rec, err = op.Object.Create(ctx, repo)
	case Update:
		existing := op.existing
		if op.Deferred {
			existing, err = repo.Resolve(ctx, op.Reference())
			if err != nil {
				return false, errors.Wrap(err, "resolve existing")
			}
			if existing == nil {
				return false, errors.Errorf("%s not found", op.Reference().ConsoleString())
			}
		}
		rec, err = op.Object.Update(ctx, repo, existing)
	default:
		return false, errors.New("operation is not classified")
	}
	if err != nil {
		return false, errors.Wrap(err, "materialize")
	}
	if err := repo.Save(ctx, rec); err != nil {
		return false, err
	}
	return true, nil
}

// rank orders operations that share a reference: the bare create comes
// before the plain operation, which comes before the deferred update.
func (op *Operation) rank() int {
	switch {
	case op.Bare:
		return 0
	case op.Deferred:
		return 2
	default:
		return 1
	}
}

func opLess(a, b *Operation) bool {
	if c := a.Reference().Compare(b.Reference()); c != 0 {
		return c < 0
	}
	return a.rank() < b.rank()
}

func (op *Operation) String() string {
	return fmt.Sprintf("%s %s", op.Type.Symbol(), op.Reference().ConsoleString())
}
