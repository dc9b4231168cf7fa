package storage

import "github.com/pkg/errors"

// ErrNotFound is returned when attempting to get or delete an item that does
// not exist.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err, or the error it wraps, is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// An EncodeError is returned when a record cannot be encoded. Storing the
// same record again fails the same way.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "marshal record: " + e.Err.Error() }

// Cause returns the underlying error.
func (e *EncodeError) Cause() error { return e.Err }
