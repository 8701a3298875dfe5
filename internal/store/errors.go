package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update or delete references an id that does
// not exist in the collection. The caller should refresh its listing.
var ErrNotFound = errors.New("asset not found")

// StorageError wraps a failure of the underlying database file. It is
// generally fatal to the current operation; the store makes no repair attempt.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
