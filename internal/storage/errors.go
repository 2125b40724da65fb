package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound: the target id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrStoreUnavailable: the store could not be reached or the write
	// failed in transit. Never retried; surfaced once to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// wrap maps driver errors onto the storage taxonomy.
func wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrAlreadyExists
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
