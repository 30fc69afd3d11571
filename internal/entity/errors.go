package entity

import (
	"errors"
	"fmt"
)

// ErrVisitNotFound is returned by single-row operations when the id does not
// exist. A miss on a lookup query (history, auth) is NOT an error and is
// represented by a nil result instead.
var ErrVisitNotFound = errors.New("visit not found")

// PersistenceError wraps a storage-layer failure with the operation that hit
// it. The underlying cause is preserved for logs; callers surface Message-level
// text to users.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
