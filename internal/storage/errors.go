package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")
var ErrDuplicateEmail = errors.New("email already registered")

// ErrStaleState is returned by conditional status updates when the row is no
// longer in the expected state.
var ErrStaleState = errors.New("row not in expected state")
