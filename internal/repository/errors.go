package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row, regardless of the
// backing engine.
var ErrNotFound = errors.New("repository: record not found")
