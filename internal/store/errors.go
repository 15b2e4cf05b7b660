package store

import "errors"

// Outcome errors shared by every store. Repositories and services wrap these
// with detail via fmt.Errorf("%w: ..."); the HTTP layer maps them to status
// codes with errors.Is. Anything else is treated as a storage failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
)
