package persistence

import "errors"

// Sentinel errors shared by every storage adapter. Callers match them with
// errors.Is; adapters wrap driver failures with operation context so the
// underlying cause stays reachable.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)
