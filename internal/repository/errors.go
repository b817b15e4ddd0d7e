package repository

import "errors"

// ErrNotFound is wrapped with the entity name by every repo lookup that
// matches no row.
var ErrNotFound = errors.New("not found")
