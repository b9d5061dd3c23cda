package store

import "errors"

// ErrNotFound is returned when an update references an id that matches no
// record. The store never creates an implicit record.
var ErrNotFound = errors.New("record not found")
