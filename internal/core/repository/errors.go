package repository

import "errors"

// ErrNotFound is returned when an id does not match any stored record.
// Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")
