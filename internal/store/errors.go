package store

import "errors"

// ErrNotFound is returned when a referenced entity does not exist.
// Callers should not retry.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned for malformed input that is rejected before any
// write takes place.
var ErrValidation = errors.New("validation failed")
