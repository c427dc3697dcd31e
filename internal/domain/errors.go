package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// shop does not exist in the database (or is soft-deleted, for operations
// that only see active shops).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing name, rating out of range).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")
