package repository

import "errors"

// ErrNotFound is the repository-specific sentinel returned when a session
// lookup finds nothing. The service layer translates it into the
// domain-level not-found error, keeping business logic decoupled from the
// storage implementation.
var ErrNotFound = errors.New("repository: not found")
