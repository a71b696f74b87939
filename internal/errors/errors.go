package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these recognizable error types without being coupled to HTTP
// status codes; the API layer checks them with `errors.Is()` and maps each one
// to the correct HTTP response.

var (
	// ErrNotFound signifies that a requested resource (typically a session)
	// could not be located. Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current
	// state of the session, e.g. asking a question before the document is
	// ready, or while a previous question is still outstanding.
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrQuotaExceeded signifies that the role's upload quota is already
	// used up by the pending file set. The wrapped message carries the role
	// and the numeric limit for display. Mapped to 403 Forbidden.
	ErrQuotaExceeded = errors.New("upload quota exceeded")

	// ErrUpstream signifies that the RAG backend rejected or failed an
	// ingestion request. Mapped to 502 Bad Gateway.
	ErrUpstream = errors.New("backend request failed")

	// ErrInternal signifies an unexpected server-side error. Used to avoid
	// leaking implementation details to the client. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)
