package domain

import "errors"

// Sentinel service errors. Every governance failure wraps exactly one of
// these so the HTTP layer can map it to a status code with errors.Is.
var (
	// ErrNotFound: the referenced entity does not exist by id.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: the caller is authenticated but is not the owner of the
	// resource, or a business precondition (company approval) is unmet.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict: a duplicate application for the same (job, candidate).
	ErrConflict = errors.New("conflict")
)
