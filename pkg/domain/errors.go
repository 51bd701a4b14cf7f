package domain

import "errors"

// Error taxonomy shared by every layer. Specific errors wrap one of these so
// callers can classify them with errors.Is.
var (
	// ErrValidation is returned when input is malformed (empty name, non-positive amount).
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when a referenced record is absent or not owned by the caller.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned for duplicate invitations, existing memberships and similar clashes.
	ErrConflict = errors.New("conflict")
	// ErrForbidden is returned when the caller's role does not allow the action.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized is returned when credentials are missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrGateway is returned when the persistence layer fails for an infrastructure reason.
	ErrGateway = errors.New("gateway error")
)
