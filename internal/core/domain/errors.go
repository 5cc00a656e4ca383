package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidURL indicates a brand URL that is not an absolute
	// http or https URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrTriggerFailed indicates the webhook trigger was rejected or
	// unreachable. No poll loop is started after a trigger failure.
	ErrTriggerFailed = errors.New("trigger failed")

	// ErrPollTimeout indicates no matching result row appeared within
	// the poll ceiling. A retry generates a fresh request id.
	ErrPollTimeout = errors.New("poll timed out")

	// ErrGenerationInProgress indicates the same logical operation is
	// already running in this session.
	ErrGenerationInProgress = errors.New("generation already in progress")

	// Authentication Errors.

	// ErrInvalidCredentials indicates a failed username/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession indicates no user is currently logged in.
	ErrNoSession = errors.New("no active session")
)
