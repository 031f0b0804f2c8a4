package domain

import "errors"

var (
	// Input validation, rejected before any store access.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRadius      = errors.New("radius must be positive")
	ErrInvalidVariant     = errors.New("invalid profile variant")
	ErrEmptyMessage       = errors.New("message must not be empty")
	ErrSelfConnection     = errors.New("cannot send a connection request to yourself")

	// Filtering outcome, not a failure: the user simply has no profile the
	// caller is allowed to see.
	ErrNoVisibleProfile = errors.New("no visible profile")

	// Storage collaborator unreachable or errored.
	ErrDataUnavailable = errors.New("data unavailable")

	// Connection lifecycle.
	ErrInvalidTransition = errors.New("connection status is terminal")
	ErrGateClosed        = errors.New("messaging requires an accepted connection")
	ErrDuplicateRequest  = errors.New("a pending request between these users already exists")
	ErrNotParticipant    = errors.New("user is not part of this connection")

	// Authentication.
	ErrInvalidToken = errors.New("invalid or expired token")

	// Not-found sentinels.
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrLocationNotFound   = errors.New("location not found")
)
