package services

import "errors"

// Stable service-level failures, mapped to HTTP statuses by the handlers
var (
	ErrUnauthorized         = errors.New("invalid admin password")
	ErrNoUpdatableFields    = errors.New("no valid fields to update")
	ErrNoAddress            = errors.New("no address available for travel calculation")
	ErrTravelUnavailable    = errors.New("failed to calculate travel time")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrFolderNotInitialized = errors.New("drive folder not initialized")
	ErrAuthStateInvalid     = errors.New("invalid or unknown auth state")
	ErrAuthStateExpired     = errors.New("auth state expired")
)
