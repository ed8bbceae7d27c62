// Package common defines sentinel errors shared by the CellarKeeper client,
// the remote store implementations and the server. Callers should match them
// with errors.Is.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. These describe a malformed payload or a forbidden
	// mutation and are never downgraded to the offline path.
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidTransition = errors.New("invalid bottle status transition")
	ErrLocationTaken     = errors.New("location already occupied")

	// Transport errors.
	ErrUnavailable = errors.New("remote store unavailable")

	// Sync errors.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// IsValidation reports whether err is a payload validation error that should
// be surfaced to the caller instead of being retried later.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrLocationTaken)
}
