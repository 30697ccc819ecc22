package services

import (
	"errors"
	"fmt"

	"assuredgig/internal/storage"

	log "github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (email already registered)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrStaleState) {
		// A conditional update lost the race or the row moved on.
		return fmt.Errorf("%w: %s (state changed)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.WithError(err).Errorf("Unexpected repository error during %s", operation)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// isServiceError reports whether err already carries one of the service sentinels.
func isServiceError(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrForbidden, ErrConflict, ErrValidation, ErrInvalidCredentials,
		ErrInvalidState, ErrInvalidTransition, ErrUnavailable, ErrInvalidSignature,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// passOrMap returns service errors untouched and maps everything else as a repo error.
// Used for errors coming back out of a transaction closure.
func passOrMap(err error, operation string) error {
	if err == nil || isServiceError(err) {
		return err
	}
	return MapRepoError(err, operation)
}

// normalizePage clamps pagination parameters.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
