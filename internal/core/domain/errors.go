package domain

import "errors"

// ============================================================================
// Gallery Errors
// ============================================================================

// Not found errors
var (
	ErrExhibitNotFound = errors.New("exhibit not found")
)

// Validation errors
var (
	ErrInvalidExhibitID     = errors.New("exhibit_id must be a non-negative integer")
	ErrInvalidExhibitSource = errors.New("exhibit requires both git and title")
)

// Unavailable errors
var (
	ErrGitUnavailable     = errors.New("git is required but not found in PATH")
	ErrCatalogUnavailable = errors.New("exhibit catalog is unavailable")
)

// Sync errors
var (
	ErrSyncFailed       = errors.New("exhibit sync failed")
	ErrCheckoutConflict = errors.New("destination exists and is not a git checkout")
)
