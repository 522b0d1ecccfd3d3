// Package common defines shared constants and sentinel errors used across
// client and server layers of FamilyTree. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Persistence errors. ErrQuotaExceeded means the value was too large
	// for local storage; in-memory state is still valid and the caller may
	// retry after freeing space.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// Feed errors. ErrFeedUnavailable marks a broken live subscription;
	// other stores keep working.
	ErrFeedUnavailable = errors.New("failed to load live feed")

	// Vault errors.
	ErrTooManyFiles    = errors.New("too many files in one upload")
	ErrProtectedFolder = errors.New("folder is protected")
)
