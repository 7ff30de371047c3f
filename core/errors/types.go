// ABOUTME: Custom error types for the aggregation pipeline
// ABOUTME: Provides structured errors for fault isolation and propagation policy

package errors

import (
	"errors"
	"fmt"
)

// SourceFetchError represents a per-source collection failure. It is
// recoverable: the source contributes zero articles and the run continues.
type SourceFetchError struct {
	Source  string
	FeedURL string
	Err     error
}

// Error implements the error interface
func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("failed to fetch feed for source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying fetch error
func (e *SourceFetchError) Unwrap() error {
	return e.Err
}

// EmptyCollectionError is terminal for a run: zero articles from all sources.
// The caller is told explicitly "no data" instead of a degraded report.
type EmptyCollectionError struct {
	Industry string
}

// Error implements the error interface
func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("no articles collected for industry %s", e.Industry)
}

// PersistenceConflictError is fatal to a store call. The previous snapshot
// must remain intact when it occurs.
type PersistenceConflictError struct {
	Industry string
	Err      error
}

// Error implements the error interface
func (e *PersistenceConflictError) Error() string {
	return fmt.Sprintf("persistence conflict for industry %s: %v", e.Industry, e.Err)
}

// Unwrap returns the underlying storage error
func (e *PersistenceConflictError) Unwrap() error {
	return e.Err
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsSourceFetch checks if an error is a SourceFetchError
func IsSourceFetch(err error) bool {
	var fetchErr *SourceFetchError
	return errors.As(err, &fetchErr)
}

// IsEmptyCollection checks if an error is an EmptyCollectionError
func IsEmptyCollection(err error) bool {
	var emptyErr *EmptyCollectionError
	return errors.As(err, &emptyErr)
}

// IsPersistenceConflict checks if an error is a PersistenceConflictError
func IsPersistenceConflict(err error) bool {
	var conflictErr *PersistenceConflictError
	return errors.As(err, &conflictErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
