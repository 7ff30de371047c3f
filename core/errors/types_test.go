package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSourceFetchError_Error(t *testing.T) {
	err := &SourceFetchError{
		Source:  "Economic Times",
		FeedURL: "https://example.com/rss",
		Err:     errors.New("connection refused"),
	}

	expected := "failed to fetch feed for source Economic Times: connection refused"
	if err.Error() != expected {
		t.Errorf("SourceFetchError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestSourceFetchError_Unwrap(t *testing.T) {
	inner := errors.New("timeout")
	err := &SourceFetchError{Source: "Mint", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("SourceFetchError should unwrap to the inner error")
	}
}

func TestEmptyCollectionError_Error(t *testing.T) {
	err := &EmptyCollectionError{Industry: "energy"}

	expected := "no articles collected for industry energy"
	if err.Error() != expected {
		t.Errorf("EmptyCollectionError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestPersistenceConflictError_Error(t *testing.T) {
	err := &PersistenceConflictError{
		Industry: "technology",
		Err:      errors.New("database is locked"),
	}

	expected := "persistence conflict for industry technology: database is locked"
	if err.Error() != expected {
		t.Errorf("PersistenceConflictError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsSourceFetch_True(t *testing.T) {
	err := &SourceFetchError{Source: "Mint", Err: errors.New("boom")}

	if !IsSourceFetch(err) {
		t.Error("IsSourceFetch should return true for SourceFetchError")
	}
}

func TestIsSourceFetch_False(t *testing.T) {
	if IsSourceFetch(errors.New("some other error")) {
		t.Error("IsSourceFetch should return false for non-SourceFetchError")
	}
}

func TestIsEmptyCollection_WrappedError(t *testing.T) {
	empty := &EmptyCollectionError{Industry: "retail"}
	wrapped := fmt.Errorf("pipeline run failed: %w", empty)

	if !IsEmptyCollection(wrapped) {
		t.Error("IsEmptyCollection should return true for wrapped EmptyCollectionError")
	}
}

func TestIsEmptyCollection_False(t *testing.T) {
	if IsEmptyCollection(errors.New("no data")) {
		t.Error("IsEmptyCollection should return false for plain error")
	}
}

func TestIsPersistenceConflict_True(t *testing.T) {
	err := &PersistenceConflictError{Industry: "fmcg", Err: errors.New("locked")}

	if !IsPersistenceConflict(err) {
		t.Error("IsPersistenceConflict should return true for PersistenceConflictError")
	}
}

func TestIsExternalAPI_True(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "gemini",
	}

	if !IsExternalAPI(err) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	original := &EmptyCollectionError{Industry: "telecom"}
	wrapped := WrapError(original, "update aborted")

	if wrapped == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expected := "update aborted: no articles collected for industry telecom"
	if wrapped.Error() != expected {
		t.Errorf("WrapError message = %v, want %v", wrapped.Error(), expected)
	}

	if !IsEmptyCollection(wrapped) {
		t.Error("Wrapped error should still be identifiable as EmptyCollectionError")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	if WrapError(nil, "this should not happen") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
