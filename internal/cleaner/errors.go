package cleaner

import (
	"errors"
	"fmt"
	"os"
)

// ErrorReason categorizes why a deletion failed
type ErrorReason int

const (
	ErrorPermissionDenied ErrorReason = iota
	ErrorFileNotFound
	ErrorIsDirectory
	ErrorProtectedPath
	ErrorUnknown
)

// String returns a human-readable error reason
func (e ErrorReason) String() string {
	switch e {
	case ErrorPermissionDenied:
		return "Permission denied"
	case ErrorFileNotFound:
		return "File not found"
	case ErrorIsDirectory:
		return "Is a directory"
	case ErrorProtectedPath:
		return "Protected path"
	case ErrorUnknown:
		return "Unknown error"
	default:
		return "Unspecified error"
	}
}

// DeletionError represents a detailed deletion error
type DeletionError struct {
	Path     string
	Reason   ErrorReason
	Original error
}

// Error implements the error interface
func (e *DeletionError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Path, e.Reason, e.Original)
}

// Unwrap returns the underlying error
func (e *DeletionError) Unwrap() error {
	return e.Original
}

// CategorizeError analyzes an error and returns a categorized
// DeletionError.
func CategorizeError(path string, err error) *DeletionError {
	if err == nil {
		return nil
	}

	reason := ErrorUnknown
	switch {
	case errors.Is(err, os.ErrPermission):
		reason = ErrorPermissionDenied
	case errors.Is(err, os.ErrNotExist):
		reason = ErrorFileNotFound
	}

	return &DeletionError{
		Path:     path,
		Reason:   reason,
		Original: err,
	}
}

// FormatErrorSummary returns a short summary of deletion errors
func FormatErrorSummary(errs []*DeletionError) string {
	if len(errs) == 0 {
		return ""
	}

	counts := make(map[ErrorReason]int)
	for _, e := range errs {
		counts[e.Reason]++
	}

	summary := fmt.Sprintf("Errors: %d\n", len(errs))
	for reason, count := range counts {
		summary += fmt.Sprintf("  %s: %d\n", reason, count)
	}
	return summary
}
