// Package errors provides typed errors for ai-commit
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind represents the category of error
type Kind int

const (
	// ErrConfig indicates a configuration error
	ErrConfig Kind = iota
	// ErrGit indicates a git operation error
	ErrGit
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrSizeExceeded indicates a diff larger than the hard size limit
	ErrSizeExceeded
	// ErrUnparsableDiff indicates no file boundaries were found in a diff
	ErrUnparsableDiff
	// ErrRateLimited indicates the generation service rejected the request
	// due to rate limiting
	ErrRateLimited
	// ErrTransient indicates a transient network or timeout failure
	ErrTransient
	// ErrAuthentication indicates an authentication/authorization failure
	ErrAuthentication
	// ErrInvalidRequest indicates a malformed generation request
	ErrInvalidRequest
	// ErrRetriesExhausted indicates all retry attempts failed
	ErrRetriesExhausted
)

// retryPolicy maps each error kind to whether the executor may retry it.
// Retryability is a data-driven decision consumed by the retry loop, not a
// type check scattered through call sites.
var retryPolicy = map[Kind]bool{
	ErrConfig:           false,
	ErrGit:              false,
	ErrValidation:       false,
	ErrSizeExceeded:     false,
	ErrUnparsableDiff:   false,
	ErrRateLimited:      true,
	ErrTransient:        true,
	ErrAuthentication:   false,
	ErrInvalidRequest:   false,
	ErrRetriesExhausted: false,
}

// CommitError is the base error type for all ai-commit errors
type CommitError struct {
	Kind    Kind
	Message string
	Cause   error

	// RetryAfter is a server-suggested wait before the next attempt.
	// Zero means no suggestion; the executor falls back to computed backoff.
	RetryAfter time.Duration
}

// Error returns the error message
func (e *CommitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", kindString(e.Kind), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", kindString(e.Kind), e.Message)
}

// Unwrap returns the underlying cause
func (e *CommitError) Unwrap() error {
	return e.Cause
}

// New creates a new CommitError
func New(kind Kind, message string, cause error) *CommitError {
	return &CommitError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// WithRetryAfter attaches a server-suggested wait time to the error
func (e *CommitError) WithRetryAfter(d time.Duration) *CommitError {
	e.RetryAfter = d
	return e
}

// IsKind checks if an error is of a specific kind
func IsKind(err error, kind Kind) bool {
	var cerr *CommitError
	if err == nil {
		return false
	}
	if errors.As(err, &cerr) {
		return cerr.Kind == kind
	}
	return false
}

// KindOf returns the kind of a CommitError, or ok=false for foreign errors
func KindOf(err error) (Kind, bool) {
	var cerr *CommitError
	if errors.As(err, &cerr) {
		return cerr.Kind, true
	}
	return 0, false
}

// IsRetryable returns true if the error is transient and retryable
// according to the retry policy table
func IsRetryable(err error) bool {
	var cerr *CommitError
	if !errors.As(err, &cerr) {
		return false
	}
	return retryPolicy[cerr.Kind]
}

func kindString(k Kind) string {
	switch k {
	case ErrConfig:
		return "CONFIG"
	case ErrGit:
		return "GIT"
	case ErrValidation:
		return "VALIDATION"
	case ErrSizeExceeded:
		return "SIZE_EXCEEDED"
	case ErrUnparsableDiff:
		return "UNPARSABLE_DIFF"
	case ErrRateLimited:
		return "RATE_LIMITED"
	case ErrTransient:
		return "TRANSIENT"
	case ErrAuthentication:
		return "AUTHENTICATION"
	case ErrInvalidRequest:
		return "INVALID_REQUEST"
	case ErrRetriesExhausted:
		return "RETRIES_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *CommitError {
	return New(ErrConfig, message, cause)
}

// GitError creates a git operation error
func GitError(message string, cause error) *CommitError {
	return New(ErrGit, message, cause)
}

// ValidationError creates an input validation error
func ValidationError(message string, cause error) *CommitError {
	return New(ErrValidation, message, cause)
}

// SizeExceededError creates a diff-too-large error
func SizeExceededError(message string) *CommitError {
	return New(ErrSizeExceeded, message, nil)
}

// RateLimitedError creates a rate-limit error
func RateLimitedError(message string, cause error) *CommitError {
	return New(ErrRateLimited, message, cause)
}

// TransientError creates a transient failure error
func TransientError(message string, cause error) *CommitError {
	return New(ErrTransient, message, cause)
}

// AuthenticationError creates an authentication error
func AuthenticationError(message string, cause error) *CommitError {
	return New(ErrAuthentication, message, cause)
}

// InvalidRequestError creates a malformed-request error
func InvalidRequestError(message string, cause error) *CommitError {
	return New(ErrInvalidRequest, message, cause)
}

// RetriesExhaustedError creates a terminal error after all retries failed,
// carrying the last underlying cause
func RetriesExhaustedError(attempts int, cause error) *CommitError {
	return New(ErrRetriesExhausted, fmt.Sprintf("failed after %d attempts", attempts), cause)
}
