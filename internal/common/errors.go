package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// Pipeline error taxonomy. The consumer retries every failure up to the
// attempt bound; the classification below only records which failures are
// expected to succeed on a later attempt.
var (
	// ErrFetch: document store unreachable or object missing. Retryable.
	ErrFetch = errors.New("document fetch failed")
	// ErrUnsupportedDocument: the document itself is malformed or of an
	// unsupported format. Permanent.
	ErrUnsupportedDocument = errors.New("unsupported document")
	// ErrExtraction: extraction service call or schema validation failed.
	// Retryable.
	ErrExtraction = errors.New("extraction failed")
	// ErrUserNotFound: the job references an unknown user. Permanent.
	ErrUserNotFound = errors.New("user not found")
)

// Retryable reports whether an error is expected to succeed on a later
// delivery. Permanent errors still go back to the queue (we cannot always
// distinguish reliably) but will fail identically until the attempt bound
// exhausts them into the dead-letter sink.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrUnsupportedDocument), errors.Is(err, ErrUserNotFound):
		return false
	default:
		return true
	}
}

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}
