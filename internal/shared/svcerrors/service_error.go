package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument  = "invalid_argument"
	categoryResourceConflict = "resource_conflict"
	categoryInternal         = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// Process exit codes reported by the CLI.
const (
	ExitCodeOK              = 0
	ExitCodeInternal        = 1
	ExitCodeInvalidArgument = 2
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// NewResourceConflictError creates a new ServiceError with category resource_conflict.
func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryResourceConflict,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// PanicError converts a recovered panic value into an internal ServiceError.
func PanicError(p any) *ServiceError {
	var panicErr error
	if err, ok := p.(error); ok {
		panicErr = err
	} else {
		panicErr = fmt.Errorf("%v", p)
	}
	return NewInternalErrorPanic(panicErr)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, resource_conflict or internal
	Code     string // service-owned stable code (e.g. RPT_1000)
	Message  string // operator-facing, human-readable
	Cause    error  // wrapped underlying error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsResourceConflictError() bool {
	return e.Category == categoryResourceConflict
}

// ExitCode maps the error category to the process exit status.
func (e *ServiceError) ExitCode() int {
	switch e.Category {
	case categoryInvalidArgument, categoryResourceConflict:
		return ExitCodeInvalidArgument
	default:
		return ExitCodeInternal
	}
}

// ExitCode returns the exit status for any error: 0 for nil, the category mapping for a
// ServiceError anywhere in the chain, and ExitCodeInternal otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.ExitCode()
	}
	return ExitCodeInternal
}
