// Package errors provides domain-specific error types for spamlists.
//
// Every failure a run can hit is reported as an *Error carrying a code, so the
// CLI and the HTTP API can decide how to present it without string matching.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfigSyntax indicates a malformed line in the configuration file.
	ErrCodeConfigSyntax ErrorCode = "CONFIG_SYNTAX_ERROR"

	// ErrCodeUnknownParameter indicates a configuration key outside the allowed set.
	ErrCodeUnknownParameter ErrorCode = "UNKNOWN_PARAMETER"

	// ErrCodeMissingFlag indicates that a required command line flag is absent.
	ErrCodeMissingFlag ErrorCode = "MISSING_FLAG"

	// ErrCodeConflictingFlags indicates mutually exclusive flags used together.
	ErrCodeConflictingFlags ErrorCode = "CONFLICTING_FLAGS"

	// ErrCodeUserNotFound indicates that an allow/deny filter names an unknown user.
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	// ErrCodeFileNotFound indicates that a referenced path does not exist.
	ErrCodeFileNotFound ErrorCode = "FILE_NOT_FOUND"

	// ErrCodeValidation indicates a configuration validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Sentinels for errors.Is checks. Matching is done by code only.
var (
	ErrConfigSyntax     = New(ErrCodeConfigSyntax, "configuration syntax error")
	ErrUnknownParameter = New(ErrCodeUnknownParameter, "unknown parameter")
	ErrMissingFlag      = New(ErrCodeMissingFlag, "missing flag")
	ErrConflictingFlags = New(ErrCodeConflictingFlags, "conflicting flags")
	ErrUserNotFound     = New(ErrCodeUserNotFound, "user not found")
	ErrFileNotFound     = New(ErrCodeFileNotFound, "file not found")
	ErrValidation       = New(ErrCodeValidation, "validation failed")
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrCodeInternal
}

// NewConfigSyntaxError reports a malformed configuration line.
func NewConfigSyntaxError(message string) *Error {
	return New(ErrCodeConfigSyntax, message)
}

// NewUnknownParameterError reports a configuration key that is not recognized.
func NewUnknownParameterError(message string) *Error {
	return New(ErrCodeUnknownParameter, message)
}

// NewMissingFlagError reports an absent required flag.
func NewMissingFlagError(message string) *Error {
	return New(ErrCodeMissingFlag, message)
}

// NewConflictingFlagsError reports mutually exclusive flags.
func NewConflictingFlagsError(message string) *Error {
	return New(ErrCodeConflictingFlags, message)
}

// NewUserNotFoundError reports a filter that references unknown users.
func NewUserNotFoundError(message string) *Error {
	return New(ErrCodeUserNotFound, message)
}

// NewFileNotFoundError reports a missing path.
func NewFileNotFoundError(message string, cause error) *Error {
	return Wrap(ErrCodeFileNotFound, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
