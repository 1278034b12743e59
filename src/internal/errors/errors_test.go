package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeMissingFlag, Message: "no action flag"},
			expected: "[MISSING_FLAG] no action flag",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileNotFound, "failed to open list", errors.New("no such file")),
			expected: "[FILE_NOT_FOUND] failed to open list: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := NewUserNotFoundError("user bob does not exist")
	err2 := NewUserNotFoundError("user eve does not exist")
	err3 := NewConflictingFlagsError("--add and --remove")

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}
	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
	if !errors.Is(fmt.Errorf("run: %w", err1), ErrUserNotFound) {
		t.Errorf("Expected wrapped error to match sentinel")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"direct", NewMissingFlagError("x"), ErrCodeMissingFlag},
		{"wrapped", fmt.Errorf("outer: %w", NewConfigSyntaxError("x")), ErrCodeConfigSyntax},
		{"plain", errors.New("boom"), ErrCodeInternal},
		{"nil", nil, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewFileNotFoundError(t *testing.T) {
	cause := errors.New("stat failed")
	err := NewFileNotFoundError("list file missing", cause)

	if err.Code != ErrCodeFileNotFound {
		t.Errorf("Expected code %v, got %v", ErrCodeFileNotFound, err.Code)
	}
	if err.Message != "list file missing" {
		t.Errorf("Expected message 'list file missing', got %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}
