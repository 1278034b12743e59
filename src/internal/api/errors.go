package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeForbidden indicates the client is not allowed to use the API.
	ErrCodeForbidden ErrorCode = "forbidden"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"

	// ErrCodeValidationFailed indicates request or configuration validation failed.
	ErrCodeValidationFailed ErrorCode = "validation_failed"
)

// APIError represents a structured API error response.
type APIError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError for JSON responses.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code ErrorCode, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
		Details: nil,
	}
}

// WithDetails adds details to an APIError.
func (e APIError) WithDetails(details map[string]interface{}) APIError {
	e.Details = details
	return e
}

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err})
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, message))
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter, resource string) {
	WriteError(w, http.StatusNotFound, NewAPIError(ErrCodeNotFound, resource+" not found"))
}

// WriteForbidden writes a 403 Forbidden error.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// WriteDomainError translates an application error into an API error. The
// application error code is reported in details as "error_code", next to any
// extra details given.
func WriteDomainError(w http.ResponseWriter, err error, details map[string]interface{}) {
	code := apperrors.CodeOf(err)

	status, apiCode := http.StatusInternalServerError, ErrCodeInternalError
	switch code {
	case apperrors.ErrCodeMissingFlag, apperrors.ErrCodeConflictingFlags:
		status, apiCode = http.StatusBadRequest, ErrCodeInvalidRequest
	case apperrors.ErrCodeValidation, apperrors.ErrCodeConfigSyntax, apperrors.ErrCodeUnknownParameter:
		status, apiCode = http.StatusBadRequest, ErrCodeValidationFailed
	case apperrors.ErrCodeUserNotFound, apperrors.ErrCodeFileNotFound:
		status, apiCode = http.StatusNotFound, ErrCodeNotFound
	}

	if details == nil {
		details = make(map[string]interface{}, 1)
	}
	details["error_code"] = string(code)

	WriteError(w, status, NewAPIError(apiCode, err.Error()).WithDetails(details))
}
