package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	CodeConflict      ErrorCode = "CONFLICT"

	// Quiz specific errors
	CodeNotConfigured   ErrorCode = "NOT_CONFIGURED"
	CodeLLMServiceError ErrorCode = "LLM_SERVICE_ERROR"
	CodeSubmissionEmpty ErrorCode = "SUBMISSION_EMPTY"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail that is returned to the client alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewConflictError(message string) *DomainError {
	return NewError(CodeConflict, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewNotConfiguredError(message string) *DomainError {
	return NewError(CodeNotConfigured, message, ErrNotConfigured)
}

func NewLLMServiceError(message string, cause error) *DomainError {
	return NewError(CodeLLMServiceError, message, cause)
}

func NewSubmissionEmptyError() *DomainError {
	return NewError(CodeSubmissionEmpty, "No answers submitted", ErrSubmissionEmpty)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Code    ErrorCode   `json:"code,omitempty"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Code: CodeMissingField, Field: field, Message: field + " is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Code: CodeInvalidFormat, Field: field, Message: "invalid " + field, Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}

// ValidationErrors is returned by request validation and rendered as a 400.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	// ErrNotConfigured means no credential is available for the question source.
	ErrNotConfigured = errors.New("GEMINI_API_KEY not configured")

	// ErrInvalidUpstreamResponse means the upstream text held no parseable JSON.
	// It is distinct from a parseable response that produced zero questions.
	ErrInvalidUpstreamResponse = errors.New("invalid JSON response from upstream")

	// ErrEmptyUpstreamResponse means the upstream answered with no text at all.
	ErrEmptyUpstreamResponse = errors.New("empty response from upstream")

	// ErrSubmissionEmpty is the caller-level guard for a submission without answers.
	ErrSubmissionEmpty = errors.New("no answers submitted")
)

// UpstreamError wraps a failure talking to the generative endpoint.
type UpstreamError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ModelNotFoundError reports that the upstream rejected the model identifier.
type ModelNotFoundError struct {
	Model      string
	APIVersion string
	Err        error
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %q not found under %s", e.Model, e.APIVersion)
}

func (e *ModelNotFoundError) Unwrap() error {
	return e.Err
}

// NoModelAvailableError is returned when model discovery finds no usable model.
type NoModelAvailableError struct {
	Listed int
}

func (e *NoModelAvailableError) Error() string {
	return fmt.Sprintf("no gemini model available (%d models listed)", e.Listed)
}
