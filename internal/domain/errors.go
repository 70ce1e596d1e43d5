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
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput       ErrorCode = "INVALID_INPUT"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodePreconditionFailed ErrorCode = "PRECONDITION_FAILED"

	// Generation and distribution errors
	CodeLLMServiceError  ErrorCode = "LLM_SERVICE_ERROR"
	CodeGenerationSchema ErrorCode = "GENERATION_SCHEMA_ERROR"
	CodeStorage          ErrorCode = "STORAGE_ERROR"
	CodePublish          ErrorCode = "PUBLISH_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
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

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewConflictError(message string, err error) *DomainError {
	return NewError(CodeConflict, message, err)
}

func NewPreconditionFailedError(message string) *DomainError {
	return NewError(CodePreconditionFailed, message, nil)
}

func NewLLMServiceError(err error) *DomainError {
	return NewError(CodeLLMServiceError, "Failed to process with LLM service", err)
}

// NewGenerationSchemaError marks model output that did not satisfy the
// expected document shape. Jobs treat it as non-retriable.
func NewGenerationSchemaError(err error) *DomainError {
	return NewError(CodeGenerationSchema, "Generated content failed schema validation", err)
}

func NewStorageError(err error) *DomainError {
	return NewError(CodeStorage, "Failed to store object", err)
}

func NewPublishError(err error) *DomainError {
	return NewError(CodePublish, "Failed to publish to channel", err)
}

// HasCode reports whether err wraps a DomainError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// ValidationError describes a single failed field rule.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by validators; it satisfies error.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
