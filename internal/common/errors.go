package common

import (
	"errors"
	"fmt"
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

// Failure categories. Every error leaving a component wraps exactly one of
// these so the server boundary can map it to a status code.
var (
	ErrConfiguration     = errors.New("configuration error")
	ErrDocumentParse     = errors.New("document parse error")
	ErrExtractionService = errors.New("extraction service error")
	ErrExtractionParse   = errors.New("extraction parse error")
	ErrUpsert            = errors.New("upsert error")
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// DocumentParseError wraps a decoder failure, keeping the original message.
func DocumentParseError(cause error) error {
	return NewAppError("DOCUMENT_PARSE", "failed to parse document", fmt.Errorf("%w: %w", ErrDocumentParse, cause))
}

// ServiceError wraps a vendor HTTP failure with the provider status and message.
func ServiceError(provider string, status int, message string) error {
	return NewAppError("EXTRACTION_SERVICE",
		fmt.Sprintf("%s status %d: %s", provider, status, message),
		ErrExtractionService)
}
