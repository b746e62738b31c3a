package domain

import (
	"errors"
	"fmt"
)

// Error types for domain-specific errors
type ErrorType string

const (
	ErrorTypeFetch             ErrorType = "fetch"
	ErrorTypePDFDecode         ErrorType = "pdf_decode"
	ErrorTypeSchema            ErrorType = "schema"
	ErrorTypeCapability        ErrorType = "capability"
	ErrorTypeCapabilityTimeout ErrorType = "capability_timeout"
	ErrorTypeValidation        ErrorType = "validation"
	ErrorTypeConfig            ErrorType = "config"
	ErrorTypeIO                ErrorType = "io"
)

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new domain error
func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// FetchError is returned when a URL yields a terminal non-success status.
// The URL and status code are part of the message so skip reasons stay
// meaningful in run reports.
func FetchError(url string, statusCode int) *DomainError {
	return NewError(ErrorTypeFetch, fmt.Sprintf("failed to fetch %s, status code: %d", url, statusCode), nil)
}

// PDFDecodeError is returned when fetched bytes cannot be opened as a PDF.
func PDFDecodeError(message string, err error) *DomainError {
	return NewError(ErrorTypePDFDecode, message, err)
}

// SchemaError is returned when the extraction response violates the menu
// schema contract. Always fatal for the run.
func SchemaError(message string, err error) *DomainError {
	return NewError(ErrorTypeSchema, message, err)
}

// CapabilityError is returned when the extraction capability fails terminally.
func CapabilityError(message string, err error) *DomainError {
	return NewError(ErrorTypeCapability, message, err)
}

// CapabilityTimeoutError is returned when the extraction capability does not
// respond within the configured deadline.
func CapabilityTimeoutError(message string, err error) *DomainError {
	return NewError(ErrorTypeCapabilityTimeout, message, err)
}

func ValidationError(message string, err error) *DomainError {
	return NewError(ErrorTypeValidation, message, err)
}

func ConfigError(message string, err error) *DomainError {
	return NewError(ErrorTypeConfig, message, err)
}

func IOError(message string, err error) *DomainError {
	return NewError(ErrorTypeIO, message, err)
}

// IsErrorType reports whether err is a DomainError of the given type.
func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type == errType
	}
	return false
}
