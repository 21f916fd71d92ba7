// Package errors provides a lightweight structured error type (EmeraldError)
// for category-based classification of generation failures in the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a generation error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"
	CategoryModel  ErrorCategory = "model"

	// Output and rendering errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryRender     ErrorCategory = "render"

	// Runtime and infrastructure errors
	CategoryCanceled ErrorCategory = "canceled"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// EmeraldError is a structured error with category, severity and context
type EmeraldError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for EmeraldError
type ContextFields map[string]any

// Error implements the error interface
func (e *EmeraldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *EmeraldError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *EmeraldError) WithContext(key string, value any) *EmeraldError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new EmeraldError
func New(category ErrorCategory, severity ErrorSeverity, message string) *EmeraldError {
	return &EmeraldError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new EmeraldError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *EmeraldError {
	return &EmeraldError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first EmeraldError in err's chain.
func As(err error) (*EmeraldError, bool) {
	var ee *EmeraldError
	if stderrors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ee, ok := As(err); ok {
		return ee.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not an EmeraldError
func GetCategory(err error) ErrorCategory {
	if ee, ok := As(err); ok {
		return ee.Category
	}
	return CategoryInternal
}
