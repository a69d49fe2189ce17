package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the kinds of failures the simulator can produce
type ErrorCategory string

const (
	// Input parameter outside its documented domain
	ErrorCategoryValidation ErrorCategory = "VALIDATION"
	// Compounding produced a non-finite balance
	ErrorCategoryOverflow ErrorCategory = "OVERFLOW"
	// Bad configuration file or environment
	ErrorCategoryConfig ErrorCategory = "CONFIG"
)

// SimError is a categorized error with component and operation context
type SimError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *SimError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s in %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s in %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *SimError) Unwrap() error {
	return e.Underlying
}

// New creates a new categorized simulator error
func New(category ErrorCategory, component, operation, message string) *SimError {
	return &SimError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// Wrap wraps an existing error with simulator error context
func Wrap(err error, category ErrorCategory, component, operation string) *SimError {
	if err == nil {
		return nil
	}
	return &SimError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
	}
}

// Common error constructors

func NewValidationError(component, operation, message string) *SimError {
	return New(ErrorCategoryValidation, component, operation, message)
}

func NewOverflowError(component, operation, message string) *SimError {
	return New(ErrorCategoryOverflow, component, operation, message)
}

func NewConfigError(component, operation, message string) *SimError {
	return New(ErrorCategoryConfig, component, operation, message)
}

// Category extracts the category from any error in the chain, or "" if none
func Category(err error) ErrorCategory {
	var simErr *SimError
	if stderrors.As(err, &simErr) {
		return simErr.Category
	}
	return ""
}

// IsValidation reports whether err is (or wraps) an invalid-input error
func IsValidation(err error) bool {
	return Category(err) == ErrorCategoryValidation
}

// IsOverflow reports whether err is (or wraps) a numeric-overflow error
func IsOverflow(err error) bool {
	return Category(err) == ErrorCategoryOverflow
}

// IsConfig reports whether err is (or wraps) a configuration error
func IsConfig(err error) bool {
	return Category(err) == ErrorCategoryConfig
}
