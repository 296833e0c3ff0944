// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeNotFound indicates an unknown or inactive service component
	TypeNotFound Type = "NOT_FOUND"

	// TypeNoPricingRule indicates that no pricing rule band matched
	TypeNoPricingRule Type = "NO_PRICING_RULE"

	// TypeInvalidTurnover indicates a malformed turnover band string
	TypeInvalidTurnover Type = "INVALID_TURNOVER"

	// TypeRuleConflict indicates that several active rules qualified
	// where exactly one was required
	TypeRuleConflict Type = "RULE_CONFLICT"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeStorage indicates a catalog/rule storage error
	TypeStorage Type = "STORAGE_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// ComponentNotFound creates a not found error for a service component
func ComponentNotFound(code string) *Error {
	return Newf(TypeNotFound, "service component %s not found", code)
}

// NoPricingRule creates an error for a turnover value no band covers
func NoPricingRule(code, turnover string) *Error {
	return Newf(TypeNoPricingRule, "no pricing rule found for %s at turnover %s", code, turnover)
}

// InvalidTurnover creates a parse error for a malformed band string
func InvalidTurnover(band string) *Error {
	return Newf(TypeInvalidTurnover, "invalid turnover band format: %q", band)
}

// RuleConflict creates an error for ambiguous rule resolution
func RuleConflict(code string, count int) *Error {
	return Newf(TypeRuleConflict, "%d active transaction rules qualify for %s, expected exactly one", count, code)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Storage creates a storage error
func Storage(message string, cause error) *Error {
	return Wrap(TypeStorage, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
