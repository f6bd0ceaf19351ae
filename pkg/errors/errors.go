package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrUnsupportedPercentage reports a tip percentage outside the fixed option set.
	ErrUnsupportedPercentage = stdErrors.New("unsupported tip percentage")
	// ErrNegativeAmount reports a check amount below zero.
	ErrNegativeAmount = stdErrors.New("check amount must not be negative")
	// ErrUnknownTextSize reports a text size name that is not on the scale.
	ErrUnknownTextSize = stdErrors.New("unknown text size")
)

// ParseError represents a failure to decode user supplied text. Source names
// where the text came from: a config file path or a flag such as "--amount".
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a configuration or command input value that
// decoded fine but is not acceptable.
type ValidationError struct {
	Field   string
	Value   any
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// NewValueError constructs a ValidationError that records the rejected value.
func NewValueError(field string, value any, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ValidationError{Field: field, Value: value, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Value != nil {
		msg = fmt.Sprintf("%s (got %v)", msg, e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, msg)
	}
	return fmt.Sprintf("validation error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
