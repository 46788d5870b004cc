// Package errors provides standardized error handling for the dragd
// application. It defines common error types, constants, and helper
// functions for consistent error creation, wrapping, and handling across
// the application.
//
// The interaction protocol itself never raises errors: unmatched payloads,
// absent ancestors and sub-threshold gestures are no-ops reported through
// boolean results. The types here cover the edges around the protocol —
// configuration, interest-pattern registration, and index validation.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig  = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrConfigNotFound = NewConfigError("configuration not found", "", ConfigNotFound, nil)
	ErrInvalidPattern = NewPatternError("invalid interest pattern", "", nil)
	ErrInvalidIndex   = NewIndexError("index out of range", -1, 0)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	ConfigNotSet
	// Protocol edge kinds
	InvalidPattern
	InvalidIndex
	NoTarget
	// Item store kinds
	ItemsNotFound
	ItemsLoadFailed
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// PatternError represents a rejected drop-target interest pattern
type PatternError struct {
	ApplicationError
	pattern string
}

// NewPatternError creates a new pattern error
func NewPatternError(msg string, pattern string, err error) *PatternError {
	return &PatternError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidPattern,
		},
		pattern: pattern,
	}
}

// Error returns the pattern error message
func (e *PatternError) Error() string {
	if e.pattern != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %q: %v", e.msg, e.pattern, e.err)
		}
		return fmt.Sprintf("%s: %q", e.msg, e.pattern)
	}
	return e.ApplicationError.Error()
}

// Pattern returns the interest pattern associated with the error
func (e *PatternError) Pattern() string {
	return e.pattern
}

// IndexError represents an index outside an ordered collection's range
type IndexError struct {
	ApplicationError
	index int
	count int
}

// NewIndexError creates a new index error
func NewIndexError(msg string, index, count int) *IndexError {
	return &IndexError{
		ApplicationError: ApplicationError{
			msg:  msg,
			kind: InvalidIndex,
		},
		index: index,
		count: count,
	}
}

// Error returns the index error message
func (e *IndexError) Error() string {
	if e.index >= 0 {
		return fmt.Sprintf("%s: index %d, count %d", e.msg, e.index, e.count)
	}
	return e.ApplicationError.Error()
}

// Index returns the offending index
func (e *IndexError) Index() int {
	return e.index
}

// Count returns the collection size at the time of the error
func (e *IndexError) Count() int {
	return e.count
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsConfigNotFound checks if the error is a missing configuration error
func IsConfigNotFound(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == ConfigNotFound
	}
	return false
}

// IsInvalidPattern checks if the error is an invalid interest pattern error
func IsInvalidPattern(err error) bool {
	var patErr *PatternError
	return errors.As(err, &patErr)
}

// IsInvalidIndex checks if the error is an index range error
func IsInvalidIndex(err error) bool {
	var idxErr *IndexError
	return errors.As(err, &idxErr)
}
