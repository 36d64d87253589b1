package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout loading.
var (
	// ErrDuplicateWidget is returned when a layout defines the same widget id twice.
	ErrDuplicateWidget = errors.New("duplicate widget id")

	// ErrEmptyLayout is returned when a layout defines no widgets.
	ErrEmptyLayout = errors.New("layout defines no widgets")
)

// ParseError describes a malformed layout file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string

	// Message is a human-readable description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing layout %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
