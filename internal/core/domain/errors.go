package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent alignment failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidVolume indicates a volume token is not a non-negative decimal number.
	ErrInvalidVolume = errors.New("invalid volume")

	// ErrDuplicateName indicates a ROI name appears twice in a volume list.
	// Index lists never produce this error; they resolve duplicates by overwrite.
	ErrDuplicateName = errors.New("duplicate ROI name")

	// ErrUnsupportedFormat indicates an unknown report or alias file format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrHistoryUnavailable indicates run history is not configured.
	ErrHistoryUnavailable = errors.New("run history unavailable")
)

// ParseError describes a list line that could not be turned into a record.
type ParseError struct {
	// Line is the 1-based line number within the input stream.
	Line int

	// Token is the offending token.
	Token string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
