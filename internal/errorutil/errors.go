// Package errorutil provides error kinds and wrapping helpers shared by all packages.
package errorutil

//go:generate errtrace -w .

import (
	"errors"
	"fmt"
)

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

// NewWrapperError creates or wraps an error with a sentinel error.
// It supports multiple argument patterns:
//   - No args: returns sentinel
//   - error arg: wraps with sentinel (unless already wrapped)
//   - string arg: formats as message with sentinel
//   - string + args: formats with Sprintf then wraps with sentinel
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

// Error kinds.
const (
	// ErrInvalidArgument is an error returned when an invalid argument is provided.
	ErrInvalidArgument Error = "invalid argument"
	// ErrValue is returned when an argument has the right type but an inappropriate value.
	ErrValue Error = "value error"
	// ErrType is returned when an argument has an unsupported type or shape.
	ErrType Error = "type error"
	// ErrIndex is returned when an index is out of the sequence bounds.
	ErrIndex Error = "index out of range"
	// ErrLookup is returned when a codec or an error handler can not be found by name.
	ErrLookup Error = "lookup error"
	// ErrUnicodeDecode is returned when malformed input is decoded with the strict policy.
	ErrUnicodeDecode Error = "unicode decode error"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// NewValueError creates a new error with [ErrValue] or wraps provided error with [ErrValue].
func NewValueError(args ...any) error {
	return NewWrapperError(ErrValue, args...) //errtrace:skip
}

// NewTypeError creates a new error with [ErrType] or wraps provided error with [ErrType].
func NewTypeError(args ...any) error {
	return NewWrapperError(ErrType, args...) //errtrace:skip
}

// NewIndexError creates a new error with [ErrIndex] or wraps provided error with [ErrIndex].
func NewIndexError(args ...any) error {
	return NewWrapperError(ErrIndex, args...) //errtrace:skip
}

// NewLookupError creates a new error with [ErrLookup] or wraps provided error with [ErrLookup].
func NewLookupError(args ...any) error {
	return NewWrapperError(ErrLookup, args...) //errtrace:skip
}

// Kind returns the first error kind matched by err, or an empty Error if none matches.
// [ErrUnicodeDecode] is checked before [ErrValue] since decode errors match both.
func Kind(err error) Error {
	for _, k := range [...]Error{ErrUnicodeDecode, ErrInvalidArgument, ErrValue, ErrType, ErrIndex, ErrLookup} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ""
}
