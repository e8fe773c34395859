package timespec

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	ErrInvalidPreset    = errors.New("invalid preset")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time")
	ErrInvalidUnit      = errors.New("invalid unit")
	ErrInvalidDelta     = errors.New("invalid delta")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrInvalidOffset    = errors.New("invalid offset")
	ErrNonexistentDate  = errors.New("date does not exist")
	ErrConflictingBase  = errors.New("conflicting base time")
)

// Kinds lists the error kinds in the order the CLI checks them.
var Kinds = []error{
	ErrInvalidDelta,
	ErrInvalidUnit,
	ErrInvalidPreset,
	ErrInvalidDate,
	ErrInvalidTime,
	ErrInvalidTimestamp,
	ErrInvalidPrecision,
	ErrInvalidOffset,
	ErrNonexistentDate,
	ErrConflictingBase,
}

// ParseError describes user input that could not be turned into a value.
type ParseError struct {
	Kind   error  // one of the Err* kinds
	Input  string // the offending text
	Reason string // human readable detail, optional
	Err    error  // underlying cause, optional
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s '%s'", e.Kind, e.Input)
	switch {
	case e.Reason != "":
		msg += ": " + e.Reason
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the first of Kinds that err matches, or nil.
func KindOf(err error) error {
	for _, kind := range Kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
