package capped

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every error reporting a number outside [0, N).
	ErrOutOfRange = errors.New("capped: value out of range")

	// ErrTooLong is matched by every error reporting a string or sequence longer than N.
	ErrTooLong = errors.New("capped: length exceeds limit")
)

// RangeError indicates a value that does not lie in [0, N) for Number[P, L].
//
// The valid range is recovered from L for display; the error itself only
// stores the rejected value.
type RangeError[P Unsigned, L Limit[P]] struct {
	Value P
}

func (e *RangeError[P, L]) Error() string {
	return fmt.Sprintf("value %d is not in range %s", e.Value, Number[P, L]{}.Range())
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError[P, L]) Is(target error) bool { return target == ErrOutOfRange }

// Container kinds reported by LengthError.
const (
	KindString   = "string"
	KindSequence = "sequence"
)

// LengthError indicates a string or sequence whose length would exceed N.
type LengthError[L Size] struct {
	// Kind is KindString or KindSequence.
	Kind string

	// Len is the rejected length.
	Len int

	// AtLeast is set when decoding stopped early and Len is a lower bound.
	AtLeast bool
}

func (e *LengthError[L]) Error() string {
	op := ""
	if e.AtLeast {
		op = ">= "
	}
	return fmt.Sprintf("%s length %s%d must be in range 0..=%d", e.Kind, op, e.Len, sizeOf[L]())
}

// Is reports whether target is ErrTooLong.
func (e *LengthError[L]) Is(target error) bool { return target == ErrTooLong }

// Must returns v or panics if err is non-nil. It is meant for values known
// to be in range, such as constants in tests and examples.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
