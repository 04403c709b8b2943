package capped

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Unsigned is the set of primitives a Number can wrap.
type Unsigned = constraints.Unsigned

// Limit carries the cap N of a capped type.
//
// Implementations are zero-size types whose Limit method returns a constant:
//
//	type Five struct{}
//
//	func (Five) Limit() uint8 { return 5 }
//
// Limit is called on the zero value of the type, so it must not depend on
// any state. Pointer types are not valid limits.
type Limit[P constraints.Integer] interface {
	Limit() P
}

// Size is the limit of a String (in bytes) or a Seq (in elements).
type Size = Limit[int]

// Range is the half-open interval [Start, End).
type Range[P Unsigned] struct {
	Start P
	End   P
}

// Contains reports whether p lies in r.
func (r Range[P]) Contains(p P) bool { return p >= r.Start && p < r.End }

// String renders r as "Start..End".
func (r Range[P]) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

func limitOf[P Unsigned, L Limit[P]]() P {
	var l L
	return l.Limit()
}

// sizeOf returns the cap of a Size. A negative cap can never be satisfied and
// is treated as a broken Size implementation.
func sizeOf[L Size]() int {
	var l L
	n := l.Limit()
	if n < 0 {
		panic(fmt.Sprintf("capped: negative size limit %d for %T", n, l))
	}
	return n
}
