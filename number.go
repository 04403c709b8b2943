package capped

import (
	"cmp"
	"strconv"
)

// Number is an unsigned P capped to the range [0, N), where N is L's limit.
//
// The zero value is 0, which is valid whenever N > 0. Numbers with different
// limits are different types and cannot be compared with each other; compare
// against the primitive with Equal instead.
type Number[P Unsigned, L Limit[P]] struct {
	v P
}

// U8 is a uint8 capped to [0, N).
type U8[L Limit[uint8]] = Number[uint8, L]

// U16 is a uint16 capped to [0, N).
type U16[L Limit[uint16]] = Number[uint16, L]

// U32 is a uint32 capped to [0, N).
type U32[L Limit[uint32]] = Number[uint32, L]

// U64 is a uint64 capped to [0, N).
type U64[L Limit[uint64]] = Number[uint64, L]

// Uint is a uint capped to [0, N).
type Uint[L Limit[uint]] = Number[uint, L]

// New returns v as a Number if v < N, and a *RangeError otherwise.
//
// The limit is given explicitly and the primitive is inferred from v:
//
//	n, err := capped.New[Five](uint8(4))
func New[L Limit[P], P Unsigned](v P) (Number[P, L], error) {
	if v < limitOf[P, L]() {
		return Number[P, L]{v: v}, nil
	}
	return Number[P, L]{}, &RangeError[P, L]{Value: v}
}

// Wrap returns v mod N. It panics if N is 0.
func Wrap[L Limit[P], P Unsigned](v P) Number[P, L] {
	return Number[P, L]{v: v % limitOf[P, L]()}
}

// Get returns the wrapped value.
func (n Number[P, L]) Get() P { return n.v }

// Equal reports whether n holds p.
func (n Number[P, L]) Equal(p P) bool { return n.v == p }

// Compare returns -1, 0 or +1 depending on whether n is less than, equal to
// or greater than o.
func (n Number[P, L]) Compare(o Number[P, L]) int { return cmp.Compare(n.v, o.v) }

// Less reports whether n < o.
func (n Number[P, L]) Less(o Number[P, L]) bool { return n.v < o.v }

// Range returns [0, N). It may be called on the zero value.
func (n Number[P, L]) Range() Range[P] {
	return Range[P]{End: limitOf[P, L]()}
}

// WrappingAdd returns (n + rhs) mod N. It panics if N is 0.
func (n Number[P, L]) WrappingAdd(rhs P) Number[P, L] {
	limit := limitOf[P, L]()
	return Number[P, L]{v: addMod(n.v, rhs%limit, limit)}
}

// TakeIncrement returns the current value and advances n by one, wrapping to
// 0 after N-1. It is the step of a ring counter.
func (n *Number[P, L]) TakeIncrement() Number[P, L] {
	out := *n
	*n = n.WrappingAdd(1)
	return out
}

// String returns the decimal representation of n.
func (n Number[P, L]) String() string {
	return strconv.FormatUint(uint64(n.v), 10)
}

// addMod returns (a + b) mod m for a, b < m without a wider intermediate.
// On overflow the true sum lies in [2^w, 2m), so subtracting m modulo 2^w
// yields the exact result.
func addMod[P Unsigned](a, b, m P) P {
	s := a + b
	if s < a || s >= m {
		s -= m
	}
	return s
}
