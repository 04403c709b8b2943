package conv

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Narrow converts v to the unsigned type P, failing if v does not fit.
func Narrow[P constraints.Unsigned](v uint64) (P, error) {
	p := P(v)
	if uint64(p) != v {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (too large)", v, p)
	}
	return p, nil
}

// FromInt64 converts v to the unsigned type P, failing if v is negative or
// does not fit.
func FromInt64[P constraints.Unsigned](v int64) (P, error) {
	if v < 0 {
		var p P
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (negative)", v, p)
	}
	return Narrow[P](uint64(v))
}

// ToInt64 converts the unsigned v to int64, failing if v exceeds math.MaxInt64.
func ToInt64[P constraints.Unsigned](v P) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", uint64(v))
	}
	return int64(v), nil
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
