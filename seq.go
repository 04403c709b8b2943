package capped

import (
	"iter"
	"slices"
)

// maxPrealloc bounds the capacity reserved up front when the final length
// is not known yet.
const maxPrealloc = 1024

// Seq is a sequence of T whose length lies in 0..=N, where N is L's limit.
//
// The capacity of the backing array never exceeds N. Mutating methods
// have pointer receivers and a Seq shares its backing array when copied:
// use Clone to obtain an independent copy.
type Seq[L Size, T any] struct {
	items []T
}

// NewSeq returns items as a Seq if len(items) <= N, and a *LengthError
// otherwise. The Seq takes ownership of items; its capacity is clipped to
// its length.
func NewSeq[L Size, T any](items []T) (Seq[L, T], error) {
	if len(items) > sizeOf[L]() {
		return Seq[L, T]{}, &LengthError[L]{Kind: KindSequence, Len: len(items)}
	}
	return Seq[L, T]{items: slices.Clip(items)}, nil
}

// Len returns the number of elements in s.
func (s Seq[L, T]) Len() int { return len(s.items) }

// IsEmpty reports whether s has no elements.
func (s Seq[L, T]) IsEmpty() bool { return len(s.items) == 0 }

// Max returns N.
func (s Seq[L, T]) Max() int { return sizeOf[L]() }

// At returns the element at index i. It panics if i is out of bounds.
func (s Seq[L, T]) At(i int) T { return s.items[i] }

// Slice returns the elements of s. The returned slice aliases s: elements
// may be modified in place, but appending to it does not change s.
func (s Seq[L, T]) Slice() []T { return s.items }

// All returns an iterator over the index-element pairs of s.
func (s Seq[L, T]) All() iter.Seq2[int, T] { return slices.All(s.items) }

// Clone returns a copy of s that does not share its backing array.
func (s Seq[L, T]) Clone() Seq[L, T] {
	if s.items == nil {
		return Seq[L, T]{}
	}
	return Seq[L, T]{items: slices.Clip(slices.Clone(s.items))}
}

// Push appends v if s holds fewer than N elements and returns the zero value
// and false. If s is full, v is returned unchanged along with true.
func (s *Seq[L, T]) Push(v T) (T, bool) {
	if len(s.items) >= sizeOf[L]() {
		return v, true
	}
	s.items = appendBounded(s.items, v, sizeOf[L]())
	var zero T
	return zero, false
}

// Pop removes and returns the last element. It reports false if s is empty.
func (s *Seq[L, T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return v, true
}

// Truncate keeps the first n elements. It has no effect if n >= s.Len().
// It panics if n is negative.
func (s *Seq[L, T]) Truncate(n int) {
	if n < 0 {
		panic("capped: negative truncate length")
	}
	if n >= len(s.items) {
		return
	}
	clear(s.items[n:])
	s.items = s.items[:n]
}

// Clear removes all elements, keeping the backing array.
func (s *Seq[L, T]) Clear() { s.Truncate(0) }

// EqualSeq reports whether a and b hold the same elements in the same order.
func EqualSeq[L Size, T comparable](a, b Seq[L, T]) bool {
	return slices.Equal(a.items, b.items)
}

// appendBounded appends v to items, growing the backing array geometrically
// but never past limit. The caller guarantees len(items) < limit.
func appendBounded[T any](items []T, v T, limit int) []T {
	if len(items) < cap(items) {
		return append(items, v)
	}
	grown := make([]T, len(items), min(max(2*cap(items), 4), limit))
	copy(grown, items)
	return append(grown, v)
}
