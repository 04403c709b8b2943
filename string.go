package capped

import (
	"unicode/utf8"
)

// String is a string whose length in bytes lies in 0..=N, where N is L's limit.
//
// The cap counts UTF-8 bytes, not runes. String is a plain value: it is safe
// to copy and compare with ==. Every mutation allocates a new string of exactly
// the resulting length, so the backing storage never exceeds N bytes.
type String[L Size] struct {
	s string
}

// NewString returns s as a String if len(s) <= N, and a *LengthError otherwise.
func NewString[L Size](s string) (String[L], error) {
	if len(s) > sizeOf[L]() {
		return String[L]{}, &LengthError[L]{Kind: KindString, Len: len(s)}
	}
	return String[L]{s: s}, nil
}

// String returns the content of s.
func (s String[L]) String() string { return s.s }

// Len returns the length of s in bytes.
func (s String[L]) Len() int { return len(s.s) }

// IsEmpty reports whether s has length 0.
func (s String[L]) IsEmpty() bool { return len(s.s) == 0 }

// Max returns N.
func (s String[L]) Max() int { return sizeOf[L]() }

// Push appends r if the result stays within N bytes. Invalid runes are
// appended as utf8.RuneError. On error s is unchanged.
func (s *String[L]) Push(r rune) error {
	size := utf8.RuneLen(r)
	if size < 0 {
		r, size = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}
	n := len(s.s) + size
	if n > sizeOf[L]() {
		return &LengthError[L]{Kind: KindString, Len: n}
	}
	buf := make([]byte, len(s.s), n)
	copy(buf, s.s)
	s.s = string(utf8.AppendRune(buf, r))
	return nil
}

// PushString appends str if the result stays within N bytes. The append is
// all or nothing: on error s is unchanged.
func (s *String[L]) PushString(str string) error {
	n := len(s.s) + len(str)
	if n > sizeOf[L]() {
		return &LengthError[L]{Kind: KindString, Len: n}
	}
	if str != "" {
		s.s += str
	}
	return nil
}

// Pop removes and returns the last rune of s. It reports false if s is empty.
func (s *String[L]) Pop() (rune, bool) {
	if s.s == "" {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(s.s)
	s.s = s.s[:len(s.s)-size]
	return r, true
}

// Truncate shortens s to n bytes. It has no effect if n >= s.Len().
// It panics if n is negative or does not lie on a rune boundary.
func (s *String[L]) Truncate(n int) {
	if n < 0 {
		panic("capped: negative truncate length")
	}
	if n >= len(s.s) {
		return
	}
	if !utf8.RuneStart(s.s[n]) {
		panic("capped: truncate length is not on a rune boundary")
	}
	s.s = s.s[:n]
}

// Clear empties s.
func (s *String[L]) Clear() { s.s = "" }
