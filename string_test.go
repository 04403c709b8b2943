package capped

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/capped/testutil"
)

func TestStringManipulateOK(t *testing.T) {
	s, err := NewString[size5]("abc")
	require.NoError(t, err)

	require.NoError(t, s.Push('d'))
	assert.Equal(t, "abcd", s.String())

	r, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 'd', r)
	assert.Equal(t, "abc", s.String())

	require.NoError(t, s.PushString("de"))
	assert.Equal(t, "abcde", s.String())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 5, s.Max())

	s.Truncate(2)
	assert.Equal(t, "ab", s.String())

	s.Truncate(10)
	assert.Equal(t, "ab", s.String())

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.String())

	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestStringManipulateErr(t *testing.T) {
	_, err := NewString[size3]("abcd")
	assert.ErrorIs(t, err, ErrTooLong)

	// The emoji takes four bytes, so the string exceeds the cap.
	_, err = NewString[size3]("ab😃")
	assert.ErrorIs(t, err, ErrTooLong)

	s, err := NewString[size3]("hi")
	require.NoError(t, err)

	assert.Error(t, s.PushString("abc"))
	assert.Equal(t, "hi", s.String())

	require.NoError(t, s.Push('h'))
	assert.Equal(t, "hih", s.String())

	err = s.Push('h')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length 4")
	assert.Contains(t, err.Error(), "0..=3")

	var le *LengthError[size3]
	require.ErrorAs(t, err, &le)
	assert.Equal(t, KindString, le.Kind)
	assert.Equal(t, 4, le.Len)

	assert.Error(t, s.Push('h'))
	assert.Equal(t, "hih", s.String())
}

func TestStringPushCountsBytes(t *testing.T) {
	s, err := NewString[size3]("a")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Push('€'), ErrTooLong)
	assert.Equal(t, "a", s.String())

	require.NoError(t, s.Push('é'))
	assert.Equal(t, 3, s.Len())

	r, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 'é', r)
	assert.Equal(t, "a", s.String())
}

func TestStringPushInvalidRune(t *testing.T) {
	var s String[size5]
	require.NoError(t, s.Push(-1))
	assert.Equal(t, "�", s.String())
	assert.Equal(t, 3, s.Len())
}

func TestStringTruncatePanics(t *testing.T) {
	s := Must(NewString[size8]("aé"))

	assert.Panics(t, func() { s.Truncate(2) })
	assert.Panics(t, func() { s.Truncate(-1) })
	assert.Equal(t, "aé", s.String())

	s.Truncate(1)
	assert.Equal(t, "a", s.String())
}

func TestStringValueSemantics(t *testing.T) {
	a := Must(NewString[size8]("ab"))
	b := a
	require.NoError(t, b.PushString("cd"))

	assert.Equal(t, "ab", a.String())
	assert.Equal(t, "abcd", b.String())
	assert.True(t, a == Must(NewString[size8]("ab")))
}

func TestStringZeroSize(t *testing.T) {
	var s String[size0]
	assert.ErrorIs(t, s.Push('a'), ErrTooLong)
	assert.NoError(t, s.PushString(""))

	_, err := NewString[size0]("")
	assert.NoError(t, err)
}

func TestStringNegativeSizePanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = NewString[sizeNeg]("") })
}

func TestPushStringProperty(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for range 500 {
		s := Must(NewString[size8](rng.UTF8String(rng.Intn(3))))
		old := s.String()
		add := rng.UTF8String(rng.Intn(4))

		err := s.PushString(add)
		if len(old)+len(add) <= 8 {
			require.NoError(t, err)
			assert.Equal(t, old+add, s.String())
		} else {
			require.ErrorIs(t, err, ErrTooLong)
			assert.Equal(t, old, s.String())
		}
	}
}

func TestPushProperty(t *testing.T) {
	rng := testutil.NewRNG(4711)
	var s String[size8]
	var want strings.Builder
	for range 200 {
		r := []rune(rng.UTF8String(1))[0]
		if err := s.Push(r); err == nil {
			want.WriteRune(r)
		} else {
			assert.Greater(t, want.Len()+len(string(r)), 8)
			assert.Equal(t, want.String(), s.String())
			s.Clear()
			want.Reset()
		}
		assert.Equal(t, want.String(), s.String())
		assert.LessOrEqual(t, s.Len(), 8)
	}
}
