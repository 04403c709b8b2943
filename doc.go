// Package capped provides values whose size is bounded by a limit that is
// part of their type.
//
// A limit is a zero-size type with a Limit method returning a constant:
//
//	type Ten struct{}
//
//	func (Ten) Limit() uint8 { return 10 }
//
//	type NameLen struct{}
//
//	func (NameLen) Limit() int { return 64 }
//
// Capped values come in three kinds:
//
//	Number[P, L]  an unsigned integer in 0..N (N excluded), with the
//	              aliases U8, U16, U32, U64 and Uint
//	String[L]     a UTF-8 string of at most N bytes
//	Seq[L, T]     a sequence of at most N elements
//
// Numbers exclude N because it is the modulus of WrappingAdd and
// TakeIncrement. Strings and sequences include N because it is a maximum
// count. Values of the same kind with different limits are different types,
// so mixing them is a compile error.
//
// # Construction
//
// Checked constructors return an error that satisfies errors.Is with
// ErrOutOfRange or ErrTooLong:
//
//	n, err := capped.New[Ten](uint8(4))
//	s, err := capped.NewString[NameLen]("hello")
//
// Wrap reduces a number modulo N and never fails. Must turns an error into a
// panic for values known to be valid.
//
// # Encodings
//
// Every capped type implements json.Marshaler, yaml.Marshaler and the msgp
// Marshaler, Unmarshaler and Sizer interfaces, each with its decoding
// counterpart. Number and String also implement encoding.TextMarshaler,
// encoding.BinaryMarshaler, sql.Scanner and driver.Valuer. The limit never
// appears on the wire: a capped value encodes exactly like its bare
// counterpart. Decoding validates against the limit and fails with the same
// errors as the checked constructors, so a decoded value always satisfies
// its bound.
//
// Build with the capped_noencoding tag to drop all encoding support and its
// dependencies.
//
// The codec subpackage selects one of these encodings by name.
package capped
