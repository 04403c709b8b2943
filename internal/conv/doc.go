// Package conv provides safe integer conversions between widths.
//
// Every function reports an error instead of truncating or wrapping, which
// makes them suitable for values decoded from untrusted input: wire payloads,
// database columns, length prefixes.
//
// For conversions that are provably safe by construction (e.g. a value already
// known to be below a smaller limit), use direct type casts instead.
package conv
