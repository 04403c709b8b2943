//go:build !capped_noencoding

package capped

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/capped/internal/conv"
)

// fromUint64 narrows a decoded value to P, then applies the cap.
func fromUint64[P Unsigned, L Limit[P]](v uint64) (Number[P, L], error) {
	p, err := conv.Narrow[P](v)
	if err != nil {
		return Number[P, L]{}, fmt.Errorf("%w: number %d for range %s: %w", ErrOutOfRange, v, Number[P, L]{}.Range(), err)
	}
	return New[L](p)
}

func fromInt64[P Unsigned, L Limit[P]](v int64) (Number[P, L], error) {
	p, err := conv.FromInt64[P](v)
	if err != nil {
		return Number[P, L]{}, fmt.Errorf("%w: number %d for range %s: %w", ErrOutOfRange, v, Number[P, L]{}.Range(), err)
	}
	return New[L](p)
}

func parseNumber[P Unsigned, L Limit[P]](text []byte) (Number[P, L], error) {
	s := string(text)
	v, err := strconv.ParseUint(s, 10, 64)
	if err == nil {
		return fromUint64[P, L](v)
	}
	i, ierr := strconv.ParseInt(s, 10, 64)
	if ierr == nil {
		return fromInt64[P, L](i)
	}
	if errors.Is(err, strconv.ErrRange) || errors.Is(ierr, strconv.ErrRange) {
		return Number[P, L]{}, fmt.Errorf("%w: number %s for range %s: %w", ErrOutOfRange, s, Number[P, L]{}.Range(), err)
	}
	return Number[P, L]{}, fmt.Errorf("capped: invalid number %q: %w", s, err)
}

// MarshalJSON implements json.Marshaler.
func (n Number[P, L]) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(n.v), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves n unchanged.
func (n *Number[P, L]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	v, err := parseNumber[P, L](data)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Number[P, L]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(n.v), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number[P, L]) UnmarshalText(text []byte) error {
	v, err := parseNumber[P, L](text)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler as a uvarint.
func (n Number[P, L]) MarshalBinary() ([]byte, error) {
	return binary.AppendUvarint(nil, uint64(n.v)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number[P, L]) UnmarshalBinary(data []byte) error {
	v, size := binary.Uvarint(data)
	if size <= 0 {
		return errors.New("capped: invalid uvarint")
	}
	if size != len(data) {
		return fmt.Errorf("capped: %d trailing bytes after uvarint", len(data)-size)
	}
	out, err := fromUint64[P, L](v)
	if err != nil {
		return err
	}
	*n = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (n Number[P, L]) MarshalYAML() (any, error) {
	return uint64(n.v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number[P, L]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("capped: line %d: expected a number in range %s", node.Line, n.Range())
	}
	if tag := node.ShortTag(); tag != "!!int" {
		return fmt.Errorf("capped: line %d: %s %q is not an integer in range %s", node.Line, tag, node.Value, n.Range())
	}
	var i int64
	if err := node.Decode(&i); err == nil {
		v, err := fromInt64[P, L](i)
		if err != nil {
			return err
		}
		*n = v
		return nil
	}
	var u uint64
	if err := node.Decode(&u); err != nil {
		return fmt.Errorf("capped: line %d: %w", node.Line, err)
	}
	v, err := fromUint64[P, L](u)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalMsg implements msgp.Marshaler.
func (n Number[P, L]) MarshalMsg(b []byte) ([]byte, error) {
	return msgp.AppendUint64(b, uint64(n.v)), nil
}

// UnmarshalMsg implements msgp.Unmarshaler. Any unsigned encoding is
// accepted as long as the value fits P.
func (n *Number[P, L]) UnmarshalMsg(b []byte) ([]byte, error) {
	u, o, err := msgp.ReadUint64Bytes(b)
	if err != nil {
		var below msgp.UintBelowZero
		if errors.As(err, &below) {
			return b, fmt.Errorf("%w: number %d for range %s: %w", ErrOutOfRange, below.Value, n.Range(), err)
		}
		return b, err
	}
	v, err := fromUint64[P, L](u)
	if err != nil {
		return b, err
	}
	*n = v
	return o, nil
}

// Msgsize implements msgp.Sizer.
func (n Number[P, L]) Msgsize() int { return msgp.Uint64Size }

// Value implements driver.Valuer.
func (n Number[P, L]) Value() (driver.Value, error) {
	return conv.ToInt64(n.v)
}

// Scan implements sql.Scanner.
func (n *Number[P, L]) Scan(src any) error {
	var (
		v   Number[P, L]
		err error
	)
	switch x := src.(type) {
	case int64:
		v, err = fromInt64[P, L](x)
	case uint64:
		v, err = fromUint64[P, L](x)
	case []byte:
		v, err = parseNumber[P, L](x)
	case string:
		v, err = parseNumber[P, L]([]byte(x))
	case nil:
		return fmt.Errorf("capped: cannot scan NULL into number in range %s", n.Range())
	default:
		return fmt.Errorf("capped: cannot scan %T into number in range %s", src, n.Range())
	}
	if err != nil {
		return err
	}
	*n = v
	return nil
}
