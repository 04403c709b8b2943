//go:build !capped_noencoding

package capped

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler.
func (s String[L]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.s)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves s unchanged.
func (s *String[L]) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := NewString[L](str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s String[L]) MarshalText() ([]byte, error) { return []byte(s.s), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *String[L]) UnmarshalText(text []byte) error {
	if len(text) > sizeOf[L]() {
		return &LengthError[L]{Kind: KindString, Len: len(text)}
	}
	s.s = string(text)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the raw bytes of s.
func (s String[L]) MarshalBinary() ([]byte, error) { return []byte(s.s), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *String[L]) UnmarshalBinary(data []byte) error { return s.UnmarshalText(data) }

// MarshalYAML implements yaml.Marshaler.
func (s String[L]) MarshalYAML() (any, error) { return s.s, nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *String[L]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("capped: line %d: expected a string with length in range 0..=%d", node.Line, sizeOf[L]())
	}
	// Only a plain string scalar holds its decoded bytes in Value.
	if node.ShortTag() == "!!str" && len(node.Value) > sizeOf[L]() {
		return &LengthError[L]{Kind: KindString, Len: len(node.Value)}
	}
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("capped: line %d: %w", node.Line, err)
	}
	v, err := NewString[L](str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalMsg implements msgp.Marshaler.
func (s String[L]) MarshalMsg(b []byte) ([]byte, error) {
	return msgp.AppendString(b, s.s), nil
}

// UnmarshalMsg implements msgp.Unmarshaler. The length is checked before
// the payload is copied.
func (s *String[L]) UnmarshalMsg(b []byte) ([]byte, error) {
	zc, o, err := msgp.ReadStringZC(b)
	if err != nil {
		return b, err
	}
	if len(zc) > sizeOf[L]() {
		return b, &LengthError[L]{Kind: KindString, Len: len(zc)}
	}
	s.s = string(zc)
	return o, nil
}

// Msgsize implements msgp.Sizer.
func (s String[L]) Msgsize() int { return msgp.StringPrefixSize + len(s.s) }

// Value implements driver.Valuer.
func (s String[L]) Value() (driver.Value, error) { return s.s, nil }

// Scan implements sql.Scanner.
func (s *String[L]) Scan(src any) error {
	switch x := src.(type) {
	case string:
		v, err := NewString[L](x)
		if err != nil {
			return err
		}
		*s = v
		return nil
	case []byte:
		return s.UnmarshalText(x)
	case nil:
		return fmt.Errorf("capped: cannot scan NULL into string with length in range 0..=%d", sizeOf[L]())
	default:
		return fmt.Errorf("capped: cannot scan %T into string with length in range 0..=%d", src, sizeOf[L]())
	}
}
