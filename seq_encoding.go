//go:build !capped_noencoding

package capped

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/capped/internal/conv"
)

// MarshalJSON implements json.Marshaler. A nil Seq encodes as an empty
// array, since the cap is invisible on the wire.
func (s Seq[L, T]) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// UnmarshalJSON implements json.Unmarshaler. Elements are decoded one at a
// time and decoding fails as soon as element N+1 is reached. A JSON null
// leaves s unchanged.
func (s *Seq[L, T]) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("capped: expected a JSON array with at most %d elements, got %v", sizeOf[L](), tok)
	}
	limit := sizeOf[L]()
	items := make([]T, 0, min(limit, maxPrealloc))
	for dec.More() {
		if len(items) >= limit {
			return &LengthError[L]{Kind: KindSequence, Len: len(items) + 1, AtLeast: true}
		}
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("capped: element %d: %w", len(items), err)
		}
		items = appendBounded(items, v, limit)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("capped: unexpected data after JSON array")
	}
	s.items = items
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Seq[L, T]) MarshalYAML() (any, error) {
	if s.items == nil {
		return []T{}, nil
	}
	return s.items, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The element count is checked
// before any element is decoded.
func (s *Seq[L, T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("capped: line %d: expected a sequence with at most %d elements", node.Line, sizeOf[L]())
	}
	if len(node.Content) > sizeOf[L]() {
		return &LengthError[L]{Kind: KindSequence, Len: len(node.Content)}
	}
	items := make([]T, len(node.Content))
	for i, child := range node.Content {
		if err := child.Decode(&items[i]); err != nil {
			return fmt.Errorf("capped: element %d: %w", i, err)
		}
	}
	s.items = items
	return nil
}

// MarshalMsg implements msgp.Marshaler. Elements implementing msgp.Marshaler
// encode themselves; other elements go through msgp.AppendIntf.
func (s Seq[L, T]) MarshalMsg(b []byte) ([]byte, error) {
	sz, err := conv.IntToUint32(len(s.items))
	if err != nil {
		return b, err
	}
	o := msgp.AppendArrayHeader(b, sz)
	for i := range s.items {
		if m, ok := any(s.items[i]).(msgp.Marshaler); ok {
			o, err = m.MarshalMsg(o)
		} else {
			o, err = msgp.AppendIntf(o, s.items[i])
		}
		if err != nil {
			return b, fmt.Errorf("capped: element %d: %w", i, err)
		}
	}
	return o, nil
}

// UnmarshalMsg implements msgp.Unmarshaler. The array header is checked
// against N before any element is decoded. Elements must implement
// msgp.Unmarshaler through their pointer, or be a string, bool, float or
// fixed-width integer.
func (s *Seq[L, T]) UnmarshalMsg(b []byte) ([]byte, error) {
	hdr, o, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, err
	}
	sz, err := conv.Uint32ToInt(hdr)
	if err != nil {
		return b, err
	}
	limit := sizeOf[L]()
	if sz > limit {
		return b, &LengthError[L]{Kind: KindSequence, Len: sz}
	}
	items := make([]T, 0, min(sz, maxPrealloc))
	for i := range sz {
		var v T
		if o, err = unmarshalMsgElem(&v, o); err != nil {
			return b, fmt.Errorf("capped: element %d: %w", i, err)
		}
		items = appendBounded(items, v, limit)
	}
	s.items = items
	return o, nil
}

// Msgsize implements msgp.Sizer.
func (s Seq[L, T]) Msgsize() int {
	size := msgp.ArrayHeaderSize
	for i := range s.items {
		if m, ok := any(s.items[i]).(msgp.Sizer); ok {
			size += m.Msgsize()
		} else {
			size += msgp.GuessSize(s.items[i])
		}
	}
	return size
}

func unmarshalMsgElem[T any](dst *T, b []byte) ([]byte, error) {
	var err error
	switch p := any(dst).(type) {
	case msgp.Unmarshaler:
		return p.UnmarshalMsg(b)
	case *string:
		*p, b, err = msgp.ReadStringBytes(b)
	case *bool:
		*p, b, err = msgp.ReadBoolBytes(b)
	case *float32:
		*p, b, err = msgp.ReadFloat32Bytes(b)
	case *float64:
		*p, b, err = msgp.ReadFloat64Bytes(b)
	case *int:
		*p, b, err = msgp.ReadIntBytes(b)
	case *int8:
		*p, b, err = msgp.ReadInt8Bytes(b)
	case *int16:
		*p, b, err = msgp.ReadInt16Bytes(b)
	case *int32:
		*p, b, err = msgp.ReadInt32Bytes(b)
	case *int64:
		*p, b, err = msgp.ReadInt64Bytes(b)
	case *uint:
		*p, b, err = msgp.ReadUintBytes(b)
	case *uint8:
		*p, b, err = msgp.ReadUint8Bytes(b)
	case *uint16:
		*p, b, err = msgp.ReadUint16Bytes(b)
	case *uint32:
		*p, b, err = msgp.ReadUint32Bytes(b)
	case *uint64:
		*p, b, err = msgp.ReadUint64Bytes(b)
	default:
		return b, fmt.Errorf("capped: unsupported msgpack element type %T", *dst)
	}
	return b, err
}
