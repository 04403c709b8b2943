package codec

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// MsgPack is a MessagePack codec backed by the github.com/tinylib/msgp runtime.
//
// It works with values that implement msgp.Marshaler (for Marshal) and
// msgp.Unmarshaler (for Unmarshal), which every capped type and any
// msgp-generated struct does.
type MsgPack struct{}

// Marshal encodes the value to MessagePack.
func (MsgPack) Marshal(v any) ([]byte, error) {
	m, ok := v.(msgp.Marshaler)
	if !ok {
		return nil, fmt.Errorf("msgpack: %T does not implement msgp.Marshaler", v)
	}
	var b []byte
	if s, ok := v.(msgp.Sizer); ok {
		b = make([]byte, 0, s.Msgsize())
	}
	return m.MarshalMsg(b)
}

// Unmarshal decodes the MessagePack data into v. Trailing bytes are an error.
func (MsgPack) Unmarshal(data []byte, v any) error {
	u, ok := v.(msgp.Unmarshaler)
	if !ok {
		return fmt.Errorf("msgpack: %T does not implement msgp.Unmarshaler", v)
	}
	rest, err := u.UnmarshalMsg(data)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("msgpack: %d trailing bytes", len(rest))
	}
	return nil
}

// Name returns the unique name of the codec ("msgpack").
func (MsgPack) Name() string { return "msgpack" }
