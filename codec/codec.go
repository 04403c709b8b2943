// Package codec centralizes wire encodings for capped values.
//
// Every built-in codec drives the encoding methods of the capped types, so a
// value that decodes without error is guaranteed to satisfy its cap. Codec
// names are stable and can be stored alongside encoded data to select the
// matching codec when reading it back.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "msgpack":
		return MsgPack{}, true
	case "yaml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// Names returns the names of all built-in codecs.
func Names() []string {
	return []string{"json", "go-json", "msgpack", "yaml"}
}

// MustMarshal is a helper for tests, benchmarks and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
