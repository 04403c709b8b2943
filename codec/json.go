package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Capped values implement json.Marshaler and json.Unmarshaler, so range and
// length checks run during Unmarshal and surface as its error.
//
// If you need the most portable/lowest-dependency option, use JSON.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
