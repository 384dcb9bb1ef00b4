//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	"encoding/json"
	"io"
)

// Unmarshal decodes a JSON payload into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// NewDecoder creates a streaming decoder.
func NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

// NewEncoder creates a streaming encoder.
func NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

// Encoder is a JSON encoder.
type Encoder interface {
	Encode(v any) error
}

// Decoder is a JSON decoder.
type Decoder interface {
	Decode(v any) error
	More() bool
}
