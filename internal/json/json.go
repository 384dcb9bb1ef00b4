//go:build (linux || darwin || windows) && (amd64 || arm64)

package json

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Unmarshal decodes a JSON payload into v using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// NewDecoder creates a streaming decoder using the current API config.
func NewDecoder(r io.Reader) Decoder {
	return api.NewDecoder(r)
}

// NewEncoder creates a streaming encoder using the current API config.
func NewEncoder(w io.Writer) Encoder {
	return api.NewEncoder(w)
}

// Encoder is a JSON encoder.
type Encoder = sonic.Encoder

// Decoder is a JSON decoder.
type Decoder = sonic.Decoder
