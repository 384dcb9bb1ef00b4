package expect

import (
	"fmt"
	"io"

	"go.dw1.io/guard/internal/json"
)

// Config is the serialisable form of a check site's options, for reading
// check behaviour from a configuration file:
//
//	{"policy": "log", "json": true}
type Config struct {
	Policy     Policy `json:"policy"`
	JSON       bool   `json:"json,omitempty"`
	NoLocation bool   `json:"no_location,omitempty"`
	ExitCode   int    `json:"exit_code,omitempty"`
}

// ParseConfig decodes a JSON configuration. A missing "policy" means
// [DefaultPolicy].
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{Policy: DefaultPolicy}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("expect: parse config: %w", err)
	}

	return cfg, nil
}

// ReadConfig is like [ParseConfig] but reads a single JSON object from r.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := Config{Policy: DefaultPolicy}
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("expect: read config: %w", err)
	}

	return cfg, nil
}

// Options returns the options described by c.
func (c Config) Options() []Option {
	opts := []Option{WithPolicy(c.Policy)}

	if c.JSON {
		opts = append(opts, WithJSON())
	}

	if c.NoLocation {
		opts = append(opts, WithoutLocation())
	}

	if c.ExitCode != 0 {
		opts = append(opts, WithExitCode(c.ExitCode))
	}

	return opts
}

// Checker returns a [Checker] configured by c. Extra options are applied
// after c's, e.g. to set the output.
func (c Config) Checker(opts ...Option) Checker {
	return New(append(c.Options(), opts...)...)
}
