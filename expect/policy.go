package expect

import (
	"fmt"
	"strconv"
	"strings"
)

// Policy selects the reaction to a failed check.
type Policy uint8

const (
	// Ignore makes failed checks have no effect.
	Ignore Policy = iota
	// Log reports failed checks on the diagnostic output and continues.
	Log
	// RaiseError makes failed checks return an [*Error].
	RaiseError
	// Abort terminates the process on a failed check.
	Abort
)

// DefaultPolicy is the policy used when none is given.
const DefaultPolicy = RaiseError

var policyNames = [...]string{
	Ignore:     "ignore",
	Log:        "log",
	RaiseError: "raise",
	Abort:      "abort",
}

// String returns the canonical name of p.
func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}

	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	return int(p) < len(policyNames)
}

// ParsePolicy parses a policy name. Matching is case-insensitive and
// accepts a few aliases: "none" and "off" for [Ignore], "error" and
// "exception" for [RaiseError].
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore", "none", "off":
		return Ignore, nil
	case "log":
		return Log, nil
	case "raise", "error", "exception":
		return RaiseError, nil
	case "abort":
		return Abort, nil
	}

	return DefaultPolicy, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, uint8(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
