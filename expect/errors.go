package expect

import "errors"

// ErrExpectation is matched by every [*Error] through [errors.Is].
var ErrExpectation = errors.New("expect_error")

// ErrInvalidPolicy indicates that a policy name or value is not defined.
var ErrInvalidPolicy = errors.New("invalid expect policy")

// Error is returned by a failed check under [RaiseError].
type Error struct {
	// Message describes what was expected.
	Message string

	// Location is the call site of the check. It is zero when capture was
	// disabled or unavailable.
	Location Location
}

// Error renders the failure as
//
//	expect_error @ <file>(<line>:<column>) `<function>`: <message>
//
// leaving out whatever parts of the location are unknown.
func (e *Error) Error() string {
	if e.Location.IsZero() {
		return ErrExpectation.Error() + ": " + e.Message
	}

	return ErrExpectation.Error() + " @ " + e.Location.String() + ": " + e.Message
}

// Is reports whether target is [ErrExpectation].
func (e *Error) Is(target error) bool {
	return target == ErrExpectation
}
