package narrow

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrUnsupported indicates that [From] could not interpret its input as a
// number at all. It is distinct from [ErrNarrowing].
var ErrUnsupported = errors.New("unsupported conversion")

// From converts a loosely typed v to T, reporting [ErrNarrowing] if the
// numeric value would change.
//
// Integer inputs with integer targets are checked with safemath, which
// compares values rather than bit patterns. Float inputs, and integer
// inputs with float targets, use [Narrow]. Anything else is parsed with
// spf13/cast first. Strings are read as decimal numbers, so "010" is ten
// and a fractional string such as "1.5" keeps its fraction (and so fails
// for integer targets). Hexadecimal and octal prefixes are not honoured.
func From[T Number](v any) (T, error) {
	var zero T

	switch v.(type) {
	case nil:
		return zero, fmt.Errorf("%w to %T from nil", ErrUnsupported, zero)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		if isFloat[T]() {
			return fromNumber[T](v)
		}

		return fromInt[T](v)
	case float32, float64:
		return fromNumber[T](v)
	}

	n, err := parse(v)
	if err != nil {
		return zero, fmt.Errorf("%w to %T from %T: %w", ErrUnsupported, zero, v, err)
	}

	return From[T](n)
}

// MustFrom is like [From] but panics on error.
func MustFrom[T Number](v any) T {
	to, err := From[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// fromInt dispatches to safemath for the predeclared integer types. Named
// integer types fall back to the round trip.
func fromInt[T Number](v any) (T, error) {
	switch any(*new(T)).(type) {
	case int:
		return convert[T, int](v)
	case int8:
		return convert[T, int8](v)
	case int16:
		return convert[T, int16](v)
	case int32:
		return convert[T, int32](v)
	case int64:
		return convert[T, int64](v)
	case uint:
		return convert[T, uint](v)
	case uint8:
		return convert[T, uint8](v)
	case uint16:
		return convert[T, uint16](v)
	case uint32:
		return convert[T, uint32](v)
	case uint64:
		return convert[T, uint64](v)
	case uintptr:
		return convert[T, uintptr](v)
	default:
		return fromNumber[T](v)
	}
}

// convert narrows v to the integer type I with safemath and re-types the
// result as T (which is the caller's type parameter). Any safemath
// failure means the value did not survive.
func convert[T any, I safemath.Integer](v any) (T, error) {
	converted, err := safemath.ConvertAny[I](v)
	if err != nil {
		var zero T
		return zero, ErrNarrowing
	}

	return any(converted).(T), nil
}

// fromNumber unwraps the dynamic numeric type of v and narrows it.
func fromNumber[T Number](v any) (T, error) {
	switch x := v.(type) {
	case int:
		return Narrow[T](x)
	case int8:
		return Narrow[T](x)
	case int16:
		return Narrow[T](x)
	case int32:
		return Narrow[T](x)
	case int64:
		return Narrow[T](x)
	case uint:
		return Narrow[T](x)
	case uint8:
		return Narrow[T](x)
	case uint16:
		return Narrow[T](x)
	case uint32:
		return Narrow[T](x)
	case uint64:
		return Narrow[T](x)
	case uintptr:
		return Narrow[T](x)
	case float32:
		return Narrow[T](x)
	case float64:
		return Narrow[T](x)
	default:
		var zero T
		return zero, fmt.Errorf("%w to %T from %T", ErrUnsupported, zero, v)
	}
}

// parse reads a non-numeric v as a float64. Integral values are re-read as
// int64 or uint64 so that magnitudes above 2^53 keep their precision; an
// integer reading that disagrees with the float one (an octal "010", say)
// is discarded in favour of the decimal value.
func parse(v any) (any, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, err
	}

	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return f, nil
	}

	if i, err := cast.ToInt64E(v); err == nil && float64(i) == f {
		return i, nil
	}

	if u, err := cast.ToUint64E(v); err == nil && float64(u) == f {
		return u, nil
	}

	return f, nil
}
