package narrow

import (
	"math"
	"unsafe"
)

// Cast converts v to T with a plain Go conversion. It never fails and may
// lose information; use it only where that loss is acceptable.
func Cast[T, S Number](v S) T {
	return T(v)
}

// Narrow converts v to T and reports [ErrNarrowing] if converting the
// result back to S does not yield v exactly. On success the result equals
// Cast[T](v).
func Narrow[T, S Number](v S) (T, error) {
	var zero T

	fromFloat, toFloat := isFloat[S](), isFloat[T]()

	// float -> integer is implementation-dependent outside T's range.
	if fromFloat && !toFloat && !fits[T](float64(v)) {
		return zero, ErrNarrowing
	}

	result := T(v)

	// Same for the way back when an integer went through a float.
	if toFloat && !fromFloat && !fits[S](float64(result)) {
		return zero, ErrNarrowing
	}

	if S(result) != v {
		return zero, ErrNarrowing
	}

	return result, nil
}

// MustNarrow is like [Narrow] but panics with [ErrNarrowing] on loss.
func MustNarrow[T, S Number](v S) T {
	result, err := Narrow[T](v)
	if err != nil {
		panic(err)
	}

	return result
}

// isFloat reports whether N is a floating-point type.
func isFloat[N Number]() bool {
	var n N = 1
	n /= 2

	return n != 0
}

// isSigned reports whether N can hold negative values.
func isSigned[N Number]() bool {
	var n N

	return n-1 < 0
}

// fits reports whether f lies within the range of the integer type N, i.e.
// whether converting f to N is well defined. NaN never fits.
func fits[N Number](f float64) bool {
	bits := int(unsafe.Sizeof(*new(N))) * 8

	lo, hi := 0.0, math.Ldexp(1, bits)
	if isSigned[N]() {
		hi = math.Ldexp(1, bits-1)
		lo = -hi
	}

	return f >= lo && f < hi
}
