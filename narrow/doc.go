// Package narrow provides value-checked numeric conversions.
//
// [Cast] is a plain Go conversion: it never fails and silently wraps,
// truncates or rounds. [Narrow] performs the same conversion, converts the
// result back to the source type and compares it with the original using
// the source type's own equality. If the round trip does not reproduce the
// value exactly, Narrow returns [ErrNarrowing] and no result.
//
//	n, err := narrow.Narrow[int32](int64(300)) // 300, nil
//	_, err = narrow.Narrow[int8](int64(300))   // 0, ErrNarrowing
//	_, err = narrow.Narrow[uint32](int64(-1))  // 0, ErrNarrowing
//
// Conversions whose result Go leaves implementation-dependent, such as a
// NaN or out-of-range float converted to an integer, are never performed:
// Narrow reports ErrNarrowing for them instead.
//
// Note that the round trip is the whole test. A same-width signedness
// change such as uint64(math.MaxUint64) to int64 round-trips exactly and
// is accepted by Narrow.
//
// [From] accepts loosely typed input. Integer inputs are range-checked with
// [safemath], so it also rejects signedness changes that alter the value.
// Strings, booleans and [encoding/json.Number] values are parsed with
// [cast] before narrowing.
package narrow
