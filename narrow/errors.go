package narrow

import "errors"

// ErrNarrowing indicates that a conversion did not preserve the value.
//
// It carries no payload; callers that need the offending value or types
// should wrap it.
var ErrNarrowing = errors.New("narrowing_error")
