package narrow

import "golang.org/x/exp/constraints"

// Integer is an alias for [constraints.Integer].
type Integer = constraints.Integer

// Float is an alias for [constraints.Float].
type Float = constraints.Float

// Number is a constraint that matches every integer and floating-point
// type, including named types derived from them.
type Number interface {
	Integer | Float
}
