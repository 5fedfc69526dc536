package field

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Unsigned is the set of fixed-width unsigned integer types that can carry a
// GF(2^n) element. Bit i of a value is the coefficient of x^i.
type Unsigned interface {
	constraints.Unsigned
}

// IsSet reports whether the given bit of v is 1
func IsSet[T Unsigned](v T, bit int) bool {
	return v&(One[T]()<<bit) != 0
}

// LeadingBit returns the 1-based position of the highest set bit of v, or 0
// when v is zero. It is one more than the degree of the polynomial.
func LeadingBit[T Unsigned](v T) int {
	n := 0
	for v != 0 {
		v >>= 1
		n++
	}
	return n
}

// Zero returns the additive identity
func Zero[T Unsigned]() T {
	return 0
}

// One returns the multiplicative identity
func One[T Unsigned]() T {
	return 1
}

// Width returns the number of bits in T
func Width[T Unsigned]() int {
	var all T
	all = ^all
	return bits.Len64(uint64(all))
}
