package field

import "fmt"

// CheckIrreducible verifies that base defines a field of the given order:
// order must be a power of two 2^d, base must have degree d, and base must
// be irreducible over GF(2). Products of two reduced elements have to fit in
// T for the check to run, which is the same requirement Mul has.
//
// It uses Ben-Or's test: base is irreducible iff gcd(base, x^(2^i) - x) == 1
// for every i in [1, d/2].
func CheckIrreducible[T Unsigned](order, base T) error {
	if order == 0 || order&(order-1) != 0 {
		return fmt.Errorf("%w: order %#x is not a power of two", ErrBadOrder, order)
	}
	d := LeadingBit(order) - 1
	if LeadingBit(base)-1 != d {
		return fmt.Errorf("%w: polynomial %#x does not have degree %d", ErrBadOrder, base, d)
	}
	if d > 0 && 2*d-1 > Width[T]() {
		return fmt.Errorf("%w: degree %d is too large for %d-bit elements", ErrBadOrder, d, Width[T]())
	}

	g := &Galois[T]{order: order, base: base}
	x := One[T]() << 1
	u := x
	for i := 1; i <= d/2; i++ {
		u = g.Mul(u, u)
		if c := gcd(g, base, u^x); c != One[T]() {
			return fmt.Errorf("%w: %#x shares factor %#x with x^(2^%d) - x", ErrReducible, base, c, i)
		}
	}
	return nil
}

// gcd returns the greatest common divisor of two polynomials over GF(2)
func gcd[T Unsigned](g *Galois[T], a, b T) T {
	for b != 0 {
		_, r := g.Div(a, b)
		a, b = b, r
	}
	return a
}
