// Package field implements arithmetic over binary Galois fields GF(2^n) on
// fixed-width unsigned integers, and Gauss-Jordan elimination for linear
// systems whose coefficients live in such a field.
package field

import (
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("field")

// Galois represents a binary finite field GF(2^n) whose elements are stored
// in the unsigned integer type T. The field is defined by an irreducible
// polynomial (base) encoded the same way as an element, including its
// leading term.
type Galois[T Unsigned] struct {
	order        T   // field size, elements below it are already reduced
	base         T   // irreducible polynomial
	inverseSteps int // division cap for Inv, 0 means none
	log          *logging.ZapEventLogger
}

// NewGalois creates a field with the given order and irreducible polynomial.
// The polynomial is not checked; see CheckIrreducible.
func NewGalois[T Unsigned](order, base T, opts ...Option) (*Galois[T], error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	return &Galois[T]{
		order:        order,
		base:         base,
		inverseSteps: c.inverseSteps,
		log:          c.logger,
	}, nil
}

func (g *Galois[T]) logger() *logging.ZapEventLogger {
	if g.log == nil {
		return log
	}
	return g.log
}

// Order returns the order of the field
func (g *Galois[T]) Order() T {
	return g.order
}

// Base returns the irreducible polynomial of the field
func (g *Galois[T]) Base() T {
	return g.base
}

// InverseSteps returns the division cap used by Inv, 0 when uncapped
func (g *Galois[T]) InverseSteps() int {
	return g.inverseSteps
}

// Add returns a + b in the field (XOR operation)
func (g *Galois[T]) Add(a, b T) T {
	return a ^ b
}

// Sub returns a - b in the field (same as Add in GF(2^n))
func (g *Galois[T]) Sub(a, b T) T {
	return a ^ b
}

// MulRaw returns the carry-less product of a and b truncated to the width of
// T, without reduction.
func (g *Galois[T]) MulRaw(a, b T) T {
	var prod T
	term := b
	n := Width[T]()
	for i := 0; i < n; i++ {
		if IsSet(a, i) {
			prod ^= term
		}
		term <<= 1
	}
	return prod
}

// Mul returns a * b in the field using polynomial multiplication with
// reduction by the irreducible polynomial.
func (g *Galois[T]) Mul(a, b T) T {
	prod := g.MulRaw(a, b)
	if prod < g.order {
		return prod
	}
	_, rem := g.Div(prod, g.base)
	return rem
}

// Div performs polynomial division of a by b over GF(2) and returns the
// quotient and remainder, so that a == MulRaw(q, b) ^ r.
func (g *Galois[T]) Div(a, b T) (q, r T) {
	la, lb := LeadingBit(a), LeadingBit(b)
	r = a
	if la < lb {
		return 0, r
	}

	bit := la - lb
	divisor := b << bit
	for {
		q <<= 1
		// XOR only lowers r when the divisor's leading term cancels r's
		if x := r ^ divisor; x < r {
			r = x
			q ^= One[T]()
		}
		if bit == 0 {
			break
		}
		divisor >>= 1
		bit--
	}
	return q, r
}

// Inv returns the multiplicative inverse of a using the extended Euclidean
// algorithm against the irreducible polynomial. The iteration stops early
// once the configured number of divisions is reached. Inv(0) returns 0.
func (g *Galois[T]) Inv(a T) T {
	return g.inverse(a, g.inverseSteps)
}

// exactInv is Inv without the division cap
func (g *Galois[T]) exactInv(a T) T {
	return g.inverse(a, 0)
}

func (g *Galois[T]) inverse(a T, limit int) T {
	t0, t1 := Zero[T](), One[T]()
	r0, r1 := g.base, a
	steps := 0
	for r1 != 0 {
		q, r := g.Div(r0, r1)
		steps++
		if steps == limit {
			break
		}
		r0, r1 = r1, r
		t0, t1 = t1, t0^g.Mul(t1, q)
	}
	return t0
}

// Quo returns a / b in the field, computed as a * Inv(b)
func (g *Galois[T]) Quo(a, b T) T {
	return g.Mul(a, g.Inv(b))
}

// Pow returns a raised to the power e by square-and-multiply
func (g *Galois[T]) Pow(a T, e uint64) T {
	result := One[T]()
	for e > 0 {
		if e&1 == 1 {
			result = g.Mul(result, a)
		}
		a = g.Mul(a, a)
		e >>= 1
	}
	return result
}
