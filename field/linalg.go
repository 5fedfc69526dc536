package field

import (
	"fmt"
)

// Matrix operations over binary fields

// Augment appends b as an extra column of a, producing the augmented system
// consumed by SolveLinear.
func Augment[T Unsigned](a *Matrix[T], b []T) (*Matrix[T], error) {
	if len(b) != a.row {
		return nil, fmt.Errorf("%w: %d constants for %d rows", ErrDimensionMismatch, len(b), a.row)
	}
	col := a.col + 1
	data := make([]T, 0, a.row*col)
	for i := 0; i < a.row; i++ {
		data = append(data, a.data[i*a.col:(i+1)*a.col]...)
		data = append(data, b[i])
	}
	return &Matrix[T]{data: data, row: a.row, col: col}, nil
}

// MulMatrix computes A × B over the field.
// A is m×n, B is n×p, result is m×p
func (g *Galois[T]) MulMatrix(a, b *Matrix[T]) (*Matrix[T], error) {
	if a.col != b.row {
		return nil, fmt.Errorf("%w: A is %dx%d, B is %dx%d", ErrDimensionMismatch, a.row, a.col, b.row, b.col)
	}
	c := &Matrix[T]{data: make([]T, a.row*b.col), row: a.row, col: b.col}
	for i := 0; i < a.row; i++ {
		for j := 0; j < b.col; j++ {
			var sum T
			for k := 0; k < a.col; k++ {
				sum = g.Add(sum, g.Mul(a.data[i*a.col+k], b.data[k*b.col+j]))
			}
			c.data[i*c.col+j] = sum
		}
	}
	return c, nil
}

// MulVec computes A·x over the field
func (g *Galois[T]) MulVec(a *Matrix[T], x []T) ([]T, error) {
	if a.col != len(x) {
		return nil, fmt.Errorf("%w: A is %dx%d, x has %d elements", ErrDimensionMismatch, a.row, a.col, len(x))
	}
	y := make([]T, a.row)
	for i := range y {
		for k, v := range x {
			y[i] = g.Add(y[i], g.Mul(a.data[i*a.col+k], v))
		}
	}
	return y, nil
}

// Invert computes the inverse of a square matrix using Gauss-Jordan
// elimination with row exchange. Pivots are inverted exactly whatever the
// field's inverse step cap.
func (g *Galois[T]) Invert(a *Matrix[T]) (*Matrix[T], error) {
	if a.row != a.col {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, a.row, a.col)
	}
	n := a.row

	// Work on [A | I]
	w := &Matrix[T]{data: make([]T, n*2*n), row: n, col: 2 * n}
	for i := 0; i < n; i++ {
		copy(w.data[i*w.col:], a.data[i*n:(i+1)*n])
		w.data[i*w.col+n+i] = One[T]()
	}

	for i := 0; i < n; i++ {
		pivot := -1
		for k := i; k < n; k++ {
			if w.data[k*w.col+i] != 0 {
				pivot = k
				break
			}
		}
		if pivot == -1 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, i)
		}
		if pivot != i {
			swapRows(w, i, pivot)
		}
		g.eliminate(w, i, g.exactInv)
	}

	inv := &Matrix[T]{data: make([]T, n*n), row: n, col: n}
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], w.data[i*w.col+n:(i+1)*w.col])
	}
	return inv, nil
}

// Rank returns the number of linearly independent rows of a. Like Invert it
// does not depend on the inverse step cap.
func (g *Galois[T]) Rank(a *Matrix[T]) int {
	w := a.Clone()
	rank := 0
	for col := 0; col < w.col && rank < w.row; col++ {
		// Find pivot
		pivot := -1
		for i := rank; i < w.row; i++ {
			if w.data[i*w.col+col] != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue // no pivot in this column
		}
		if pivot != rank {
			swapRows(w, rank, pivot)
		}

		// Forward elimination is enough for the rank
		pr := w.data[rank*w.col : (rank+1)*w.col]
		inv := g.exactInv(pr[col])
		for i := rank + 1; i < w.row; i++ {
			r := w.data[i*w.col : (i+1)*w.col]
			if r[col] == 0 {
				continue
			}
			factor := g.Mul(r[col], inv)
			for j := col; j < w.col; j++ {
				r[j] = g.Sub(r[j], g.Mul(factor, pr[j]))
			}
		}
		rank++
	}
	return rank
}

// IsLinearlyIndependent checks if the rows of a are linearly independent
func (g *Galois[T]) IsLinearlyIndependent(a *Matrix[T]) bool {
	if a.row > a.col {
		return false
	}
	return g.Rank(a) == a.row
}
