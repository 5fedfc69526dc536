package field

import (
	"fmt"
)

// SolveLinear solves the augmented system m in place by Gauss-Jordan
// elimination. m must have one more column than it has rows; the left block
// becomes the identity and the last column holds the solution.
//
// No pivot search is done: each diagonal entry is used as the pivot as it
// stands. A zero pivot is not reported and leaves an incorrect result; use
// SolveLinearChecked or SolveLinearPivoting to detect it.
func (g *Galois[T]) SolveLinear(m *Matrix[T]) {
	if m.col != m.row+1 {
		panic(fmt.Sprintf("field: augmented system must be n x (n+1), got %dx%d", m.row, m.col))
	}
	g.gaussJordan(m, false)
}

// CheckPivots reports whether SolveLinear would meet a zero pivot on m. It
// runs the elimination on a copy and leaves m unchanged.
func (g *Galois[T]) CheckPivots(m *Matrix[T]) error {
	if m.col != m.row+1 {
		return fmt.Errorf("%w: augmented system must be n x (n+1), got %dx%d", ErrDimensionMismatch, m.row, m.col)
	}
	if row := g.gaussJordan(m.Clone(), true); row >= 0 {
		return fmt.Errorf("%w at row %d", ErrZeroPivot, row)
	}
	return nil
}

// SolveLinearChecked is SolveLinear with a zero pivot reported as an error.
// m is only modified when the solve succeeds.
func (g *Galois[T]) SolveLinearChecked(m *Matrix[T]) error {
	if m.col != m.row+1 {
		return fmt.Errorf("%w: augmented system must be n x (n+1), got %dx%d", ErrDimensionMismatch, m.row, m.col)
	}
	work := m.Clone()
	if row := g.gaussJordan(work, true); row >= 0 {
		return fmt.Errorf("%w at row %d", ErrZeroPivot, row)
	}
	copy(m.data, work.data)
	return nil
}

// SolveLinearPivoting solves the augmented system m in place, exchanging
// rows when a diagonal entry is zero. Pivots are inverted exactly whatever
// the field's inverse step cap. It returns ErrSingular when a column
// has no usable pivot, in which case m is left unchanged.
func (g *Galois[T]) SolveLinearPivoting(m *Matrix[T]) error {
	if m.col != m.row+1 {
		return fmt.Errorf("%w: augmented system must be n x (n+1), got %dx%d", ErrDimensionMismatch, m.row, m.col)
	}
	work := m.Clone()
	for i := 0; i < work.row; i++ {
		pivot := -1
		for k := i; k < work.row; k++ {
			if work.data[k*work.col+i] != 0 {
				pivot = k
				break
			}
		}
		if pivot == -1 {
			return fmt.Errorf("%w: no pivot in column %d", ErrSingular, i)
		}
		if pivot != i {
			swapRows(work, i, pivot)
		}
		g.eliminate(work, i, g.exactInv)
	}
	copy(m.data, work.data)
	return nil
}

// gaussJordan runs elimination without row exchange and returns the first
// row whose pivot was zero, or -1. With stop set it returns at that row.
func (g *Galois[T]) gaussJordan(m *Matrix[T], stop bool) int {
	zero := -1
	for i := 0; i < m.row; i++ {
		if m.data[i*m.col+i] == 0 {
			if zero < 0 {
				zero = i
			}
			if stop {
				return zero
			}
			g.logger().Debugw("zero pivot", "row", i, "rows", m.row)
		}
		g.eliminate(m, i, g.Inv)
	}
	return zero
}

// eliminate normalizes pivot row i and cancels column i in every other row
func (g *Galois[T]) eliminate(m *Matrix[T], i int, inv func(T) T) {
	col := m.col
	pr := m.data[i*col : (i+1)*col]

	pivot := pr[i]
	pr[i] = One[T]()
	pivotInv := inv(pivot)
	for j := i + 1; j < col; j++ {
		pr[j] = g.Mul(pr[j], pivotInv)
	}

	for k := 0; k < m.row; k++ {
		if k == i {
			continue
		}
		r := m.data[k*col : (k+1)*col]
		factor := r[i]
		for j := i; j < col; j++ {
			r[j] = g.Add(r[j], g.Mul(pr[j], factor))
		}
	}
}

func swapRows[T Unsigned](m *Matrix[T], a, b int) {
	ra := m.data[a*m.col : (a+1)*m.col]
	rb := m.data[b*m.col : (b+1)*m.col]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
