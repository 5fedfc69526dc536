package field

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major matrix of field elements. Element (i, j) is
// stored at i*col + j and the backing slice always holds row*col elements.
type Matrix[T Unsigned] struct {
	data []T
	row  int
	col  int
}

// NewMatrix creates a row x col matrix holding a copy of buf
func NewMatrix[T Unsigned](buf []T, row, col int) (*Matrix[T], error) {
	if row <= 0 || col <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, row, col)
	}
	if len(buf) != row*col {
		return nil, fmt.Errorf("%w: buffer holds %d elements, want %dx%d", ErrBadShape, len(buf), row, col)
	}
	data := make([]T, len(buf))
	copy(data, buf)
	return &Matrix[T]{data: data, row: row, col: col}, nil
}

// Zeros creates a row x col matrix of zero elements
func Zeros[T Unsigned](row, col int) (*Matrix[T], error) {
	if row <= 0 || col <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, row, col)
	}
	return &Matrix[T]{data: make([]T, row*col), row: row, col: col}, nil
}

// Identity creates an n x n identity matrix
func Identity[T Unsigned](n int) (*Matrix[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = One[T]()
	}
	return m, nil
}

// Rows returns the number of rows
func (m *Matrix[T]) Rows() int {
	return m.row
}

// Cols returns the number of columns
func (m *Matrix[T]) Cols() int {
	return m.col
}

func (m *Matrix[T]) index(i, j int) int {
	if i < 0 || i >= m.row || j < 0 || j >= m.col {
		panic(fmt.Sprintf("field: index (%d,%d) out of range for %dx%d matrix", i, j, m.row, m.col))
	}
	return i*m.col + j
}

// At returns the element at (i, j). It panics if the index is out of range.
func (m *Matrix[T]) At(i, j int) T {
	return m.data[m.index(i, j)]
}

// Set stores v at (i, j). It panics if the index is out of range.
func (m *Matrix[T]) Set(i, j int, v T) {
	m.data[m.index(i, j)] = v
}

// Row returns row i. The slice shares storage with the matrix.
func (m *Matrix[T]) Row(i int) []T {
	start := m.index(i, 0)
	return m.data[start : start+m.col : start+m.col]
}

// Data returns a copy of the elements in row-major order
func (m *Matrix[T]) Data() []T {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return data
}

// Solution returns a copy of the last column. After a successful solve of
// an augmented system it holds the value of each row's unknown.
func (m *Matrix[T]) Solution() []T {
	sol := make([]T, m.row)
	for i := range sol {
		sol[i] = m.data[i*m.col+m.col-1]
	}
	return sol
}

// Clone returns a deep copy of the matrix
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{data: m.Data(), row: m.row, col: m.col}
}

// Equal reports whether both matrices have the same shape and elements
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m.row != o.row || m.col != o.col {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String returns the elements in hex, one row per line
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.row; i++ {
		for j := 0; j < m.col; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%#x", m.data[i*m.col+j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
