package field

import "errors"

var (
	// ErrBadShape is returned when a matrix is built with non-positive
	// dimensions or a buffer whose length is not rows*cols.
	ErrBadShape = errors.New("field: invalid matrix shape")

	// ErrDimensionMismatch indicates incompatible operand dimensions, such as
	// an augmented system whose column count is not rows+1.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("field: matrix is not square")

	// ErrSingular is returned when no non-zero pivot exists for a column.
	ErrSingular = errors.New("field: singular matrix")

	// ErrZeroPivot is returned by the pivot check when elimination without
	// row exchange would hit a zero diagonal entry.
	ErrZeroPivot = errors.New("field: zero pivot")

	// ErrWidthMismatch is returned when decoding a matrix encoded with a
	// different element width.
	ErrWidthMismatch = errors.New("field: element width mismatch")

	// ErrBadOrder is returned when the order is not a power of two matching
	// the degree of the polynomial.
	ErrBadOrder = errors.New("field: invalid field order")

	// ErrReducible is returned when the defining polynomial has a factor.
	ErrReducible = errors.New("field: polynomial is reducible")

	// ErrInvalidOption is returned by options given an unusable value.
	ErrInvalidOption = errors.New("field: invalid option")
)
