package matrix

import "errors"

// Sentinel errors. Every message is prefixed with "matrix:".
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. ragged input
	// rows or a vector whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil matrix or vector argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Matrix is a two-dimensional array of float64 values with bounds-checked access.
type Matrix interface {
	// Rows returns the number of rows.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns.
	// Complexity: O(1).
	Cols() int

	// At returns the element at (i, j), or ErrOutOfRange.
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns v at (i, j), or returns ErrOutOfRange.
	// Complexity: O(1).
	Set(i, j int, v float64) error
}
