// Package matrix provides the dense float64 matrices that pricing instances are
// read from, and the shape validators shared by their consumers.
//
// What & Why:
//
//	Distance and reduced-cost tables arrive as square matrices. Matrix is the
//	read/write surface the instance constructors accept; Dense is its row-major
//	implementation backed by a single flat slice. Consumers copy what they need
//	into their own buffers once, so Matrix access is never on a hot path.
//
// Errors:
//
//	ErrInvalidDimensions - non-positive shape requested.
//	ErrOutOfRange        - At/Set index outside the matrix.
//	ErrDimensionMismatch - ragged rows or a vector of the wrong length.
//	ErrNonSquare         - a square matrix was required.
//	ErrNilMatrix         - nil matrix or vector argument.
//
// Validators return these sentinels wrapped with the validator name; match them
// with errors.Is.
package matrix
