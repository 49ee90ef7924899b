// Package instance — input validation.
//
// Shape checks delegate to the matrix validators and are re-reported as the
// sentinels of types.go, keeping the matrix sentinel in the chain:
//
//	errors.Is(err, ErrNonSquare) && errors.Is(err, matrix.ErrNonSquare)
//
// Value checks (finite, non-negative) run while the matrices are copied into the
// Instance buffers, see prefetch.
package instance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pricing/matrix"
)

// shapeError maps a matrix validator failure onto the instance sentinels.
func shapeError(what string, err error) error {
	switch {
	case errors.Is(err, matrix.ErrNilMatrix), errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%w: %s: %w", ErrEmpty, what, err)
	case errors.Is(err, matrix.ErrNonSquare):
		return fmt.Errorf("%w: %s: %w", ErrNonSquare, what, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrDimensionMismatch, what, err)
	}
}

// validateOrders checks dist and aux are square of the same order n ≥ 1.
//
// Complexity: O(1).
func validateOrders(dist, aux matrix.Matrix) (int, error) {
	n, err := matrix.ValidateSquare(dist)
	if err != nil {
		return 0, shapeError("distances", err)
	}
	m, err := matrix.ValidateSquare(aux)
	if err != nil {
		return 0, shapeError("costs", err)
	}
	if _, err = matrix.ValidateSameOrder(dist, aux); err != nil {
		return 0, fmt.Errorf("%w: %d×%d distances, %d×%d costs: %w", ErrDimensionMismatch, n, n, m, m, err)
	}

	return n, nil
}

// validateDuals checks that duals has n finite entries.
//
// Complexity: O(n).
func validateDuals(duals []float64, n int) error {
	if err := matrix.ValidateVecLen(duals, n); err != nil {
		return fmt.Errorf("%w: %d duals for %d vertices: %w", ErrDimensionMismatch, len(duals), n, err)
	}

	var (
		i int
		x float64
	)
	for i, x = range duals {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: duals[%d]=%g", ErrNonFinite, i, x)
		}
	}

	return nil
}

// rowsToDense converts a [][]float64 table, reporting ragged rows as non-square.
func rowsToDense(rows [][]float64, what string) (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err == nil {
		return m, nil
	}
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		return nil, fmt.Errorf("%w: %s: %w", ErrNonSquare, what, err)
	}

	return nil, shapeError(what, err)
}
