// Package instance — constructors.
//
//   - New:           distance and reduced-cost matrices.
//   - FromDuals:     reduced cost c(i,j) − π_j from a distance matrix and duals π.
//   - FromPoints:    Euclidean distances over planar points, then FromDuals.
//   - NewFromRows, FromDualsRows: the same over plain [][]float64 tables.
package instance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pricing/matrix"
)

// New builds an Instance from an n×n distance matrix and an n×n reduced-cost
// matrix. Values are copied; later changes to dist or aux are not seen.
//
// Contract:
//   - both matrices non-nil, square, of the same order n ≥ 1;
//   - every distance finite and non-negative, diagonal included;
//   - every off-diagonal reduced cost finite.
//
// Complexity: O(n²).
func New(dist, aux matrix.Matrix) (*Instance, error) {
	n, err := validateOrders(dist, aux)
	if err != nil {
		return nil, err
	}

	in := &Instance{n: n}
	if err = in.prefetch(dist, aux); err != nil {
		return nil, err
	}

	return in, nil
}

// prefetch copies both matrices into the row-major buffers, rejecting
// non-finite or negative distances and non-finite off-diagonal costs. The cost
// diagonal is never queried and is copied as is.
func (in *Instance) prefetch(dist, aux matrix.Matrix) error {
	var (
		n    = in.n
		i, j int
		x    float64
		err  error
	)
	in.dist = make([]float64, n*n)
	in.aux = make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil {
				return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: distance (%d,%d)=%g", ErrNonFinite, i, j, x)
			}
			if x < 0 {
				return fmt.Errorf("%w: (%d,%d)=%g", ErrNegativeDistance, i, j, x)
			}
			in.dist[i*n+j] = x

			if x, err = aux.At(i, j); err != nil {
				return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
			}
			if i != j && (math.IsNaN(x) || math.IsInf(x, 0)) {
				return fmt.Errorf("%w: cost (%d,%d)=%g", ErrNonFinite, i, j, x)
			}
			in.aux[i*n+j] = x
		}
	}

	return nil
}

// FromDuals builds the standard routing pricing instance: the reduced cost of
// arc i→j is dist(i,j) − duals[j], so every visit to j collects its dual value.
// duals[0] is the dual of the depot (e.g. a fleet-size constraint) and is
// collected when a route closes.
//
// Complexity: O(n²).
func FromDuals(dist matrix.Matrix, duals []float64) (*Instance, error) {
	n, err := matrix.ValidateSquare(dist)
	if err != nil {
		return nil, shapeError("distances", err)
	}
	if err = validateDuals(duals, n); err != nil {
		return nil, err
	}

	aux, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, shapeError("costs", err)
	}
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if d, err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
			}
			_ = aux.Set(i, j, d-duals[j]) // in range by construction
		}
	}

	return New(dist, aux)
}

// FromPoints builds a FromDuals instance over Euclidean distances between
// planar points; points[0] is the depot.
//
// Complexity: O(n²).
func FromPoints(points [][2]float64, duals []float64) (*Instance, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmpty
	}

	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, shapeError("distances", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = dist.Set(i, j, math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1]))
		}
	}

	return FromDuals(dist, duals)
}

// NewFromRows is New over [][]float64 tables. Ragged rows report ErrNonSquare.
func NewFromRows(dist, aux [][]float64) (*Instance, error) {
	d, err := rowsToDense(dist, "distances")
	if err != nil {
		return nil, err
	}
	a, err := rowsToDense(aux, "costs")
	if err != nil {
		return nil, err
	}

	return New(d, a)
}

// FromDualsRows is FromDuals over a [][]float64 distance table.
func FromDualsRows(dist [][]float64, duals []float64) (*Instance, error) {
	d, err := rowsToDense(dist, "distances")
	if err != nil {
		return nil, err
	}

	return FromDuals(d, duals)
}
