// Package espprc — input validation.
//
// Every precondition is checked before the labeling loop starts; once inside the
// loop each transition is total. Validation is deterministic and side-effect free
// and reports only the sentinel errors of types.go, wrapped with the offending
// value where that helps the caller.
package espprc

import (
	"fmt"
	"math"
	mb "math/bits"
)

// validateAll checks the scalar parameters and, when requested, every oracle value.
// It returns n (oracle order) on success.
//
// Complexity: O(1), or O(n²) with checkOracle.
func validateAll(o Oracle, nres, capacity int, maxLen float64, checkOracle bool) (int, error) {
	if o == nil {
		return 0, ErrNilOracle
	}

	n := o.N()
	if n <= 0 {
		return 0, ErrEmptyInstance
	}

	if err := validateResources(n, nres); err != nil {
		return 0, err
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	if math.IsNaN(maxLen) || maxLen < 0 {
		return 0, fmt.Errorf("%w: %g", ErrBadMaxLength, maxLen)
	}

	if checkOracle {
		if err := validateOracle(o, n); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// validateResources enforces 0 ≤ nres ≤ maxResources(n).
func validateResources(n, nres int) error {
	if nres < 0 || nres > maxResources(n) {
		return fmt.Errorf("%w: %d resources for %d vertices (max %d)",
			ErrBadResourceCount, nres, n, maxResources(n))
	}

	return nil
}

// maxResources is the number of bits needed to write the largest vertex id n−1.
// Resource r is consumed by vertex v iff bit r of v is set, so any further
// resource would never be consumed.
func maxResources(n int) int {
	return mb.Len(uint(n - 1))
}

// validateOracle scans all ordered pairs. Distances must be finite and
// non-negative everywhere (D(0,0) closes the lookahead of depot extensions);
// reduced costs must be finite off the diagonal, which is never queried.
//
// Complexity: O(n²).
func validateOracle(o Oracle, n int) error {
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = o.D(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: d(%d,%d)=%g", ErrNonFiniteDistance, i, j, x)
			}
			if x < 0 {
				return fmt.Errorf("%w: d(%d,%d)=%g", ErrNegativeDistance, i, j, x)
			}
			if i == j {
				continue
			}
			x = o.Aux(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: aux(%d,%d)=%g", ErrNonFiniteCost, i, j, x)
			}
		}
	}

	return nil
}
