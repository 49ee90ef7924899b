// Package espprc — route utilities.
//
// Helpers operating on routes returned by Solve (or supplied by a caller, e.g. a
// master problem re-pricing an existing column):
//   - ValidateRoute: depot closure and elementarity.
//   - Evaluate: recompute reduced cost, length and per-resource load of a route.
//   - Feasible: check a route against capacity and maximum length.
//
// A route is a vertex sequence [0, v1, …, vk, 0] with pairwise distinct vi ≠ 0;
// the empty route is [0].
package espprc

import (
	"errors"
	"fmt"
)

// ErrInvalidRoute is returned when a route is not closed at the depot, repeats a
// vertex, or refers to a vertex outside [0, n).
var ErrInvalidRoute = errors.New("espprc: invalid route")

// ValidateRoute enforces the route invariants over n vertices:
//
//	route == [0], or len(route) ≥ 3, route[0] == route[last] == 0,
//	every inner vertex in [1, n) and appearing once.
//
// Complexity: O(len(route)) time, O(n) space.
func ValidateRoute(route []int, n int) error {
	if n <= 0 {
		return ErrEmptyInstance
	}
	if len(route) == 1 && route[0] == Depot {
		return nil
	}
	if len(route) < 3 {
		return fmt.Errorf("%w: length %d", ErrInvalidRoute, len(route))
	}
	last := len(route) - 1
	if route[0] != Depot || route[last] != Depot {
		return fmt.Errorf("%w: must start and end at the depot", ErrInvalidRoute)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 1; i < last; i++ {
		v = route[i]
		if v <= Depot || v >= n {
			return fmt.Errorf("%w: vertex %d at position %d", ErrInvalidRoute, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated", ErrInvalidRoute, v)
		}
		seen[v] = true
	}

	return nil
}

// Evaluate validates route and sums Aux and D along its arcs; load[r] counts the
// inner vertices with bit r set.
//
// Complexity: O(len(route)·nres).
func Evaluate(o Oracle, route []int, nres int) (cost, length float64, load []int, err error) {
	if o == nil {
		return 0, 0, nil, ErrNilOracle
	}
	if err = ValidateRoute(route, o.N()); err != nil {
		return 0, 0, nil, err
	}
	if err = validateResources(o.N(), nres); err != nil {
		return 0, 0, nil, err
	}

	load = make([]int, nres)

	var (
		i, r int
		u, v int
	)
	for i = 0; i+1 < len(route); i++ {
		u, v = route[i], route[i+1]
		cost += o.Aux(u, v)
		length += o.D(u, v)
		for r = 0; r < nres; r++ {
			if v&(1<<uint(r)) != 0 {
				load[r]++
			}
		}
	}

	return cost, length, load, nil
}

// Feasible reports whether route respects capacity on every resource and the
// maximum length. Invalid routes are reported through err.
func Feasible(o Oracle, route []int, nres, capacity int, maxLen float64) (bool, error) {
	_, length, load, err := Evaluate(o, route, nres)
	if err != nil {
		return false, err
	}
	if length > maxLen {
		return false, nil
	}
	var q int
	for _, q = range load {
		if q > capacity {
			return false, nil
		}
	}

	return true, nil
}
