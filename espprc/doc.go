// Package espprc solves the Elementary Shortest Path Problem with Resource
// Constraints, the pricing subproblem of column generation for vehicle routing
// and crew scheduling.
//
// Overview:
//
//   - Given n vertices (vertex 0 is the depot) with pairwise distances D(i,j) and
//     pairwise reduced costs Aux(i,j), Solve returns the minimum reduced-cost
//     route 0 → … → 0 that visits every vertex at most once, respects a shared
//     capacity on each resource and a maximum round-trip length.
//   - Resource membership is encoded in vertex ids: vertex v consumes one unit of
//     resource r iff bit r of v is set.
//   - The empty route (cost 0) is always a candidate, so the answer is ≤ 0; a
//     negative answer means an improving column exists.
//
// Algorithm:
//
//   - Forward label setting over a FIFO work queue of vertices.
//   - A label (cost, length, visited set, resource loads) dominates another when it
//     is no worse on every component; per-vertex stores keep only non-dominated
//     labels.
//   - When a stored label is dominated, it and every label derived from it are
//     marked dead in one sweep over successor links; dead labels are skipped and
//     reclaimed lazily instead of being searched for in other stores.
//   - All labels of a run live in one arena; parent/child links are indices.
//
// Key features:
//
//   - Path reconstruction: Result.Route and Result.Columns carry full routes.
//   - Multiple columns: every surviving improving route, cheapest first.
//   - Functional options: context cancellation, logrus logger, stats observer.
//   - Route utilities: ValidateRoute, Evaluate, Feasible.
//
// Error handling (sentinel errors):
//
//   - ErrNilOracle, ErrEmptyInstance:
//     Returned for a missing or empty oracle.
//   - ErrBadResourceCount, ErrBadCapacity, ErrBadMaxLength:
//     Returned for out-of-range scalar parameters.
//   - ErrNonFiniteDistance, ErrNegativeDistance, ErrNonFiniteCost:
//     Returned when the oracle holds values the dominance order cannot compare.
//   - ErrInvalidRoute:
//     Returned by the route utilities.
//
// An instance where no route beats the empty one is not an error: Solve returns
// Cost 0 and Route [0].
//
// Concurrency:
//
//	Solve is single-threaded and keeps no package state; independent calls may run
//	concurrently as long as the Oracle tolerates concurrent reads.
//
// Example:
//
//	res, err := espprc.Solve(inst, 1, 1, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Improving() {
//	    addColumn(res.Route, res.Cost)
//	}
package espprc
