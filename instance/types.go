package instance

import "errors"

// Sentinel errors returned by the constructors and loaders.
var (
	// ErrEmpty indicates a matrix with no rows.
	ErrEmpty = errors.New("instance: no vertices")

	// ErrNonSquare indicates a matrix whose rows differ in length from its row count.
	ErrNonSquare = errors.New("instance: matrix is not square")

	// ErrDimensionMismatch indicates inputs of different orders (distances vs costs,
	// distances vs duals, points vs duals).
	ErrDimensionMismatch = errors.New("instance: dimension mismatch")

	// ErrNonFinite indicates NaN or ±Inf where a finite value is required.
	ErrNonFinite = errors.New("instance: non-finite value")

	// ErrNegativeDistance indicates a negative travel distance.
	ErrNegativeDistance = errors.New("instance: negative distance")

	// ErrBadFile indicates an instance file that decodes but violates the format
	// (missing section, both or neither of costs/duals, negative parameters).
	ErrBadFile = errors.New("instance: malformed instance file")
)

// Instance is a dense distance/reduced-cost oracle over n vertices, vertex 0 being
// the depot. Values are prefetched into row-major buffers so D and Aux are a
// single slice read.
//
// An Instance is immutable after construction and safe for concurrent reads.
type Instance struct {
	n    int
	dist []float64 // dist[i*n+j] = D(i,j)
	aux  []float64 // aux[i*n+j]  = Aux(i,j)
}

// N returns the number of vertices.
func (in *Instance) N() int { return in.n }

// D returns the travel distance from i to j.
func (in *Instance) D(i, j int) float64 { return in.dist[i*in.n+j] }

// Aux returns the reduced cost of the arc i→j.
func (in *Instance) Aux(i, j int) float64 { return in.aux[i*in.n+j] }
