// Package instance — deterministic random instances.
//
// Goals:
//   - Determinism: same seed ⇒ identical instance across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources.
//
// math/rand.Rand is NOT goroutine-safe; every call builds its own stream.
package instance

import (
	"math"
	"math/rand"
)

// defaultSeed replaces seed==0 so the zero value still yields a fixed stream.
const defaultSeed int64 = 1

// side is the edge length of the square the random points are drawn from.
const side = 100.0

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomPoints draws n points uniformly from [0,side)², the depot first, and a
// dual value per point. The depot dual is 0; customer j receives
// (0.5 + U[0,1)) · 2·|p0 − pj|, so roughly half of the single-customer round
// trips have negative reduced cost and longer routes compete on the rest.
//
// Complexity: O(n).
func RandomPoints(n int, seed int64) ([][2]float64, []float64, error) {
	if n <= 0 {
		return nil, nil, ErrEmpty
	}

	r := rngFromSeed(seed)
	points := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		points[i] = [2]float64{r.Float64() * side, r.Float64() * side}
	}

	duals := make([]float64, n)
	var dx, dy float64
	for i = 1; i < n; i++ {
		dx = points[i][0] - points[0][0]
		dy = points[i][1] - points[0][1]
		duals[i] = (0.5 + r.Float64()) * 2 * math.Hypot(dx, dy)
	}

	return points, duals, nil
}

// Random builds a Euclidean pricing instance from RandomPoints.
//
// Complexity: O(n²).
func Random(n int, seed int64) (*Instance, error) {
	points, duals, err := RandomPoints(n, seed)
	if err != nil {
		return nil, err
	}

	return FromPoints(points, duals)
}
