package espprc

import (
	"github.com/soniakeys/bits"
)

// matOracle is a minimal Oracle over [][]float64 used by the internal tests.
type matOracle struct {
	d   [][]float64
	aux [][]float64
}

var _ Oracle = matOracle{}

func (m matOracle) N() int               { return len(m.d) }
func (m matOracle) D(i, j int) float64   { return m.d[i][j] }
func (m matOracle) Aux(i, j int) float64 { return m.aux[i][j] }

// uniform returns an n-vertex oracle with distance dist and cost c on every arc
// (zero diagonal).
func uniform(n int, dist, c float64) matOracle {
	m := matOracle{d: make([][]float64, n), aux: make([][]float64, n)}
	var i, j int
	for i = 0; i < n; i++ {
		m.d[i] = make([]float64, n)
		m.aux[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				m.d[i][j] = dist
				m.aux[i][j] = c
			}
		}
	}

	return m
}

// mkLabel pushes a hand-built live label into a.
func mkLabel(a *arena, n, at int, cost, length float64, visited []int, load []int) labelID {
	vs := bits.New(n)
	var v int
	for _, v = range visited {
		vs.SetBit(v, 1)
	}

	return a.push(label{
		at:      at,
		visited: vs,
		cost:    cost,
		length:  length,
		load:    append([]int(nil), load...),
		pred:    noLabel,
		state:   stateLive,
	})
}

// liveIDs returns the non-dead entries of s.
func liveIDs(a *arena, s *store) []labelID {
	var out []labelID
	for _, id := range s.ids {
		if a.get(id).state != stateDead {
			out = append(out, id)
		}
	}

	return out
}
