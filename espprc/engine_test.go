package espprc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runEngine executes a search and returns the engine for inspection.
func runEngine(t *testing.T, o Oracle, nres, capacity int, maxLen float64) *engine {
	t.Helper()
	n, err := validateAll(o, nres, capacity, maxLen, true)
	require.NoError(t, err)
	e := newEngine(o, n, nres, capacity, maxLen)
	require.NoError(t, e.run(DefaultOptions()))

	return e
}

func TestEngine_DominanceAtSharedVertex(t *testing.T) {
	// 0→1→3→2 and 0→3→1→2 reach vertex 2 with identical visited set, load and
	// length; the arc 3→1 is one unit cheaper, so only the second may survive.
	o := uniform(4, 1, -10)
	o.aux[3][1] = -11

	e := runEngine(t, o, 2, 3, 100)

	var full []labelID
	for _, id := range liveIDs(&e.arena, &e.stores[2]) {
		if e.arena.get(id).visited.OnesCount() == 3 {
			full = append(full, id)
		}
	}
	require.Len(t, full, 1)
	assert.Equal(t, -31.0, e.arena.get(full[0]).cost)
	assert.Equal(t, []int{0, 3, 1, 2}, e.arena.route(full[0]))
	assert.GreaterOrEqual(t, e.stats.LabelsRejected+e.stats.LabelsDominated, 1)

	res := e.result(DefaultOptions())
	assert.Equal(t, -41.0, res.Cost)
}

func TestEngine_StoresAreAntichainsAfterRun(t *testing.T) {
	o := uniform(6, 1, -1)
	o.aux[2][4] = -3
	o.aux[5][1] = 2
	e := runEngine(t, o, 2, 2, 5)

	for v := range e.stores {
		live := liveIDs(&e.arena, &e.stores[v])
		for _, x := range live {
			for _, y := range live {
				if x != y {
					require.False(t, dominates(e.arena.get(x), e.arena.get(y)), "vertex %d", v)
				}
			}
		}
	}
}

func TestEngine_NoLiveLabelsLeft(t *testing.T) {
	// When the queue drains every label was either expanded or killed.
	e := runEngine(t, uniform(5, 1, -1), 2, 2, 100)
	for v := 1; v < len(e.stores); v++ {
		for _, id := range e.stores[v].ids {
			assert.NotEqual(t, stateLive, e.arena.get(id).state)
		}
	}
	assert.False(t, e.pending())
	for v := range e.inQueue {
		assert.False(t, e.inQueue[v])
	}
}

func TestEngine_ResourceFeasibilityMonotone(t *testing.T) {
	var a arena
	l := a.get(mkLabel(&a, 8, 1, 0, 0, []int{1, 3}, []int{2, 1, 0}))
	for s := 1; s < 8; s++ {
		for c := 0; c <= 4; c++ {
			e := &engine{nres: 3, capacity: c}
			if !e.resourceFeasible(l, s) {
				for lower := 0; lower < c; lower++ {
					e.capacity = lower
					require.False(t, e.resourceFeasible(l, s), "s=%d c=%d lower=%d", s, c, lower)
				}
			}
		}
	}
}

func TestEngine_QueueDeduplicatesAndCompacts(t *testing.T) {
	e := newEngine(uniform(200, 1, 0), 200, 0, 0, 1)
	e.enqueue(3)
	e.enqueue(3)
	e.enqueue(4)
	require.Equal(t, 3, e.dequeue())
	e.enqueue(3)
	require.Equal(t, 4, e.dequeue())
	require.Equal(t, 3, e.dequeue())
	require.False(t, e.pending())

	for v := 0; v < 200; v++ {
		e.enqueue(v)
	}
	for v := 0; v < 200; v++ {
		require.Equal(t, v, e.dequeue())
	}
	assert.LessOrEqual(t, len(e.queue), 200)
	assert.False(t, e.pending())
}
