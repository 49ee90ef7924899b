// Package espprc — labels and the label arena.
//
// A label is one partial elementary path from the depot. All labels of a run live
// in a single arena slice; predecessor and successor links are arena indices, so
// the label graph has one owner and is acyclic by construction (a label can only
// reference labels created before it, or after it as successors).
//
// Lifecycle of a label:
//
//	live     → created by extension and accepted by its destination store.
//	expanded → the driver extended it to every feasible successor; never extended again.
//	dead     → it, or one of its ancestors, was dominated; logically absent.
package espprc

import "github.com/soniakeys/bits"

// labelID indexes the run arena.
type labelID int

// noLabel marks the missing predecessor of the initial depot label.
const noLabel labelID = -1

// labelState is the liveness of a label.
type labelState uint8

const (
	stateLive labelState = iota
	stateExpanded
	stateDead
)

// label is one dynamic-programming state.
type label struct {
	at      int        // terminal vertex
	visited bits.Bits  // vertices on the path, depot excluded
	cost    float64    // accumulated reduced cost
	length  float64    // accumulated travel distance
	load    []int      // load[r] = visited vertices consuming resource r
	pred    labelID    // label this one extended; noLabel for the initial label
	succ    []labelID  // accepted extensions of this label
	state   labelState // live / expanded / dead
}

// arena owns every label of a run.
type arena struct {
	labels []label
}

// get returns a pointer into the arena. It is invalidated by the next push.
func (a *arena) get(id labelID) *label { return &a.labels[id] }

// len returns the number of labels held.
func (a *arena) len() int { return len(a.labels) }

// push appends l and returns its id.
func (a *arena) push(l label) labelID {
	a.labels = append(a.labels, l)

	return labelID(len(a.labels) - 1)
}

// drop removes the most recently pushed label. Only valid while nothing
// references it (a candidate rejected by its store).
func (a *arena) drop(id labelID) {
	if int(id) == len(a.labels)-1 {
		a.labels[id] = label{}
		a.labels = a.labels[:id]
	}
}

// initial pushes the empty-path label at the depot.
func (a *arena) initial(n, nres int) labelID {
	return a.push(label{
		at:      Depot,
		visited: bits.New(n),
		load:    make([]int, nres),
		pred:    noLabel,
		state:   stateLive,
	})
}

// extend builds the label obtained by appending vertex to from's path and pushes
// it into the arena. Feasibility must already be established by the caller.
//
// Complexity: O(n/64 + nres).
func (a *arena) extend(o Oracle, from labelID, vertex, nres int) labelID {
	src := a.get(from)

	var visited bits.Bits
	visited.Set(src.visited)
	if vertex != Depot {
		visited.SetBit(vertex, 1)
	}

	load := make([]int, len(src.load))
	copy(load, src.load)
	var r int
	for r = 0; r < nres; r++ {
		if vertex&(1<<uint(r)) != 0 {
			load[r]++
		}
	}

	nl := label{
		at:      vertex,
		visited: visited,
		cost:    src.cost + o.Aux(src.at, vertex),
		length:  src.length + o.D(src.at, vertex),
		load:    load,
		pred:    from,
		state:   stateLive,
	}

	return a.push(nl)
}

// link records child as an accepted extension of parent.
func (a *arena) link(parent, child labelID) {
	p := a.get(parent)
	p.succ = append(p.succ, child)
}

// invalidate marks id and every label reachable through successor links as dead.
// It uses an explicit stack so arbitrarily long successor chains cannot exhaust
// the goroutine stack. Already-dead labels are not descended into: their subtree
// was marked when they died and dead labels never gain successors.
//
// Returns the number of labels newly marked dead.
func (a *arena) invalidate(id labelID) int {
	var (
		marked int
		stack  = []labelID{id}
		cur    labelID
		l      *label
	)
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		l = a.get(cur)
		if l.state == stateDead {
			continue
		}
		l.state = stateDead
		marked++
		stack = append(stack, l.succ...)
	}

	return marked
}

// route reconstructs the vertex sequence of id by walking predecessors back to
// the initial label. A completed label yields [0 … 0]; the initial label yields [0].
func (a *arena) route(id labelID) []int {
	var rev []int
	cur := id
	for cur != noLabel {
		l := a.get(cur)
		rev = append(rev, l.at)
		cur = l.pred
	}

	out := make([]int, len(rev))
	var i int
	for i = range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}
