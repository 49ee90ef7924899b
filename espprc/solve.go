// Package espprc — forward-labeling driver.
//
// Solve runs a label-setting dynamic program over a FIFO work queue of vertices:
//
//  1. Seed the depot store with the empty-path label and enqueue the depot.
//  2. Dequeue a vertex v; for every live label ending at v and every unvisited
//     successor s ≠ v, prune by the length lookahead
//     length + D(v,s) + D(s,0) > maxLen and by resource capacity
//     load[r] + 1 > capacity for every resource bit r of s.
//  3. Offer each surviving extension to s's store. Accepted labels are linked as
//     successors of their parent and s is enqueued unless it is the depot or
//     already queued. The parent is then marked expanded.
//  4. When the queue drains, the cheapest non-dead depot label is the answer.
//
// The depot is never re-enqueued: reaching it closes a route.
//
// Complexity: exponential in n in the worst case (the problem is strongly NP-hard);
// dominance keeps each store an antichain, which is what makes practical instances
// tractable. Each extension costs O(n/64 + nres) plus one store scan.
package espprc

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Solve finds the minimum reduced-cost elementary route that leaves the depot,
// visits vertices at most once, consumes at most capacity units of each of the
// nres resources, and has a round-trip length of at most maxLen.
//
// Vertex v consumes one unit of resource r iff bit r of v is set.
//
// The empty route (cost 0) always takes part in the minimum, so Result.Cost ≤ 0;
// a negative value signals an improving column.
//
// Preconditions (checked before the search):
//  1. o non-nil (ErrNilOracle) with N() ≥ 1 (ErrEmptyInstance).
//  2. 0 ≤ nres ≤ bit length of N()−1 (ErrBadResourceCount).
//  3. capacity ≥ 0 (ErrBadCapacity); maxLen ≥ 0 and not NaN (ErrBadMaxLength).
//  4. Unless WithoutOracleCheck: all distances finite and non-negative, all
//     off-diagonal reduced costs finite.
//
// A cancelled context aborts the search between two dequeues and returns the
// context error wrapped.
func Solve(o Oracle, nres, capacity int, maxLen float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	n, err := validateAll(o, nres, capacity, maxLen, cfg.CheckOracle)
	if err != nil {
		return Result{}, err
	}

	log := cfg.Logger.WithFields(logrus.Fields{
		"vertices":   n,
		"resources":  nres,
		"capacity":   capacity,
		"max_length": maxLen,
	})
	log.Debug("espprc: search started")

	e := newEngine(o, n, nres, capacity, maxLen)
	started := time.Now()
	if err = e.run(cfg); err != nil {
		log.WithError(err).Debug("espprc: search aborted")

		return Result{}, err
	}
	e.stats.Duration = time.Since(started)
	e.stats.ArenaSize = e.arena.len()

	res := e.result(cfg)

	log.WithFields(logrus.Fields{
		"cost":        res.Cost,
		"columns":     len(res.Columns),
		"dequeues":    e.stats.Dequeues,
		"created":     e.stats.LabelsCreated,
		"accepted":    e.stats.LabelsAccepted,
		"dominated":   e.stats.LabelsDominated,
		"invalidated": e.stats.LabelsInvalidated,
		"duration":    e.stats.Duration,
	}).Debug("espprc: search finished")

	if cfg.Observer != nil {
		cfg.Observer.ObserveRun(res.Stats)
	}

	return res, nil
}

// engine holds all state of one labeling run.
type engine struct {
	o        Oracle
	n        int
	nres     int
	capacity int
	maxLen   float64

	arena  arena
	stores []store

	queue   []int  // FIFO of vertices; queue[head:] is pending
	head    int    // index of the next vertex to dequeue
	inQueue []bool // membership flags, one per vertex

	// backD[s] = D(s, depot), prefetched for the length lookahead.
	backD []float64

	stats Stats
}

// newEngine allocates stores, queue flags and the return-distance prefetch.
func newEngine(o Oracle, n, nres, capacity int, maxLen float64) *engine {
	e := &engine{
		o:        o,
		n:        n,
		nres:     nres,
		capacity: capacity,
		maxLen:   maxLen,
		stores:   make([]store, n),
		queue:    make([]int, 0, n),
		inQueue:  make([]bool, n),
		backD:    make([]float64, n),
		stats:    Stats{Vertices: n},
	}
	var s int
	for s = 0; s < n; s++ {
		e.backD[s] = o.D(s, Depot)
	}

	return e
}

// enqueue appends v unless it is already pending.
func (e *engine) enqueue(v int) {
	if e.inQueue[v] {
		return
	}
	e.inQueue[v] = true
	e.queue = append(e.queue, v)
}

// dequeue pops the oldest pending vertex. The backing slice is compacted once the
// consumed prefix dominates it, keeping memory proportional to the pending part.
func (e *engine) dequeue() int {
	v := e.queue[e.head]
	e.head++
	if e.head > 64 && e.head*2 > len(e.queue) {
		e.queue = append(e.queue[:0], e.queue[e.head:]...)
		e.head = 0
	}
	e.inQueue[v] = false

	return v
}

// pending reports whether the queue holds a vertex.
func (e *engine) pending() bool { return e.head < len(e.queue) }

// run executes the labeling loop until the queue drains or ctx is cancelled.
func (e *engine) run(cfg Options) error {
	e.stores[Depot].seed(e.arena.initial(e.n, e.nres))
	e.enqueue(Depot)

	var (
		v   int
		i   int
		cnt int
		id  labelID
	)
	for e.pending() {
		if err := cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("espprc: search cancelled after %d dequeues: %w", e.stats.Dequeues, err)
		}

		v = e.dequeue()
		e.stats.Dequeues++

		// Inserts only target stores of other vertices, so the store of v is
		// stable for the whole pass.
		cnt = e.stores[v].len()
		for i = 0; i < cnt; i++ {
			id = e.stores[v].ids[i]
			if e.arena.get(id).state != stateLive {
				continue
			}
			e.expand(v, id)
			if l := e.arena.get(id); l.state == stateLive {
				l.state = stateExpanded
			}
		}
	}

	return nil
}

// expand extends label id (ending at v) to every feasible successor.
func (e *engine) expand(v int, id labelID) {
	var (
		s     int
		nl    labelID
		ok    bool
		delta storeDelta
		l     *label
	)
	for s = 0; s < e.n; s++ {
		if s == v {
			continue
		}
		// Re-read after every push: the arena may have grown.
		l = e.arena.get(id)
		if s != Depot && l.visited.Bit(s) == 1 {
			continue
		}
		if l.length+e.o.D(v, s)+e.backD[s] > e.maxLen {
			e.stats.LengthInfeasible++
			continue
		}
		if !e.resourceFeasible(l, s) {
			e.stats.ResourceInfeasible++
			continue
		}

		nl = e.arena.extend(e.o, id, s, e.nres)
		e.stats.LabelsCreated++

		ok, delta = e.stores[s].insert(&e.arena, nl)
		e.stats.LabelsDominated += delta.dominated
		e.stats.LabelsInvalidated += delta.invalidated
		e.stats.LabelsReclaimed += delta.reclaimed
		if !ok {
			e.stats.LabelsRejected++
			e.arena.drop(nl)
			continue
		}
		e.stats.LabelsAccepted++
		e.arena.link(id, nl)
		if s != Depot {
			e.enqueue(s)
		}
	}
}

// resourceFeasible reports whether visiting s keeps every resource it consumes
// within capacity.
func (e *engine) resourceFeasible(l *label, s int) bool {
	var r int
	for r = 0; r < e.nres; r++ {
		if s&(1<<uint(r)) != 0 && l.load[r]+1 > e.capacity {
			return false
		}
	}

	return true
}

// result reduces the depot store to the answer. Dead depot labels are logically
// absent; the expanded initial label still counts as the empty route.
func (e *engine) result(cfg Options) Result {
	var (
		best    = noLabel
		id      labelID
		l       *label
		columns []labelID
	)
	for _, id = range e.stores[Depot].ids {
		l = e.arena.get(id)
		if l.state == stateDead {
			continue
		}
		if best == noLabel || before(l.cost, id, e.arena.get(best).cost, best) {
			best = id
		}
		if l.cost < -cfg.ColumnTolerance {
			columns = append(columns, id)
		}
	}

	sort.Slice(columns, func(i, j int) bool {
		return before(e.arena.get(columns[i]).cost, columns[i], e.arena.get(columns[j]).cost, columns[j])
	})
	if cfg.MaxColumns > 0 && len(columns) > cfg.MaxColumns {
		columns = columns[:cfg.MaxColumns]
	}

	res := Result{Stats: e.stats}
	bl := e.arena.get(best)
	res.Cost = bl.cost
	res.Length = bl.length
	res.Load = append([]int(nil), bl.load...)
	res.Route = e.arena.route(best)

	if len(columns) > 0 {
		res.Columns = make([]Column, len(columns))
		for i, cid := range columns {
			cl := e.arena.get(cid)
			res.Columns[i] = Column{
				Route:  e.arena.route(cid),
				Cost:   cl.cost,
				Length: cl.length,
				Load:   append([]int(nil), cl.load...),
			}
		}
	}

	return res
}

// before orders depot labels by cost, then by creation order, so the best route
// and the column order do not depend on store layout.
func before(ci float64, i labelID, cj float64, j labelID) bool {
	if ci != cj {
		return ci < cj
	}

	return i < j
}
