// Package espprc defines the sentinel errors, configuration options and result
// types of the resource-constrained elementary shortest path pricing solver.
//
// Options:
//
//	– Ctx:             cancellation context, checked once per dequeued vertex.
//	– Logger:          structured logger for run start/finish entries (Debug level).
//	– Observer:        receives the per-run Stats after a successful search.
//	– MaxColumns:      upper bound on improving routes returned in Result.Columns (0 = all).
//	– ColumnTolerance: a depot label is an improving column iff cost < −ColumnTolerance.
//	– CheckOracle:     scan every oracle pair for finiteness before the search.
//
// Errors (sentinel):
//
//	– ErrNilOracle          if the oracle is nil.
//	– ErrEmptyInstance      if the oracle reports no vertices.
//	– ErrBadResourceCount   if nresources is negative or exceeds the vertex-id bit width.
//	– ErrBadCapacity        if the resource capacity is negative.
//	– ErrBadMaxLength       if maxLen is NaN or negative.
//	– ErrNonFiniteDistance  if some D(i,j) is NaN or ±Inf.
//	– ErrNegativeDistance   if some D(i,j) is negative.
//	– ErrNonFiniteCost      if some Aux(i,j), i≠j, is NaN or ±Inf.
package espprc

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilOracle indicates that a nil Oracle was passed to Solve.
	ErrNilOracle = errors.New("espprc: oracle is nil")

	// ErrEmptyInstance indicates that the oracle has no vertices (not even the depot).
	ErrEmptyInstance = errors.New("espprc: instance has no vertices")

	// ErrBadResourceCount indicates that nresources is negative or larger than the
	// number of bits needed to address every vertex id.
	ErrBadResourceCount = errors.New("espprc: resource count out of range")

	// ErrBadCapacity indicates a negative resource capacity.
	ErrBadCapacity = errors.New("espprc: resource capacity must be non-negative")

	// ErrBadMaxLength indicates that the maximum route length is NaN or negative.
	ErrBadMaxLength = errors.New("espprc: maximum length must be a non-negative number")

	// ErrNonFiniteDistance indicates that the oracle returned NaN or ±Inf as a distance.
	ErrNonFiniteDistance = errors.New("espprc: non-finite distance")

	// ErrNegativeDistance indicates that the oracle returned a negative distance.
	ErrNegativeDistance = errors.New("espprc: negative distance")

	// ErrNonFiniteCost indicates that the oracle returned NaN or ±Inf as a reduced cost.
	ErrNonFiniteCost = errors.New("espprc: non-finite reduced cost")
)

// Depot is the mandatory start and end vertex of every route.
const Depot = 0

// DefaultColumnTolerance is the default threshold below −0 a route cost must fall
// to be reported as an improving column.
const DefaultColumnTolerance = 1e-9

// Oracle supplies pairwise travel distances and reduced costs over N vertices.
// Vertex 0 is the depot. Both lookups are expected to be O(1).
type Oracle interface {
	// N returns the number of vertices.
	N() int

	// D returns the travel distance from i to j.
	D(i, j int) float64

	// Aux returns the reduced cost of travelling from i to j.
	Aux(i, j int) float64
}

// Observer receives search statistics after every successful Solve.
type Observer interface {
	ObserveRun(s Stats)
}

// Options configures a single Solve call.
type Options struct {
	Ctx             context.Context    // cancellation, checked per dequeued vertex
	Logger          logrus.FieldLogger // run-level logging
	Observer        Observer           // optional stats sink
	MaxColumns      int                // cap on Result.Columns; 0 means no cap
	ColumnTolerance float64            // improving iff cost < −ColumnTolerance
	CheckOracle     bool               // validate every oracle value before the search
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger used for run-level entries. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers a sink for per-run Stats.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithMaxColumns bounds the number of improving routes returned in Result.Columns.
// Zero means "all improving routes". Negative values panic.
func WithMaxColumns(k int) Option {
	return func(o *Options) {
		if k < 0 {
			panic("espprc: MaxColumns must be non-negative")
		}
		o.MaxColumns = k
	}
}

// WithColumnTolerance sets the improvement threshold for Result.Columns.
// Negative or NaN values panic.
func WithColumnTolerance(eps float64) Option {
	return func(o *Options) {
		if !(eps >= 0) {
			panic("espprc: ColumnTolerance must be non-negative")
		}
		o.ColumnTolerance = eps
	}
}

// WithoutOracleCheck skips the O(n²) finiteness scan of the oracle. Use it in
// column-generation loops where the oracle has already been validated.
func WithoutOracleCheck() Option {
	return func(o *Options) {
		o.CheckOracle = false
	}
}

// DefaultOptions returns the Options used when no Option is passed.
//
// Defaults:
//   - Ctx:             context.Background().
//   - Logger:          logrus.StandardLogger().
//   - Observer:        nil.
//   - MaxColumns:      0 (all improving routes).
//   - ColumnTolerance: DefaultColumnTolerance.
//   - CheckOracle:     true.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		Logger:          logrus.StandardLogger(),
		MaxColumns:      0,
		ColumnTolerance: DefaultColumnTolerance,
		CheckOracle:     true,
	}
}

// Column is one completed depot-to-depot route.
type Column struct {
	// Route starts and ends at the depot; inner vertices are pairwise distinct.
	Route []int

	// Cost is the accumulated reduced cost along Route.
	Cost float64

	// Length is the accumulated travel distance along Route.
	Length float64

	// Load[r] counts the vertices of Route that consume resource r.
	Load []int
}

// Result holds the outcome of Solve.
type Result struct {
	// Cost is the minimum reduced cost over the surviving depot labels, the
	// empty route included. It is never positive.
	Cost float64

	// Route is the route attaining Cost. It is [0] when no route beats the
	// empty baseline.
	Route []int

	// Length and Load describe Route.
	Length float64
	Load   []int

	// Columns lists improving routes (Cost < −ColumnTolerance) by ascending cost.
	Columns []Column

	// Stats describes the search effort.
	Stats Stats
}

// Improving reports whether the search found a route with negative reduced cost.
func (r Result) Improving() bool { return len(r.Columns) > 0 }

// Stats counts the work performed by one search.
type Stats struct {
	Vertices           int           // oracle order n
	Dequeues           int           // vertices pulled from the work queue
	LabelsCreated      int           // labels built by extension (initial label excluded)
	LabelsAccepted     int           // extensions accepted by their destination store
	LabelsRejected     int           // extensions dominated on arrival
	LabelsDominated    int           // stored labels removed by a newer dominating label
	LabelsInvalidated  int           // labels marked dead by cascades, dominated ones included
	LabelsReclaimed    int           // dead labels dropped from stores during later inserts
	LengthInfeasible   int           // extensions pruned by the length lookahead
	ResourceInfeasible int           // extensions pruned by a resource capacity
	ArenaSize          int           // labels retained in the arena at the end of the run
	Duration           time.Duration // wall-clock search time
}
