// Package stats exports espprc search statistics as Prometheus metrics.
//
// A *Collector implements espprc.Observer; pass it to Solve with
// espprc.WithObserver and every successful run is recorded:
//
//	espprc_runs_total
//	espprc_labels_created_total
//	espprc_dequeues_total
//	espprc_labels_accepted_total
//	espprc_labels_rejected_total
//	espprc_labels_dominated_total
//	espprc_labels_invalidated_total
//	espprc_labels_reclaimed_total
//	espprc_extensions_infeasible_total{reason="length"|"resource"}
//	espprc_solve_duration_seconds
//	espprc_last_arena_size
//
// Metric names are prefixed with the namespace given to NewCollector, if any.
package stats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pricing/espprc"
)

// Infeasibility reasons used as label values.
const (
	ReasonLength   = "length"
	ReasonResource = "resource"
)

// Collector records espprc runs into Prometheus metrics.
type Collector struct {
	runs        prometheus.Counter
	dequeues    prometheus.Counter
	created     prometheus.Counter
	accepted    prometheus.Counter
	rejected    prometheus.Counter
	dominated   prometheus.Counter
	invalidated prometheus.Counter
	reclaimed   prometheus.Counter
	infeasible  *prometheus.CounterVec
	duration    prometheus.Histogram
	arena       prometheus.Gauge
}

var _ espprc.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg. A nil reg uses
// prometheus.DefaultRegisterer. Registration errors (e.g. a second collector
// with the same namespace on one registry) are returned as-is, after the metrics
// registered so far have been unregistered again, so reg is left unchanged.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_runs_total",
			Help:      "Completed pricing searches.",
		}),
		dequeues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_dequeues_total",
			Help:      "Vertices taken from the work queue.",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_labels_created_total",
			Help:      "Labels built by extension.",
		}),
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_labels_accepted_total",
			Help:      "Extensions accepted by their destination store.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_labels_rejected_total",
			Help:      "Extensions rejected because a stored label dominates them.",
		}),
		dominated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_labels_dominated_total",
			Help:      "Stored labels removed by a newer dominating label.",
		}),
		invalidated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_labels_invalidated_total",
			Help:      "Labels marked dead by dominance cascades.",
		}),
		reclaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_labels_reclaimed_total",
			Help:      "Dead store entries dropped on insert.",
		}),
		infeasible: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "espprc_extensions_infeasible_total",
			Help:      "Extensions pruned before label creation, by reason.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "espprc_solve_duration_seconds",
			Help:      "Wall-clock duration of pricing searches.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
		arena: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "espprc_last_arena_size",
			Help:      "Labels retained by the most recent search.",
		}),
	}

	var (
		m, r       prometheus.Collector
		err        error
		registered []prometheus.Collector
	)
	for _, m = range []prometheus.Collector{
		c.runs, c.dequeues, c.created, c.accepted, c.rejected, c.dominated,
		c.invalidated, c.reclaimed, c.infeasible, c.duration, c.arena,
	} {
		if err = reg.Register(m); err != nil {
			for _, r = range registered {
				reg.Unregister(r)
			}

			return nil, err
		}
		registered = append(registered, m)
	}

	return c, nil
}

// ObserveRun records one completed search.
func (c *Collector) ObserveRun(s espprc.Stats) {
	c.runs.Inc()
	c.dequeues.Add(float64(s.Dequeues))
	c.created.Add(float64(s.LabelsCreated))
	c.accepted.Add(float64(s.LabelsAccepted))
	c.rejected.Add(float64(s.LabelsRejected))
	c.dominated.Add(float64(s.LabelsDominated))
	c.invalidated.Add(float64(s.LabelsInvalidated))
	c.reclaimed.Add(float64(s.LabelsReclaimed))
	c.infeasible.WithLabelValues(ReasonLength).Add(float64(s.LengthInfeasible))
	c.infeasible.WithLabelValues(ReasonResource).Add(float64(s.ResourceInfeasible))
	c.duration.Observe(s.Duration.Seconds())
	c.arena.Set(float64(s.ArenaSize))
}
