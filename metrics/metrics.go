// Package metrics exports search run statistics as Prometheus metrics.
//
// A Collector is fed through the driver's completion hook:
//
//	c, err := metrics.NewCollector(prometheus.DefaultRegisterer, "gridsearch")
//	res, err := search.Run(sp, g, search.ModeFindFirstGoal, metrics.Instrument[grid.Point](c))
//
// Series (with namespace "ns"):
//
//   - ns_search_runs_total{mode,outcome}: runs by mode and outcome
//     (ok, unreachable, canceled, error).
//   - ns_search_finalized_states_total{mode}: states finalized.
//   - ns_search_pruned_entries_total{mode}: frontier entries discarded by pruning.
//   - ns_search_run_duration_seconds{mode}: wall time per run.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridsearch/search"
)

// Outcome labels.
const (
	OutcomeOK          = "ok"
	OutcomeUnreachable = "unreachable"
	OutcomeCanceled    = "canceled"
	OutcomeError       = "error"
)

// Collector holds the search metrics. It is itself a prometheus.Collector
// and is safe for concurrent use by parallel runs.
type Collector struct {
	runs      *prometheus.CounterVec
	finalized *prometheus.CounterVec
	pruned    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds a Collector and registers it with reg.
// A nil reg skips registration.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_runs_total",
			Help:      "Search runs by mode and outcome.",
		}, []string{"mode", "outcome"}),
		finalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_finalized_states_total",
			Help:      "States finalized by search runs.",
		}, []string{"mode"}),
		pruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_pruned_entries_total",
			Help:      "Frontier entries discarded by a pruning policy.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_run_duration_seconds",
			Help:      "Search run duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"mode"}),
	}
	if reg != nil {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.runs.Describe(ch)
	c.finalized.Describe(ch)
	c.pruned.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.runs.Collect(ch)
	c.finalized.Collect(ch)
	c.pruned.Collect(ch)
	c.duration.Collect(ch)
}

// Observe records one finished run.
func (c *Collector) Observe(r search.Report) {
	mode := r.Mode.String()
	c.runs.WithLabelValues(mode, Outcome(r.Err)).Inc()
	c.finalized.WithLabelValues(mode).Add(float64(r.Stats.Finalized))
	c.pruned.WithLabelValues(mode).Add(float64(r.Stats.Pruned))
	c.duration.WithLabelValues(mode).Observe(r.Elapsed.Seconds())
}

// Instrument returns a search option reporting the run to c.
func Instrument[S comparable](c *Collector) search.Option[S] {
	return search.WithOnDone[S](c.Observe)
}

// Outcome classifies a run error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, search.ErrUnreachableGoal):
		return OutcomeUnreachable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	}

	return OutcomeError
}
