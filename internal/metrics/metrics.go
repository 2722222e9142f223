// Package metrics records solver activity as prometheus metrics. Recorder
// implements knapsack.Observer.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvpack/knapsack"
)

const namespace = "lvpack"

// Recorder counts passes and solves and tracks solve shape.
type Recorder struct {
	passes   prometheus.Counter
	units    prometheus.Counter
	solves   prometheus.Counter
	states   prometheus.Histogram
	duration prometheus.Histogram
	value    prometheus.Gauge
}

var _ knapsack.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "0/1 passes applied to the value table.",
		}),
		units: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bundle_units_total",
			Help:      "Item units covered by applied bundles.",
		}),
		solves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed solves.",
		}),
		states: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "states",
			Help:      "Index-space size per solve.",
			Buckets:   prometheus.ExponentialBuckets(16, 16, 7),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time per solve.",
			Buckets:   prometheus.DefBuckets,
		}),
		value: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_value",
			Help:      "Optimal value of the most recent solve.",
		}),
	}

	for _, c := range []prometheus.Collector{r.passes, r.units, r.solves, r.states, r.duration, r.value} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// OnPass implements knapsack.Observer.
func (r *Recorder) OnPass(_ int, b knapsack.Bundle) {
	r.passes.Inc()
	r.units.Add(float64(b.Label))
}

// OnSolved implements knapsack.Observer.
func (r *Recorder) OnSolved(s knapsack.Stats) {
	r.solves.Inc()
	r.states.Observe(float64(s.States))
	r.duration.Observe(s.Elapsed.Seconds())
	r.value.Set(s.Value)
}

// WriteText writes every family gathered from g in the text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
