// Package metrics exposes Prometheus counters for assignment activity and
// gauges that read the registry's current size.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erazemk/shramba/internal/store"
)

const namespace = "shramba"

// Unassign outcomes.
const (
	UnassignRemoved  = "removed"
	UnassignRejected = "rejected"
)

// StatsSource reports the current registry counts.
type StatsSource interface {
	Stats() store.Stats
}

// Metrics owns a private Prometheus registry.
type Metrics struct {
	registry    *prometheus.Registry
	assignments *prometheus.CounterVec
	unassigns   *prometheus.CounterVec
	repairs     prometheus.Counter
}

// New registers all collectors. Gauges call stats on every scrape.
func New(stats StatsSource) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignments_total",
			Help:      "Assignment attempts by outcome.",
		}, []string{"outcome"}),
		unassigns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unassignments_total",
			Help:      "Unassignment attempts by outcome.",
		}, []string{"outcome"}),
		repairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repairs_total",
			Help:      "Successful repairs.",
		}),
	}

	// Pre-create label values so every series is exported from the start.
	for _, r := range []store.AssignResult{store.AssignAttached, store.AssignMoved, store.AssignUnchanged, store.AssignBlocked, store.AssignNotFound} {
		m.assignments.WithLabelValues(r.String())
	}
	m.unassigns.WithLabelValues(UnassignRemoved)
	m.unassigns.WithLabelValues(UnassignRejected)

	gauge := func(name, help string, value func(store.Stats) int) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(value(stats.Stats())) })
	}

	m.registry.MustRegister(
		m.assignments,
		m.unassigns,
		m.repairs,
		gauge("owners", "Registered owners.", func(s store.Stats) int { return s.Owners }),
		gauge("items", "Registered items.", func(s store.Stats) int { return s.Items }),
		gauge("items_assigned", "Items currently held by an owner.", func(s store.Stats) int { return s.AssignedItems }),
		gauge("history_records", "Entries in the assignment history.", func(s store.Stats) int { return s.Records }),
	)
	return m
}

// ObserveAssign counts one assignment attempt.
func (m *Metrics) ObserveAssign(result store.AssignResult) {
	m.assignments.WithLabelValues(result.String()).Inc()
}

// ObserveUnassign counts one unassignment attempt.
func (m *Metrics) ObserveUnassign(removed bool) {
	outcome := UnassignRejected
	if removed {
		outcome = UnassignRemoved
	}
	m.unassigns.WithLabelValues(outcome).Inc()
}

// ObserveRepair counts one successful repair.
func (m *Metrics) ObserveRepair() {
	m.repairs.Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
