// Package metrics exports shopping list activity as prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"shopsmart/internal/domain"
)

const namespace = "shopsmart"

// Recorder counts list operations and tracks the current list size.
type Recorder struct {
	operations *prometheus.CounterVec
	items      *prometheus.GaugeVec
	total      prometheus.Gauge
}

// New registers the list metrics with reg. A nil reg registers nothing, which
// keeps tests independent of the global registry.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "list",
			Name:      "operations_total",
			Help:      "List operations by action and result.",
		}, []string{"action", "result"}),
		items: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "list",
			Name:      "products",
			Help:      "Distinct products on each side of the list.",
		}, []string{"state"}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "list",
			Name:      "total_count",
			Help:      "Sum of all quantities on the list.",
		}),
	}
	if reg != nil {
		reg.MustRegister(r.operations, r.items, r.total)
	}
	return r
}

// Operation counts one list operation.
func (r *Recorder) Operation(action string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.operations.WithLabelValues(action, result).Inc()
}

// Observe updates the size gauges. It has the shape of a list subscriber.
func (r *Recorder) Observe(snap domain.ListSnapshot) {
	r.items.WithLabelValues(string(domain.StatePending)).Set(float64(len(snap.Pending)))
	r.items.WithLabelValues(string(domain.StatePurchased)).Set(float64(len(snap.Purchased)))
	r.total.Set(float64(snap.TotalCount))
}
