// Package metrics exposes the CLI's --serve mode counters through
// github.com/prometheus/client_golang, the same dependency the
// retrieved chaos-utils pack uses on its query side; here it is wired
// as an instrumentation registry instead, scraped over HTTP.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters and gauges the CLI updates as it streams
// scenario samples through an engine.
type Metrics struct {
	registry *prometheus.Registry

	SamplesFed   prometheus.Counter
	CyclesClosed prometheus.Counter
	MatrixFill   prometheus.Gauge
	Overflowed   prometheus.Gauge
}

// New builds a Metrics bound to a fresh registry, namespaced
// "rainflow".
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SamplesFed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "rainflow",
			Name:      "samples_fed_total",
			Help:      "Total number of samples fed into counting engines.",
		}),
		CyclesClosed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "rainflow",
			Name:      "cycles_closed_total",
			Help:      "Total number of cycles closed across all matrices.",
		}),
		MatrixFill: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "rainflow",
			Name:      "matrix_fill_ratio",
			Help:      "Fraction of the most recently finalized matrix's cells that are nonzero.",
		}),
		Overflowed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "rainflow",
			Name:      "matrix_overflowed",
			Help:      "1 if the most recently finalized matrix has a saturated cell, else 0.",
		}),
	}
}

// Handler returns the HTTP handler that serves this Metrics's
// registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
