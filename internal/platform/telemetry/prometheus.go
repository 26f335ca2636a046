package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QuoteMetrics are Prometheus collectors describing quote API traffic.
// They are served on /-/metrics next to the Go runtime collectors.
type QuoteMetrics struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote API collectors on reg.
// A nil registerer means prometheus.DefaultRegisterer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &QuoteMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "droplet",
			Subsystem: "quote_api",
			Name:      "requests_total",
			Help:      "Quote API operations by name.",
		}, []string{"operation"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "droplet",
			Subsystem: "quote_api",
			Name:      "failures_total",
			Help:      "Failed quote API operations by name and error kind.",
		}, []string{"operation", "kind"}),
	}
}

// ObserveRequest counts one operation attempt.
func (m *QuoteMetrics) ObserveRequest(operation string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation).Inc()
}

// ObserveFailure counts one failed operation.
func (m *QuoteMetrics) ObserveFailure(operation, kind string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(operation, kind).Inc()
}
