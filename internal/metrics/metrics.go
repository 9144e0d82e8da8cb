// Package metrics holds the Prometheus collectors for path requests
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OtherRequestType is the request_type label for every unsupported request type
const OtherRequestType = "other"

// Metrics groups the collectors recorded per path request. Collectors are
// registered against the registerer passed to New rather than the global one.
type Metrics struct {
	// Requests counts path requests by request type and outcome
	Requests *prometheus.CounterVec

	// SearchDuration tracks time spent in the engine
	SearchDuration *prometheus.HistogramVec

	// PathLength tracks the number of cells in reported paths
	PathLength prometheus.Histogram

	// RateLimited counts requests rejected by the rate limiter
	RateLimited prometheus.Counter
}

// New registers the collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hexpath_path_requests_total",
			Help: "Total path requests by request type and outcome",
		}, []string{"request_type", "outcome"}),

		SearchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hexpath_path_search_duration_seconds",
			Help:    "Shortest path search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}, []string{"request_type"}),

		PathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hexpath_path_length",
			Help:    "Number of cells in reported paths",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256},
		}),

		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "hexpath_rate_limited_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// ObserveRequest records the outcome of one path request
func (m *Metrics) ObserveRequest(requestType, outcome string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(requestType, outcome).Inc()
}

// ObserveSearch records a completed engine search
func (m *Metrics) ObserveSearch(requestType string, elapsed time.Duration, pathLength int) {
	if m == nil {
		return
	}
	m.SearchDuration.WithLabelValues(requestType).Observe(elapsed.Seconds())
	if pathLength > 0 {
		m.PathLength.Observe(float64(pathLength))
	}
}

// ObserveRateLimited records a rejected request
func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}
