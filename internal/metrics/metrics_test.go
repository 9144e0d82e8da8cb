package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/hexpath/internal/metrics"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRequest("dijkstra", "path")
	m.ObserveRequest("dijkstra", "path")
	m.ObserveRequest(metrics.OtherRequestType, "invalid_request_type")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("dijkstra", "path")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(metrics.OtherRequestType, "invalid_request_type")))
}

func TestMetrics_ObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveSearch("dijkstra", 3*time.Millisecond, 4)
	m.ObserveSearch("dijkstra", time.Millisecond, 0)

	assert.Equal(t, 1, testutil.CollectAndCount(m.SearchDuration))

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]uint64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if h := metric.GetHistogram(); h != nil {
				counts[mf.GetName()] = h.GetSampleCount()
			}
		}
	}
	assert.Equal(t, uint64(2), counts["hexpath_path_search_duration_seconds"])
	assert.Equal(t, uint64(1), counts["hexpath_path_length"])
}

func TestMetrics_RateLimited(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRateLimited()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("dijkstra", "path")
		m.ObserveSearch("dijkstra", time.Millisecond, 3)
		m.ObserveRateLimited()
	})
}

func TestMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	assert.Panics(t, func() { metrics.New(reg) })
}
