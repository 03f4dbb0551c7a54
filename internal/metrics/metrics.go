package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// AllocationRuns counts allocation runs by target kind and outcome.
	AllocationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "allocation_runs_total", Help: "Allocation runs by target kind and whether demand was satisfied."},
		[]string{"kind", "satisfied"},
	)
	// UnmetDemand records the demand left uncovered per run, in m³/day.
	UnmetDemand = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "allocation_unmet_demand_m3", Help: "Unmet demand per allocation run in m³/day.", Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000}},
		[]string{"kind"},
	)
)

var regOnce sync.Once

// RegisterDefault registers collectors to Registry. Safe to call repeatedly.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(AllocationRuns)
		Registry.MustRegister(UnmetDemand)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ObserveAllocation records the outcome of one allocation run.
func ObserveAllocation(kind string, satisfied bool, unmet float64) {
	AllocationRuns.WithLabelValues(kind, strconv.FormatBool(satisfied)).Inc()
	UnmetDemand.WithLabelValues(kind).Observe(unmet)
}
