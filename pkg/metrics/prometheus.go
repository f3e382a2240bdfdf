// Package metrics provides Prometheus metrics for the birdie report run.
//
// A one-shot CLI has no scrape endpoint; the registry is gathered at the
// end of a run and logged as a summary instead.
package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Manager manages all Prometheus metrics for a report run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Fetch metrics - the API is flaky and retried, so attempts and
	// retries are tracked separately from completed fetches.
	fetchRequests   *prometheus.CounterVec
	fetchRetries    prometheus.Counter
	fetchDuration   prometheus.Histogram
	solutionsLoaded prometheus.Counter

	// Report metrics.
	holesReported  prometheus.Gauge
	reportDuration prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Init initializes the global metrics manager.
func Init(opts ...Option) error {
	m := &Manager{
		namespace:        "birdie",
		subsystem:        "report",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.fetchRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_requests_total",
		Help:      "API fetch requests by outcome.",
	}, []string{"outcome"})
	m.fetchRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_retries_total",
		Help:      "Fetch attempts repeated after a non-2xx response.",
	})
	m.fetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_seconds",
		Help:      "Latency of individual API fetches.",
		Buckets:   m.histogramBuckets,
	})
	m.solutionsLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "solutions_loaded_total",
		Help:      "Solution records decoded from the API.",
	})
	m.holesReported = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "holes_reported",
		Help:      "Holes rendered in the final report.",
	})
	m.reportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duration_seconds",
		Help:      "End-to-end duration of a report run.",
		Buckets:   m.histogramBuckets,
	})

	collectors := []prometheus.Collector{
		m.fetchRequests,
		m.fetchRetries,
		m.fetchDuration,
		m.solutionsLoaded,
		m.holesReported,
		m.reportDuration,
	}
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return fmt.Errorf("%w: %v", ErrRegisterFailed, err)
		}
	}

	globalManager = m
	return nil
}

// get returns the global manager, or nil when metrics are not initialized
// or disabled. Recording into a nil manager is a no-op so the engine never
// depends on metrics being set up.
func get() *Manager {
	if globalManager == nil || !globalManager.enabled {
		return nil
	}
	return globalManager
}

// RecordFetch records one completed fetch request.
func RecordFetch(outcome string, d time.Duration) {
	m := get()
	if m == nil {
		return
	}
	m.fetchRequests.WithLabelValues(outcome).Inc()
	m.fetchDuration.Observe(d.Seconds())
}

// RecordFetchRetry records one retried fetch attempt.
func RecordFetchRetry() {
	if m := get(); m != nil {
		m.fetchRetries.Inc()
	}
}

// RecordSolutionsLoaded records decoded solution records.
func RecordSolutionsLoaded(n int) {
	if m := get(); m != nil {
		m.solutionsLoaded.Add(float64(n))
	}
}

// RecordHolesReported records the number of rendered holes.
func RecordHolesReported(n int) {
	if m := get(); m != nil {
		m.holesReported.Set(float64(n))
	}
}

// RecordReportDuration records the end-to-end run duration.
func RecordReportDuration(d time.Duration) {
	if m := get(); m != nil {
		m.reportDuration.Observe(d.Seconds())
	}
}

// Summary gathers the registry into a flat name -> value map for logging
// at the end of a run. Histograms report their sample count.
func Summary() (map[string]float64, error) {
	m := get()
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatherFailed, err)
	}

	out := make(map[string]float64)
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			name := fam.GetName()
			for _, label := range metric.GetLabel() {
				name += "{" + label.GetName() + "=" + label.GetValue() + "}"
			}
			switch fam.GetType() {
			case dto.MetricType_COUNTER:
				out[name] = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[name] = metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				out[name+"_count"] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

// SummaryKeys returns the summary's keys in stable order, for
// deterministic logging.
func SummaryKeys(summary map[string]float64) []string {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
