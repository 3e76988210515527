package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Dataset
	datasetRows           prometheus.Gauge
	datasetAthletes       prometheus.Gauge
	datasetUnresolvedNOCs prometheus.Gauge
	datasetLoadDuration   prometheus.Histogram
	datasetLoads          *prometheus.CounterVec

	// Aggregation pipeline
	chartRequests *prometheus.CounterVec
	chartLatency  *prometheus.HistogramVec
	chartEmpty    *prometheus.CounterVec
	invalidInput  *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by package-level helpers

// customRegistry keeps the exposition free of default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // exposed through GetRegistry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "olympics",
		subsystem:        "dashboard",
		histogramBuckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		enabled:          true,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.datasetRows = auto.NewGauge(m.gaugeOpts("dataset_rows",
		"Number of athlete-event rows held in memory"))
	m.datasetAthletes = auto.NewGauge(m.gaugeOpts("dataset_athletes",
		"Number of distinct athlete names in the dataset"))
	m.datasetUnresolvedNOCs = auto.NewGauge(m.gaugeOpts("dataset_unresolved_nocs",
		"Number of distinct NOC codes with no region mapping"))
	m.datasetLoadDuration = auto.NewHistogram(m.histogramOpts("dataset_load_duration_milliseconds",
		"Time spent reading and normalizing the input files"))
	m.datasetLoads = auto.NewCounterVec(m.counterOpts("dataset_loads_total",
		"Dataset load attempts by result"), []string{"result"})

	m.chartRequests = auto.NewCounterVec(m.counterOpts("chart_requests_total",
		"Derived table computations by chart"), []string{"chart"})
	m.chartLatency = auto.NewHistogramVec(m.histogramOpts("chart_latency_milliseconds",
		"Latency of derived table computation by chart"), []string{"chart"})
	m.chartEmpty = auto.NewCounterVec(m.counterOpts("chart_empty_total",
		"Derived tables that came back empty by chart"), []string{"chart"})
	m.invalidInput = auto.NewCounterVec(m.counterOpts("invalid_input_total",
		"Rejected filter parameters by field"), []string{"field"})

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total",
		"Total number of HTTP requests by endpoint and method"), []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds"), []string{"endpoint", "method", "status_code"})

	m.errorRateByComponent = auto.NewCounterVec(m.counterOpts("errors_by_component_total",
		"Errors by component and type"), []string{"component", "error_type"})
	m.errorRateByType = auto.NewCounterVec(m.counterOpts("errors_by_type_total",
		"Errors by type and severity"), []string{"error_type", "severity"})
	m.errorRateByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total",
		"Errors by endpoint, method and type"), []string{"endpoint", "method", "error_type"})
	m.errorLatency = auto.NewHistogramVec(m.histogramOpts("error_latency_milliseconds",
		"Latency of requests that ended in an error"), []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes",
		"Heap bytes allocated"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count",
		"Current number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_time_milliseconds",
		"Average GC pause time in milliseconds"))
}

// Dataset

// SetDatasetShape records the size of the loaded dataset.
func (m *Manager) SetDatasetShape(rows, athletes, unresolvedNOCs int) {
	if !m.enabled {
		return
	}
	m.datasetRows.Set(float64(rows))
	m.datasetAthletes.Set(float64(athletes))
	m.datasetUnresolvedNOCs.Set(float64(unresolvedNOCs))
}

// RecordDatasetLoad records one load attempt and its duration.
func (m *Manager) RecordDatasetLoad(durationMs float64, err error) {
	if !m.enabled {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.datasetLoads.WithLabelValues(result).Inc()
	m.datasetLoadDuration.Observe(durationMs)
}

// Aggregation pipeline

// RecordChart records one derived table computation.
func (m *Manager) RecordChart(chart string, latencyMs float64, empty bool) {
	if !m.enabled {
		return
	}
	m.chartRequests.WithLabelValues(chart).Inc()
	m.chartLatency.WithLabelValues(chart).Observe(latencyMs)
	if empty {
		m.chartEmpty.WithLabelValues(chart).Inc()
	}
}

// RecordInvalidInput counts a rejected filter field.
func (m *Manager) RecordInvalidInput(field string) {
	if !m.enabled {
		return
	}
	m.invalidInput.WithLabelValues(field).Inc()
}

// HTTP

// RecordHTTPRequest records an HTTP request with its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// Errors

// RecordErrorByComponent records an error for a specific component.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	if !m.enabled {
		return
	}
	m.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error by type and severity.
func (m *Manager) RecordErrorByType(errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error for a specific endpoint.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !m.enabled {
		return
	}
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an errored request.
func (m *Manager) RecordErrorLatency(component, errorType string, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System

// UpdateSystemStats sets memory and goroutine gauges.
func (m *Manager) UpdateSystemStats(allocBytes uint64, goroutines int) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(allocBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
}

// RecordSystemGCPauseTime records an average GC pause.
func (m *Manager) RecordSystemGCPauseTime(pauseMs float64) {
	if !m.enabled {
		return
	}
	m.systemGCPauseTime.Observe(pauseMs)
}

// Package-level helpers bound to the global manager.

func SetDatasetShape(rows, athletes, unresolvedNOCs int) {
	globalManager.SetDatasetShape(rows, athletes, unresolvedNOCs)
}

func RecordDatasetLoad(durationMs float64, err error) {
	globalManager.RecordDatasetLoad(durationMs, err)
}

func RecordChart(chart string, latencyMs float64, empty bool) {
	globalManager.RecordChart(chart, latencyMs, empty)
}

func RecordInvalidInput(field string) { globalManager.RecordInvalidInput(field) }

func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

func RecordErrorByComponent(component, errorType string) {
	globalManager.RecordErrorByComponent(component, errorType)
}

func RecordErrorByType(errorType, severity string) {
	globalManager.RecordErrorByType(errorType, severity)
}

func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.RecordErrorLatency(component, errorType, latencyMs)
}

func UpdateSystemStats(allocBytes uint64, goroutines int) {
	globalManager.UpdateSystemStats(allocBytes, goroutines)
}

func RecordSystemGCPauseTime(pauseMs float64) { globalManager.RecordSystemGCPauseTime(pauseMs) }

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
