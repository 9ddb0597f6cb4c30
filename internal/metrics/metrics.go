package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/litperf/internal/dashboard"
	"github.com/agbru/litperf/internal/sysmon"
)

const namespace = "litperf"

// DurationBuckets are the histogram buckets for operation durations, in
// seconds.
var DurationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Metrics collects per-operation outcomes of dashboard renders. It
// implements dashboard.Observer.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
	renders  prometheus.Counter
	heap     prometheus.Gauge
	hostCPU  prometheus.Gauge
	hostMem  prometheus.Gauge
	readMem  func() MemorySnapshot
	sample   sysmon.Sampler
}

// Verify interface compliance.
var _ dashboard.Observer = (*Metrics)(nil)

// New creates a Metrics with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall time of monitored explorer operations.",
			Buckets:   DurationBuckets,
		}, []string{"operation", "status"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Failed monitored explorer operations.",
		}, []string{"operation"}),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Completed dashboard renders.",
		}),
		heap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Heap in use after the last render.",
		}),
		hostCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "host_cpu_percent",
			Help:      "Host CPU usage since the previous sample.",
		}),
		hostMem: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "host_memory_percent",
			Help:      "Host memory in use after the last render.",
		}),
		readMem: ReadMemory,
		sample:  sysmon.Sample,
	}
	m.registry.MustRegister(m.duration, m.failures, m.renders, m.heap, m.hostCPU, m.hostMem)
	return m
}

// Observe records one operation result.
func (m *Metrics) Observe(r dashboard.OperationResult) {
	name := string(r.Name)
	m.duration.WithLabelValues(name, r.Status().String()).Observe(r.Duration.Seconds())
	if r.Err != nil {
		m.failures.WithLabelValues(name).Inc()
	}
}

// RenderCompleted counts a finished render and samples heap and host usage.
func (m *Metrics) RenderCompleted() {
	m.renders.Inc()
	m.heap.Set(float64(m.readMem().HeapAlloc))
	host := m.sample()
	m.hostCPU.Set(host.CPUPercent)
	m.hostMem.Set(host.MemPercent)
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
