package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the pipeline.
type Metrics struct {
	// Stage metrics
	RecordsProduced prometheus.Counter
	RecordsRelayed  prometheus.Counter
	RecordsWritten  prometheus.Counter
	HeaderSkipped   prometheus.Counter

	// Run metrics
	RunsTotal   prometheus.Counter
	RunDuration prometheus.Histogram

	registry  *prometheus.Registry
	startTime time.Time

	// Snapshot for the end-of-run summary - tracks current values
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds current metric values for the end-of-run summary.
type Snapshot struct {
	RecordsProduced int64
	RecordsRelayed  int64
	RecordsWritten  int64
	HeaderSkipped   int64
	Runs            int64
	Elapsed         time.Duration
}

// NewMetrics creates a new metrics collector with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry:  registry,
		startTime: time.Now(),

		// Stage metrics
		RecordsProduced: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "superreader_records_produced_total",
				Help: "Records read from the input and written to the byte channel",
			},
		),
		RecordsRelayed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "superreader_records_relayed_total",
				Help: "Records moved from the byte channel into the shared line buffer",
			},
		),
		RecordsWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "superreader_records_written_total",
				Help: "Body records written to the output file",
			},
		),
		HeaderSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "superreader_header_skipped_total",
				Help: "Header records discarded, marker line included",
			},
		),

		// Run metrics
		RunsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "superreader_runs_total",
				Help: "Pipeline runs started",
			},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "superreader_run_duration_seconds",
				Help:    "Pipeline run duration in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
		),
	}

	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncProduced records one record written to the channel.
func (m *Metrics) IncProduced() {
	m.RecordsProduced.Inc()
	m.mu.Lock()
	m.snapshot.RecordsProduced++
	m.mu.Unlock()
}

// IncRelayed records one record pulled from the channel.
func (m *Metrics) IncRelayed() {
	m.RecordsRelayed.Inc()
	m.mu.Lock()
	m.snapshot.RecordsRelayed++
	m.mu.Unlock()
}

// IncWritten records one body record written to the output.
func (m *Metrics) IncWritten() {
	m.RecordsWritten.Inc()
	m.mu.Lock()
	m.snapshot.RecordsWritten++
	m.mu.Unlock()
}

// IncHeaderSkipped records one discarded header record.
func (m *Metrics) IncHeaderSkipped() {
	m.HeaderSkipped.Inc()
	m.mu.Lock()
	m.snapshot.HeaderSkipped++
	m.mu.Unlock()
}

// RunStarted records the start of a pipeline run.
func (m *Metrics) RunStarted() {
	m.RunsTotal.Inc()
	m.mu.Lock()
	m.snapshot.Runs++
	m.mu.Unlock()
}

// RunFinished records the duration of a completed run.
func (m *Metrics) RunFinished(start time.Time) {
	m.RunDuration.Observe(time.Since(start).Seconds())
}

// GetSnapshot returns current metric values for the summary log.
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := m.snapshot
	snap.Elapsed = time.Since(m.startTime)
	return snap
}
