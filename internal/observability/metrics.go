package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

const namespace = "neo_impact"

// Metrics holds the Prometheus counters, histograms, and gauges for the
// simulation service.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Simulation metrics.
	Simulations        *prometheus.CounterVec   // labels: source={http,kafka}, severity={minimal,...,global}
	InvalidInputs      *prometheus.CounterVec   // labels: source
	SimulationDuration *prometheus.HistogramVec // labels: source
	AnalysisCache      *prometheus.CounterVec   // labels: result={hit,miss}
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.Simulations,
		m.InvalidInputs,
		m.SimulationDuration,
		m.AnalysisCache,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total simulation requests read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total simulation results written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total simulation requests skipped because they could not be simulated.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-simulate-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		Simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Completed simulations by request source and severity tier.",
		}, []string{"source", "severity"}),
		InvalidInputs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_inputs_total",
			Help:      "Simulation requests rejected by input validation.",
		}, []string{"source"}),
		SimulationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_duration_seconds",
			Help:      "Time spent computing one simulation report.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"source"}),
		AnalysisCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_cache_total",
			Help:      "Impact analysis cache lookups by result.",
		}, []string{"result"}),
	}
}

// Simulation request sources used as metric labels.
const (
	SourceHTTP  = "http"
	SourceKafka = "kafka"
)

// RecordSimulation counts one simulation attempt from source. Failed attempts
// only count when the input was rejected by validation.
func (m *Metrics) RecordSimulation(source string, severity domain.Severity, elapsed time.Duration, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			m.InvalidInputs.WithLabelValues(source).Inc()
		}
		return
	}
	m.Simulations.WithLabelValues(source, string(severity)).Inc()
	m.SimulationDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}
