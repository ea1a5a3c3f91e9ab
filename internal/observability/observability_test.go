package observability

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/couchcryptid/neo-impact-service/internal/config"
	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMetricsForTesting(t *testing.T) {
	m := NewMetricsForTesting()

	m.Simulations.WithLabelValues("http", "global").Inc()
	m.InvalidInputs.WithLabelValues("kafka").Add(2)
	m.AnalysisCache.WithLabelValues("hit").Inc()

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Simulations.WithLabelValues("http", "global")), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.InvalidInputs.WithLabelValues("kafka")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.AnalysisCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.PipelineRunning), 0)
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := initTracing(context.Background(), config.TracingConfig{}, io.Discard, discardLogger())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, span := otel.Tracer(TracerName).Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestInitTracing_Stdout(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.TracingConfig{
		Enabled:     true,
		Exporter:    config.ExporterStdout,
		SampleRatio: 1,
		ServiceName: "neo-impact-test",
	}
	shutdown, err := initTracing(context.Background(), cfg, &buf, discardLogger())
	require.NoError(t, err)

	_, span := otel.Tracer(TracerName).Start(context.Background(), "simulate")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name": "simulate"`)
	assert.Contains(t, buf.String(), "neo-impact-test")
}

func TestInitTracing_UnknownExporter(t *testing.T) {
	_, err := initTracing(context.Background(), config.TracingConfig{Enabled: true, Exporter: "zipkin"}, io.Discard, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported tracing exporter")
}

func TestShutdownTracing(t *testing.T) {
	called := false
	ShutdownTracing(context.Background(), func(ctx context.Context) error {
		called = true
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return errors.New("flush failed")
	}, discardLogger())
	assert.True(t, called)

	ShutdownTracing(context.Background(), nil, discardLogger())
}

func TestRecordSimulation(t *testing.T) {
	m := NewMetricsForTesting()

	m.RecordSimulation(SourceKafka, domain.SeverityLocal, time.Millisecond, nil)
	m.RecordSimulation(SourceKafka, "", 0, fmt.Errorf("wrapped: %w", domain.ErrInvalidInput))
	m.RecordSimulation(SourceKafka, "", 0, errors.New("model offline"))

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Simulations.WithLabelValues(SourceKafka, "local")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.InvalidInputs.WithLabelValues(SourceKafka)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.SimulationDuration))
}
