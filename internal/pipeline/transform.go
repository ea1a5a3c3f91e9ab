package pipeline

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/couchcryptid/neo-impact-service/internal/domain"
	"github.com/couchcryptid/neo-impact-service/internal/observability"
)

// SimulationTransformer implements Transformer by decoding a simulation
// request and running it through a domain.Simulator.
type SimulationTransformer struct {
	simulator *domain.Simulator
	metrics   *observability.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewTransformer creates a SimulationTransformer.
func NewTransformer(sim *domain.Simulator, metrics *observability.Metrics, logger *slog.Logger) *SimulationTransformer {
	return &SimulationTransformer{
		simulator: sim,
		metrics:   metrics,
		logger:    logger,
		tracer:    otel.Tracer(observability.TracerName),
	}
}

func (t *SimulationTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.SimulationResult, error) {
	_, span := t.tracer.Start(ctx, "pipeline.simulate",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.source.name", raw.Topic),
			attribute.Int("messaging.kafka.partition", raw.Partition),
			attribute.Int64("messaging.kafka.offset", raw.Offset),
		),
	)
	defer span.End()

	req, err := domain.ParseSimulationRequest(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode request")
		return domain.SimulationResult{}, err
	}
	span.SetAttributes(attribute.String("neo.object_id", req.ObjectID))

	start := time.Now()
	result, err := t.simulator.Simulate(req)
	t.metrics.RecordSimulation(observability.SourceKafka, result.Report.Environment.Severity, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "simulate")
		return domain.SimulationResult{}, err
	}

	span.SetAttributes(attribute.String("neo.severity", string(result.Report.Environment.Severity)))
	t.logger.Debug("simulation complete",
		"id", result.ID,
		"object_id", result.ObjectID,
		"severity", result.Report.Environment.Severity,
	)
	return result, nil
}
