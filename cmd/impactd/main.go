package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/neo-impact-service/internal/adapter/cache"
	"github.com/couchcryptid/neo-impact-service/internal/adapter/catalog"
	"github.com/couchcryptid/neo-impact-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/neo-impact-service/internal/adapter/kafka"
	"github.com/couchcryptid/neo-impact-service/internal/config"
	"github.com/couchcryptid/neo-impact-service/internal/domain"
	"github.com/couchcryptid/neo-impact-service/internal/observability"
	"github.com/couchcryptid/neo-impact-service/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	store, err := catalog.Open(ctx, cfg.CatalogDriver, cfg.CatalogDSN, logger)
	if err != nil {
		logger.Error("failed to open catalog", "driver", cfg.CatalogDriver, "error", err)
		os.Exit(1)
	}
	if err := store.Migrate(ctx); err != nil {
		logger.Error("failed to migrate catalog", "error", err)
		os.Exit(1)
	}
	if cfg.CatalogSeed {
		n, err := store.Seed(ctx, catalog.SeedObjects())
		if err != nil {
			logger.Error("failed to seed catalog", "error", err)
			os.Exit(1)
		}
		logger.Info("catalog seeded", "inserted", n)
	}

	model := cache.NewCachedModel(domain.PhysicsModel{}, cfg.AnalysisCacheSize, metrics)
	simulator := domain.NewSimulator(model, nil)

	ready := httpadapter.AllReady{store}

	var (
		reader *kafkaadapter.Reader
		writer *kafkaadapter.Writer
		p      *pipeline.Pipeline
	)
	if cfg.PipelineEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		transformer := pipeline.NewTransformer(simulator, metrics, logger)
		p = pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = append(ready, reader, p)
	} else {
		logger.Info("kafka pipeline disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, store, simulator, metrics, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	// Start simulation pipeline.
	pipelineDone := make(chan struct{})
	go func() {
		defer close(pipelineDone)
		if p == nil {
			return
		}
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	select {
	case <-pipelineDone:
	case <-shutdownCtx.Done():
		logger.Warn("pipeline did not stop before shutdown timeout")
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if err := store.Close(); err != nil {
		logger.Error("catalog close error", "error", err)
	}
	observability.ShutdownTracing(context.Background(), shutdownTracing, logger)

	logger.Info("shutdown complete")
}
