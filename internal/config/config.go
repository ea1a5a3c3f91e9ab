package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Catalog drivers accepted by CATALOG_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Tracing exporters accepted by TRACING_EXPORTER.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	PipelineEnabled  bool
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Catalog store.
	CatalogDriver string
	CatalogDSN    string
	CatalogSeed   bool

	AnalysisCacheSize int

	Tracing TracingConfig
}

// TracingConfig controls OpenTelemetry span export.
type TracingConfig struct {
	Enabled     bool
	Exporter    string
	Endpoint    string
	SampleRatio float64
	ServiceName string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	sampleRatio, err := parseSampleRatio()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "impact-simulation-requests"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "impact-simulation-results"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "neo-impact-service"),
		PipelineEnabled:    parseBool("PIPELINE_ENABLED", true),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		CatalogDriver: sharedcfg.EnvOrDefault("CATALOG_DRIVER", DriverSQLite),
		CatalogDSN:    sharedcfg.EnvOrDefault("CATALOG_DSN", "file:neo_catalog.db"),
		CatalogSeed:   parseBool("CATALOG_SEED", true),

		AnalysisCacheSize: parseCacheSize(),

		Tracing: TracingConfig{
			Enabled:     parseBool("TRACING_ENABLED", false),
			Exporter:    sharedcfg.EnvOrDefault("TRACING_EXPORTER", ExporterStdout),
			Endpoint:    os.Getenv("TRACING_ENDPOINT"),
			SampleRatio: sampleRatio,
			ServiceName: sharedcfg.EnvOrDefault("OTEL_SERVICE_NAME", "neo-impact-service"),
		},
	}

	if cfg.PipelineEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required")
		}
		if cfg.KafkaSourceTopic == "" {
			return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
	}
	switch cfg.CatalogDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("invalid CATALOG_DRIVER %q (want %s or %s)", cfg.CatalogDriver, DriverSQLite, DriverPostgres)
	}
	if cfg.CatalogDSN == "" {
		return nil, errors.New("CATALOG_DSN is required")
	}
	switch cfg.Tracing.Exporter {
	case ExporterStdout:
	case ExporterOTLP:
		if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
			return nil, errors.New("TRACING_EXPORTER is otlp but TRACING_ENDPOINT is not set")
		}
	default:
		return nil, fmt.Errorf("invalid TRACING_EXPORTER %q", cfg.Tracing.Exporter)
	}

	return cfg, nil
}

func parseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true"
	}
	return def
}

func parseCacheSize() int {
	if s := os.Getenv("ANALYSIS_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}

func parseSampleRatio() (float64, error) {
	s := sharedcfg.EnvOrDefault("TRACING_SAMPLE_RATIO", "1.0")
	ratio, err := strconv.ParseFloat(s, 64)
	if err != nil || ratio < 0 || ratio > 1 {
		return 0, errors.New("invalid TRACING_SAMPLE_RATIO: must be between 0 and 1")
	}
	return ratio, nil
}
