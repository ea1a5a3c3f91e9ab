package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/couchcryptid/neo-impact-service/internal/domain"
	"github.com/couchcryptid/neo-impact-service/internal/observability"
)

// Catalog is the read side of the object catalog the API serves.
type Catalog interface {
	List(ctx context.Context) ([]domain.Object, error)
	Get(ctx context.Context, id string) (domain.Object, error)
}

// Server exposes the simulation API alongside health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	catalog    Catalog
	simulator  *domain.Simulator
	metrics    *observability.Metrics
	tracer     trace.Tracer
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and the
// /api/v1 routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, catalog Catalog, sim *domain.Simulator, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		catalog:   catalog,
		simulator: sim,
		metrics:   metrics,
		tracer:    otel.Tracer(observability.TracerName),
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/v1/objects", s.listObjects)
	mux.HandleFunc("GET /api/v1/objects/{id}", s.getObject)
	mux.HandleFunc("POST /api/v1/simulations", s.createSimulation)

	var handler http.Handler = mux
	handler = loggingMiddleware(logger)(handler)
	handler = otelhttp.NewHandler(handler, "neo-impact-api",
		otelhttp.WithFilter(func(r *http.Request) bool { return !probePath(r.URL.Path) }),
	)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
