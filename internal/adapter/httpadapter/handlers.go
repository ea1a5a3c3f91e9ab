package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/couchcryptid/neo-impact-service/internal/domain"
	"github.com/couchcryptid/neo-impact-service/internal/observability"
)

const maxRequestBody = 1 << 20

type objectsResponse struct {
	Count   int             `json:"count"`
	Objects []domain.Object `json:"objects"`
}

type objectDetailResponse struct {
	Object     domain.Object           `json:"object"`
	Hazard     string                  `json:"hazard_summary"`
	Fallback   bool                    `json:"fallback,omitempty"`
	Simulation domain.SimulationResult `json:"simulation"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) listObjects(w http.ResponseWriter, r *http.Request) {
	objects, err := s.catalog.List(r.Context())
	if err != nil {
		s.internalError(w, r, fmt.Errorf("list objects: %w", err))
		return
	}
	if objects == nil {
		objects = []domain.Object{}
	}
	sharedobs.WriteJSON(w, http.StatusOK, objectsResponse{Count: len(objects), Objects: objects})
}

// getObject simulates the object's closest approach. IDs missing from the
// catalog are served the default object.
func (s *Server) getObject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	obj, err := s.catalog.Get(r.Context(), id)
	fallback := false
	switch {
	case errors.Is(err, domain.ErrObjectNotFound):
		s.logger.Debug("object not in catalog, using default", "object_id", id)
		obj = domain.DefaultObject(id)
		fallback = true
	case err != nil:
		s.internalError(w, r, fmt.Errorf("get object %s: %w", id, err))
		return
	}

	result, err := s.simulate(r, domain.SimulationRequest{
		ObjectID:    obj.ID,
		Name:        obj.Name,
		ImpactInput: obj.ImpactInput(),
	})
	if err != nil {
		s.simulationError(w, r, err)
		return
	}

	sharedobs.WriteJSON(w, http.StatusOK, objectDetailResponse{
		Object:     obj,
		Hazard:     obj.HazardSummary(),
		Fallback:   fallback,
		Simulation: result,
	})
}

func (s *Server) createSimulation(w http.ResponseWriter, r *http.Request) {
	var req domain.SimulationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := s.simulate(r, req)
	if err != nil {
		s.simulationError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, result)
}

func (s *Server) simulate(r *http.Request, req domain.SimulationRequest) (domain.SimulationResult, error) {
	_, span := s.tracer.Start(r.Context(), "api.simulate")
	defer span.End()
	span.SetAttributes(attribute.String("neo.object_id", req.ObjectID))

	start := time.Now()
	result, err := s.simulator.Simulate(req)
	s.metrics.RecordSimulation(observability.SourceHTTP, result.Report.Environment.Severity, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "simulate")
		return domain.SimulationResult{}, err
	}
	span.SetAttributes(attribute.String("neo.severity", string(result.Report.Environment.Severity)))
	return result, nil
}

func (s *Server) simulationError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.internalError(w, r, err)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	sharedobs.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
