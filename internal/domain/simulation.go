package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Report merges the three stage outputs for one input.
type Report struct {
	Impact      ImpactAnalysisResult      `json:"impact_analysis"`
	Trajectory  TrajectorySummary         `json:"trajectory_data"`
	Environment EnvironmentalImpactResult `json:"environmental_impact"`
}

// ImpactModel computes the deterministic energy and crater stage.
// CachedModel in the cache adapter decorates it.
type ImpactModel interface {
	ImpactAnalysis(in ImpactInput) (ImpactAnalysisResult, error)
}

// PhysicsModel is the ImpactModel backed by ComputeImpactAnalysis.
type PhysicsModel struct{}

func (PhysicsModel) ImpactAnalysis(in ImpactInput) (ImpactAnalysisResult, error) {
	return ComputeImpactAnalysis(in)
}

// Simulator runs all three stages against one input.
type Simulator struct {
	model ImpactModel
	rng   Rand
}

// NewSimulator creates a Simulator. A nil model uses PhysicsModel; a nil rng
// uses whatever source SetRand has installed at the time of each Run.
func NewSimulator(model ImpactModel, rng Rand) *Simulator {
	if model == nil {
		model = PhysicsModel{}
	}
	return &Simulator{model: model, rng: rng}
}

// Run computes the impact analysis, trajectory summary and environmental
// impact. The stages are independent; the first failing stage aborts the
// merge, and all three reject the same invalid inputs.
func (s *Simulator) Run(in ImpactInput) (Report, error) {
	impact, err := s.model.ImpactAnalysis(in)
	if err != nil {
		return Report{}, fmt.Errorf("impact analysis: %w", err)
	}
	rng := resolveRand(s.rng)
	trajectory, err := ComputeTrajectorySummary(in, rng)
	if err != nil {
		return Report{}, fmt.Errorf("trajectory summary: %w", err)
	}
	environment, err := ComputeEnvironmentalImpact(in, rng)
	if err != nil {
		return Report{}, fmt.Errorf("environmental impact: %w", err)
	}
	return Report{Impact: impact, Trajectory: trajectory, Environment: environment}, nil
}

// SimulationRequest asks for one simulation. ObjectID and Name are optional
// labels carried through to the result.
type SimulationRequest struct {
	ObjectID string `json:"object_id,omitempty"`
	Name     string `json:"name,omitempty"`
	ImpactInput
}

// SimulationResult is the passive record of one simulation run. It is
// published, never persisted.
type SimulationResult struct {
	ID         string      `json:"id"`
	ObjectID   string      `json:"object_id,omitempty"`
	Name       string      `json:"name,omitempty"`
	Input      ImpactInput `json:"input"`
	Report     Report      `json:"report"`
	ComputedAt time.Time   `json:"computed_at"`
}

// ParseSimulationRequest decodes a RawEvent's JSON value.
func ParseSimulationRequest(raw RawEvent) (SimulationRequest, error) {
	var req SimulationRequest
	if err := json.Unmarshal(raw.Value, &req); err != nil {
		return SimulationRequest{}, fmt.Errorf("parse simulation request: %w", err)
	}
	return req, nil
}

// Simulate runs req through s and stamps the result with a fresh ID and the
// package clock.
func (s *Simulator) Simulate(req SimulationRequest) (SimulationResult, error) {
	report, err := s.Run(req.ImpactInput)
	if err != nil {
		return SimulationResult{}, err
	}
	return SimulationResult{
		ID:         uuid.New().String(),
		ObjectID:   req.ObjectID,
		Name:       req.Name,
		Input:      req.ImpactInput,
		Report:     report,
		ComputedAt: clock.Now().UTC(),
	}, nil
}
