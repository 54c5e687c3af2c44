package models

import (
	"time"

	"energy-outlook/internal/analysis"
	"energy-outlook/internal/sim"
)

// SimulateResponse is returned from a simulation run. Records are inlined
// only when the request asked for them; they stay retrievable under the run
// ID either way.
type SimulateResponse struct {
	ID        string                      `json:"id"`
	Status    string                      `json:"status"` // "completed" or "partial"
	CreatedAt time.Time                   `json:"created_at"`
	Summaries []analysis.ScenarioSummary  `json:"summaries"`
	Failed    map[string]string           `json:"failed,omitempty"` // scenario -> error
	Records   map[string][]sim.YearRecord `json:"records,omitempty"`
}

// RunResponse describes a stored run.
type RunResponse struct {
	ID        string                     `json:"id"`
	Status    string                     `json:"status"`
	CreatedAt time.Time                  `json:"created_at"`
	Scenarios []string                   `json:"scenarios"`
	Summaries []analysis.ScenarioSummary `json:"summaries"`
	Failed    map[string]string          `json:"failed,omitempty"`
}

// RecordsResponse carries the year series of a stored run, optionally
// filtered to one scenario.
type RecordsResponse struct {
	ID      string                      `json:"id"`
	Records map[string][]sim.YearRecord `json:"records"`
}

// ScenarioInfo describes one stock scenario.
type ScenarioInfo struct {
	Name               string   `json:"name"`
	OverriddenSections []string `json:"overridden_sections"`
}

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
