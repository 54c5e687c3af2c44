// Package handlers implements the REST endpoints.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"

	"energy-outlook/internal/analysis"
	"energy-outlook/internal/api"
	"energy-outlook/internal/api/models"
	"energy-outlook/internal/config"
	"energy-outlook/internal/sim"
)

// SimulationHandler runs simulations and serves stored runs.
type SimulationHandler struct {
	engine *sim.Engine
	store  *api.RunStore
}

func NewSimulationHandler(engine *sim.Engine, store *api.RunStore) *SimulationHandler {
	return &SimulationHandler{engine: engine, store: store}
}

// Simulate handles POST /api/v1/simulate.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	cfg, scenarios, err := buildRun(req)
	if err != nil {
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			errorResponse(c, http.StatusBadRequest, reqErr.code, reqErr.Error())
			return
		}
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	run := h.engine.Run
	if req.Options.Parallel {
		run = h.engine.RunParallel
	}
	results, runErr := run(c.Request.Context(), cfg, scenarios)

	failures := make(map[string]string)
	if runErr != nil {
		var scErrs sim.ScenarioErrors
		if !errors.As(runErr, &scErrs) {
			errorResponse(c, http.StatusInternalServerError, "SIMULATION_ERROR", runErr.Error())
			return
		}
		for name, err := range scErrs {
			failures[name] = err.Error()
		}
	}
	if len(results) == 0 {
		errorResponse(c, http.StatusUnprocessableEntity, "ALL_SCENARIOS_FAILED",
			fmt.Sprintf("no scenario completed: %v", runErr))
		return
	}

	stored := h.store.Put(results, analysis.SummarizeAll(results), failures)

	resp := models.SimulateResponse{
		ID:        stored.ID,
		Status:    runStatus(stored),
		CreatedAt: stored.CreatedAt,
		Summaries: stored.Summaries,
		Failed:    stored.Failures,
	}
	if req.Options.IncludeRecords {
		resp.Records = results
	}
	c.JSON(http.StatusOK, resp)
}

// GetRun handles GET /api/v1/runs/:id.
func (h *SimulationHandler) GetRun(c *gin.Context) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		errorResponse(c, http.StatusNotFound, "RUN_NOT_FOUND", "no run with that id")
		return
	}
	names := make([]string, 0, len(run.Summaries))
	for _, s := range run.Summaries {
		names = append(names, s.Scenario)
	}
	c.JSON(http.StatusOK, models.RunResponse{
		ID:        run.ID,
		Status:    runStatus(run),
		CreatedAt: run.CreatedAt,
		Scenarios: names,
		Summaries: run.Summaries,
		Failed:    run.Failures,
	})
}

// GetRecords handles GET /api/v1/runs/:id/records. The optional "scenario"
// query parameter narrows the response to one scenario's year series.
func (h *SimulationHandler) GetRecords(c *gin.Context) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		errorResponse(c, http.StatusNotFound, "RUN_NOT_FOUND", "no run with that id")
		return
	}
	records := run.Results
	if name := c.Query("scenario"); name != "" {
		series, ok := run.Results[name]
		if !ok {
			errorResponse(c, http.StatusNotFound, "SCENARIO_NOT_FOUND",
				fmt.Sprintf("run has no scenario %q", name))
			return
		}
		records = sim.ResultSet{name: series}
	}
	c.JSON(http.StatusOK, models.RecordsResponse{ID: run.ID, Records: records})
}

// ListScenarios handles GET /api/v1/scenarios.
func (h *SimulationHandler) ListScenarios(c *gin.Context) {
	stock := config.StockScenarios()
	infos := make([]models.ScenarioInfo, 0, len(stock))
	for _, sc := range stock {
		infos = append(infos, models.ScenarioInfo{
			Name:               sc.Name,
			OverriddenSections: overriddenSections(sc.Overrides),
		})
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": infos})
}

// requestError tags a build failure with its response code.
type requestError struct {
	code string
	err  error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// buildRun assembles the base config and scenario list from a request,
// falling back to the built-in baseline and stock scenarios.
func buildRun(req models.SimulateRequest) (*config.Config, []config.Scenario, error) {
	cfg := config.Baseline()
	if req.ConfigYAML != "" {
		parsed, err := config.Parse([]byte(req.ConfigYAML))
		if err != nil {
			return nil, nil, &requestError{code: "INVALID_CONFIG", err: err}
		}
		cfg = parsed
	}
	if req.Options.StartYear != 0 {
		cfg.SimulationYears.Start = req.Options.StartYear
	}
	if req.Options.EndYear != 0 {
		cfg.SimulationYears.End = req.Options.EndYear
	}
	if cfg.SimulationYears.End < cfg.SimulationYears.Start {
		return nil, nil, &requestError{code: "INVALID_REQUEST",
			err: fmt.Errorf("end year %d precedes start year %d",
				cfg.SimulationYears.End, cfg.SimulationYears.Start)}
	}

	scenarios := config.StockScenarios()
	if req.ScenariosYAML != "" {
		parsed, err := config.ParseScenarios([]byte(req.ScenariosYAML))
		if err != nil {
			return nil, nil, &requestError{code: "INVALID_SCENARIOS", err: err}
		}
		scenarios = parsed
	}
	if len(req.Scenarios) > 0 {
		byName := make(map[string]config.Scenario, len(scenarios))
		for _, sc := range scenarios {
			byName[sc.Name] = sc
		}
		selected := make([]config.Scenario, 0, len(req.Scenarios))
		for _, name := range req.Scenarios {
			sc, ok := byName[name]
			if !ok {
				return nil, nil, &requestError{code: "UNKNOWN_SCENARIO",
					err: fmt.Errorf("unknown scenario %q", name)}
			}
			selected = append(selected, sc)
		}
		scenarios = selected
	}
	return cfg, scenarios, nil
}

func runStatus(run *api.Run) string {
	if len(run.Failures) > 0 {
		return "partial"
	}
	return "completed"
}

// overriddenSections lists the yaml names of the config sections a scenario
// replaces, read off the non-zero Overrides fields.
func overriddenSections(o config.Overrides) []string {
	v := reflect.ValueOf(o)
	t := v.Type()
	var out []string
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		set := false
		switch f.Kind() {
		case reflect.Pointer:
			set = !f.IsNil()
		case reflect.Map:
			set = f.Len() > 0
		}
		if !set {
			continue
		}
		tag := t.Field(i).Tag.Get("yaml")
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}
