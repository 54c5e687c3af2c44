package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"energy-outlook/internal/api"
	"energy-outlook/internal/api/models"
	"energy-outlook/internal/sim"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSimulationHandler(sim.New(zap.NewNop()), api.NewRunStore())
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/simulate", h.Simulate)
	v1.GET("/runs/:id", h.GetRun)
	v1.GET("/runs/:id/records", h.GetRecords)
	v1.GET("/scenarios", h.ListScenarios)
	return r
}

func postSimulate(t *testing.T, r *gin.Engine, req models.SimulateRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)
	return w
}

func TestSimulateStockScenarios(t *testing.T) {
	r := newTestRouter()

	w := postSimulate(t, r, models.SimulateRequest{
		Options: models.SimulateOptions{StartYear: 2025, EndYear: 2028},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	require.Len(t, resp.Summaries, 2)
	assert.Equal(t, 2028, resp.Summaries[0].EndYear)
	assert.Empty(t, resp.Records, "records must be opt-in")
}

func TestSimulateIncludeRecordsAndFetchByID(t *testing.T) {
	r := newTestRouter()

	w := postSimulate(t, r, models.SimulateRequest{
		Scenarios: []string{"baseline"},
		Options: models.SimulateOptions{
			StartYear: 2025, EndYear: 2027, IncludeRecords: true, Parallel: true,
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Records["baseline"], 3)

	// The run stays retrievable after the simulate response.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+resp.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var runResp models.RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &runResp))
	assert.Equal(t, []string{"baseline"}, runResp.Scenarios)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/v1/runs/"+resp.ID+"/records?scenario=baseline", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var recResp models.RecordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recResp))
	assert.Len(t, recResp.Records["baseline"], 3)
}

func TestSimulateUnknownScenario(t *testing.T) {
	r := newTestRouter()

	w := postSimulate(t, r, models.SimulateRequest{Scenarios: []string{"nope"}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNKNOWN_SCENARIO", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "nope")
}

func TestSimulateRejectsBadConfigYAML(t *testing.T) {
	r := newTestRouter()

	w := postSimulate(t, r, models.SimulateRequest{ConfigYAML: "simulation_years: ["})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)
}

func TestSimulateRejectsInvertedYearWindow(t *testing.T) {
	r := newTestRouter()

	w := postSimulate(t, r, models.SimulateRequest{
		Options: models.SimulateOptions{StartYear: 2030, EndYear: 2025},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRunNotFound(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/runs/missing", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RUN_NOT_FOUND", resp.Error.Code)
}

func TestListScenarios(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Scenarios, 2)
	names := []string{resp.Scenarios[0].Name, resp.Scenarios[1].Name}
	assert.Contains(t, names, "baseline")
	assert.Contains(t, names, "high_renewables")
	for _, sc := range resp.Scenarios {
		if sc.Name == "high_renewables" {
			assert.Contains(t, sc.OverriddenSections, "renewable_params")
		}
	}
}
