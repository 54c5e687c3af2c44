package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"energy-outlook/internal/config"
	"energy-outlook/internal/sim"
)

func runStock(t *testing.T) sim.ResultSet {
	t.Helper()
	cfg := config.Baseline()
	cfg.SimulationYears = config.YearRange{Start: 2025, End: 2032}
	results, err := sim.New(zap.NewNop()).Run(context.Background(), cfg, config.StockScenarios())
	require.NoError(t, err)
	return results
}

func TestSummarizeDigestsSeries(t *testing.T) {
	results := runStock(t)

	s := Summarize(results["baseline"])

	assert.Equal(t, "baseline", s.Scenario)
	assert.Equal(t, 2025, s.StartYear)
	assert.Equal(t, 2032, s.EndYear)
	assert.Greater(t, s.CumulativeCO2Mt, s.FinalYearCO2Mt)
	assert.Greater(t, s.FinalCapacityMW, 0.0)
	assert.Greater(t, s.FinalVRECapacityShare, 0.0)
	assert.Less(t, s.FinalVRECapacityShare, 1.0)
	assert.Greater(t, s.MeanWholesaleMWh, 0.0)
	assert.GreaterOrEqual(t, s.P95WholesaleMWh, s.MeanWholesaleMWh*0.5)
	assert.Greater(t, s.CumulativeInvestmentMUSD, 0.0)
}

func TestSummarizeEmptySeries(t *testing.T) {
	assert.Zero(t, Summarize(nil))
}

func TestRankScenariosByEmissions(t *testing.T) {
	results := runStock(t)
	summaries := SummarizeAll(results)
	require.Len(t, summaries, 2)

	ranked, err := RankScenarios(summaries, MetricEmissions)
	require.NoError(t, err)

	// The high-renewables pipeline swaps coal and extra gas for solar and
	// wind, so it must emit less over the run.
	assert.Equal(t, "high_renewables", ranked[0].Scenario)
	assert.LessOrEqual(t, ranked[0].CumulativeCO2Mt, ranked[1].CumulativeCO2Mt)
}

func TestRankScenariosUnknownMetric(t *testing.T) {
	_, err := RankScenarios(nil, Metric("bogus"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestRankScenariosStableOnTies(t *testing.T) {
	summaries := []ScenarioSummary{
		{Scenario: "b", TotalUnservedGWh: 5},
		{Scenario: "a", TotalUnservedGWh: 5},
	}

	ranked, err := RankScenarios(summaries, MetricUnserved)
	require.NoError(t, err)

	assert.Equal(t, "a", ranked[0].Scenario)
}
