package analysis

import (
	"fmt"
	"sort"
)

// Metric selects the ranking criterion for RankScenarios.
type Metric string

const (
	MetricEmissions    Metric = "emissions"     // cumulative CO2, lower first
	MetricUnserved     Metric = "unserved"      // total unserved energy, lower first
	MetricFinancingGap Metric = "financing_gap" // cumulative gap, lower first
	MetricAccess       Metric = "access"        // final access rate, higher first
	MetricResilience   Metric = "resilience"    // final resilience score, higher first
)

// RankScenarios returns the summaries ordered best-first by the given metric.
// Ties break on scenario name so rankings are stable.
func RankScenarios(summaries []ScenarioSummary, metric Metric) ([]ScenarioSummary, error) {
	key, ascending, err := metricKey(metric)
	if err != nil {
		return nil, err
	}
	out := make([]ScenarioSummary, len(summaries))
	copy(out, summaries)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := key(out[i]), key(out[j])
		if a != b {
			if ascending {
				return a < b
			}
			return a > b
		}
		return out[i].Scenario < out[j].Scenario
	})
	return out, nil
}

func metricKey(metric Metric) (func(ScenarioSummary) float64, bool, error) {
	switch metric {
	case MetricEmissions:
		return func(s ScenarioSummary) float64 { return s.CumulativeCO2Mt }, true, nil
	case MetricUnserved:
		return func(s ScenarioSummary) float64 { return s.TotalUnservedGWh }, true, nil
	case MetricFinancingGap:
		return func(s ScenarioSummary) float64 { return s.CumulativeFinancingGapMUSD }, true, nil
	case MetricAccess:
		return func(s ScenarioSummary) float64 { return s.FinalAccessRate }, false, nil
	case MetricResilience:
		return func(s ScenarioSummary) float64 { return s.FinalResilienceScore }, false, nil
	default:
		return nil, false, fmt.Errorf("unknown ranking metric %q", metric)
	}
}
