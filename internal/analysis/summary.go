// Package analysis condenses scenario year series into comparable summary
// metrics and rankings.
package analysis

import (
	"math"
	"sort"

	"energy-outlook/internal/sim"
)

// ScenarioSummary is a scenario-level digest used for comparison and ranking.
type ScenarioSummary struct {
	Scenario  string `json:"scenario"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`

	FinalCapacityMW       float64 `json:"final_capacity_mw"`
	FinalVRECapacityShare float64 `json:"final_vre_capacity_share"`

	CumulativeCO2Mt       float64 `json:"cumulative_co2_mt"`
	FinalYearCO2Mt        float64 `json:"final_year_co2_mt"`
	FinalEmissionsTCO2GWh float64 `json:"final_emissions_intensity_t_per_gwh"`

	TotalUnservedGWh float64 `json:"total_unserved_gwh"`
	WorstUnservedGWh float64 `json:"worst_year_unserved_gwh"`

	MeanWholesaleMWh float64 `json:"mean_wholesale_price_mwh"`
	P95WholesaleMWh  float64 `json:"p95_wholesale_price_mwh"`

	FinalAccessRate      float64 `json:"final_national_access_rate"`
	FinalResilienceScore float64 `json:"final_resilience_score"`

	CumulativeInvestmentMUSD   float64 `json:"cumulative_investment_m_usd"`
	CumulativeFinancingGapMUSD float64 `json:"cumulative_financing_gap_m_usd"`
}

// Variable renewables counted toward the VRE capacity share.
var vreTechs = map[string]bool{"solar_util": true, "wind": true}

// Summarize digests one scenario's year series. An empty series yields a zero
// summary.
func Summarize(records []sim.YearRecord) ScenarioSummary {
	var s ScenarioSummary
	if len(records) == 0 {
		return s
	}
	first, last := records[0], records[len(records)-1]
	s.Scenario = first.Scenario
	s.StartYear = first.Year
	s.EndYear = last.Year

	prices := make([]float64, 0, len(records))
	sum := 0.0
	for _, r := range records {
		s.CumulativeCO2Mt += r.Environment.CO2eTonnes / 1e6
		s.TotalUnservedGWh += r.Dispatch.UnservedEnergyGWh
		if r.Dispatch.UnservedEnergyGWh > s.WorstUnservedGWh {
			s.WorstUnservedGWh = r.Dispatch.UnservedEnergyGWh
		}
		s.CumulativeFinancingGapMUSD += r.Finance.FinancingGapMUSD
		prices = append(prices, r.Market.Wholesale.PriceMWh)
		sum += r.Market.Wholesale.PriceMWh
	}
	sort.Float64s(prices)
	s.MeanWholesaleMWh = sum / float64(len(prices))
	s.P95WholesaleMWh = percentileSorted(prices, 0.95)

	var total, vre float64
	for tech, mw := range last.CapacityMW {
		total += mw
		if vreTechs[tech] {
			vre += mw
		}
	}
	s.FinalCapacityMW = total
	if total > 0 {
		s.FinalVRECapacityShare = vre / total
	}

	s.FinalYearCO2Mt = last.Environment.CO2eTonnes / 1e6
	if last.Dispatch.TotalGenerationGWh > 0 {
		s.FinalEmissionsTCO2GWh = last.Environment.CO2eTonnes / last.Dispatch.TotalGenerationGWh
	}
	s.FinalAccessRate = last.Access.NationalRate
	s.FinalResilienceScore = last.Climate.ResilienceScore
	s.CumulativeInvestmentMUSD = last.Finance.CumulativeMUSD
	return s
}

// SummarizeAll digests every scenario in a result set, sorted by name for
// stable output.
func SummarizeAll(results sim.ResultSet) []ScenarioSummary {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]ScenarioSummary, 0, len(names))
	for _, name := range names {
		out = append(out, Summarize(results[name]))
	}
	return out
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
