// Package sim orchestrates scenario runs: it resolves each scenario against
// the base config, builds a fresh portfolio and submodel set, steps the years
// in a fixed order, and collects typed per-year records.
package sim

import (
	"energy-outlook/internal/portfolio"
	"energy-outlook/internal/submodel"
)

// YearRecord is the full output of one simulated year for one scenario.
type YearRecord struct {
	Scenario string `json:"scenario"`
	Year     int    `json:"year"`

	// Start-of-year fleet, captured after the year's capacity update.
	CapacityMW   map[string]float64     `json:"start_of_year_capacity_mw"`
	LedgerUpdate portfolio.LedgerUpdate `json:"capacity_update"`

	Demand      submodel.DemandResult      `json:"demand"`
	Fuel        submodel.FuelResult        `json:"fuel_supply"`
	Dispatch    portfolio.DispatchResult   `json:"generation_dispatch"`
	Grid        submodel.GridResult        `json:"grid_operations"`
	Market      submodel.MarketResult      `json:"market_outcomes"`
	Governance  submodel.GovernanceResult  `json:"governance"`
	Renewable   submodel.RenewableResult   `json:"renewable_transition"`
	Access      submodel.AccessResult      `json:"energy_access"`
	Climate     submodel.ClimateResult     `json:"climate_resilience"`
	Environment submodel.EnvironmentResult `json:"environmental_impact"`
	Innovation  submodel.InnovationResult  `json:"innovation_ecosystem"`
	Finance     submodel.FinanceResult     `json:"finance"`
}

// ResultSet maps scenario name to its year series. Scenarios that failed are
// absent; the run's error reports why.
type ResultSet map[string][]YearRecord
