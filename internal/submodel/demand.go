// Package submodel holds the sector models the simulation engine steps each
// year: demand, fuel supply, grid, market, governance, renewable transition,
// access, climate resilience, environment, innovation, and finance. Each model
// is built fresh per scenario run and carries its own year-to-year state, so
// scenario runs never bleed into each other. Inputs the driver synthesizer
// leaves at zero fall back to documented internal defaults.
package submodel

import (
	"fmt"
	"math"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Demand sector assumptions not exposed through config. Efficiency values are
// annual improvement rates; the solar pump factor is the share of pump load
// the grid loses to standalone solar.
const (
	efficiencyGainResidential = 0.01
	efficiencyGainIndustrial  = 0.015
	efficiencyGainCommercial  = 0.01
	irrigationExpansionRate   = 0.02
	solarPumpAdoptionRate     = 0.05
	evFleetGrowthRate         = 0.25
)

// Demand projects sector electricity consumption. Projections compound on the
// prior year's sector demand, so the model owns that state.
type Demand struct {
	elasticity config.ElasticityParams
	currentTWh map[string]float64
}

// DemandResult is one year's projection, in TWh.
type DemandResult struct {
	BySectorTWh map[string]float64 `json:"by_sector_twh"`
	TotalTWh    float64            `json:"total_twh"`
}

func NewDemand(params config.DemandParams) *Demand {
	current := map[string]float64{
		"residential":  50,
		"industrial":   60,
		"commercial":   30,
		"agricultural": 10,
		"transport":    1,
	}
	for sector, twh := range params.BaseDemandTWh {
		current[sector] = twh
	}
	return &Demand{elasticity: params.ElasticityParams, currentTWh: current}
}

// Project computes the year's sector demands from economic growth and the
// prior year's levels, then records the result as the new base. A projection
// that is non-finite or negative in total is a hard error so the engine can
// abort the scenario rather than propagate garbage downstream.
func (d *Demand) Project(year int, econ model.EconomicGrowthFactors) (DemandResult, error) {
	elastRes := defaultIfZero(d.elasticity.IncomeElasticityResidential, 0.8)
	elastInd := defaultIfZero(d.elasticity.GDPElasticityIndustrial, 1.0)
	elastCom := defaultIfZero(d.elasticity.GDPElasticityCommercial, 0.9)

	bySector := map[string]float64{
		"residential": d.currentTWh["residential"] *
			(1 + econ.GDPGrowth*elastRes) * (1 - efficiencyGainResidential),
		"industrial": d.currentTWh["industrial"] *
			(1 + econ.IndustrialGDPGrowth*elastInd) * (1 - efficiencyGainIndustrial),
		"commercial": d.currentTWh["commercial"] *
			(1 + econ.ServiceSectorGrowth*elastCom) * (1 - efficiencyGainCommercial),
		"agricultural": d.currentTWh["agricultural"] *
			(1 + irrigationExpansionRate) * (1 - solarPumpAdoptionRate*0.5),
		"transport": d.currentTWh["transport"] * (1 + evFleetGrowthRate),
	}

	total := 0.0
	for _, twh := range bySector {
		total += twh
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return DemandResult{}, fmt.Errorf("projected total demand %v TWh for year %d is not usable", total, year)
	}

	d.currentTWh = bySector
	return DemandResult{BySectorTWh: bySector, TotalTWh: total}, nil
}

func defaultIfZero(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
