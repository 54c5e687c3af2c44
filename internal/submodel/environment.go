package submodel

import (
	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Environment computes the environmental footprint of a year's generation:
// emissions, water, land, and waste. It is stateless; every call is a pure
// function of the year's mix and the fleet parameters.
type Environment struct {
	params config.EnvironmentParams
}

type EnvironmentResult struct {
	CO2eTonnes float64 `json:"total_co2eq_tonnes"`
	SOxTonnes  float64 `json:"sox_tonnes"`
	NOxTonnes  float64 `json:"nox_tonnes"`
	PM25Tonnes float64 `json:"pm25_tonnes"`

	WaterWithdrawalMm3  float64 `json:"water_withdrawal_million_m3"`
	WaterConsumptionMm3 float64 `json:"water_consumption_million_m3"`
	LandUseSqKm         float64 `json:"total_land_use_sqkm"`
	CoalAshTonnes       float64 `json:"coal_ash_tonnes"`
}

func NewEnvironment(params config.EnvironmentParams) *Environment {
	return &Environment{params: params}
}

// Calculate totals the year's impacts from the generation mix (GWh by tech),
// the installed fleet (MW by tech), and the per-technology factors. When CCS
// is active on coal its CO2 factor is reduced by the capture rate; the
// adjustment is local to the call and never mutates the fleet parameters.
func (e *Environment) Calculate(generationGWh, capacityMW map[string]float64,
	techParams map[string]model.TechnologyParams, mitigation model.MitigationMeasures) EnvironmentResult {

	var res EnvironmentResult
	for tech, gwh := range generationGWh {
		tp := techParams[tech]
		mwh := gwh * 1000

		co2Factor := tp.CO2FactorTMWh
		if mitigation.CCSOnCoal && tech == "coal" {
			co2Factor *= 1 - defaultIfZero(e.params.Mitigation.CCSCaptureRate, 0.9)
		}
		res.CO2eTonnes += mwh * co2Factor
		res.SOxTonnes += mwh * tp.SOxFactorTMWh
		res.NOxTonnes += mwh * tp.NOxFactorTMWh
		res.PM25Tonnes += mwh * tp.PM25FactorTMWh
		res.CoalAshTonnes += mwh * tp.CoalAshTMWh

		wf := e.params.WaterFactors[tech]
		res.WaterWithdrawalMm3 += mwh * wf.WithdrawalM3MWh / 1e6
		res.WaterConsumptionMm3 += mwh * wf.ConsumptionM3MWh / 1e6
	}

	for tech, mw := range capacityMW {
		res.LandUseSqKm += mw * e.params.LandUseFactors[tech].SqKmPerMW
	}
	return res
}
