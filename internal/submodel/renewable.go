package submodel

import (
	"math"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Renewable expansion assumptions. Economic builds fire when the
// learning-curve cost undercuts the wholesale price; the dampening factors
// keep the combined policy/economic signal from double counting.
const (
	defaultSolarTargetMW = 500.0
	defaultWindTargetMW  = 100.0
	solarEconomicBuildMW = 1000.0
	windEconomicBuildMW  = 500.0
	solarBuildDampening  = 0.5
	windBuildDampening   = 0.3
	bioenergyIncreaseMW  = 10.0
	hydroDomesticAddMW   = 5.0
	hydroImportDefaultMW = 500.0
	defaultSystemCapMW   = 25000.0
)

// Renewable models solar and wind growth under learning curves and policy
// targets, plus the grid-integration consequences. Cumulative VRE capacity is
// tracked here independently of the dispatch ledger: projected increases are
// recorded for reporting and never fed back into the fleet.
type Renewable struct {
	params    config.RenewableParams
	startYear int

	solarMW float64
	windMW  float64
}

type RenewableResult struct {
	Solar           RETechResult       `json:"solar"`
	Wind            RETechResult       `json:"wind"`
	BioIncreaseMW   float64            `json:"bioenergy_increase_mw"`
	HydroIncreaseMW float64            `json:"hydro_domestic_increase_mw"`
	HydroImportMW   float64            `json:"hydro_import_mw"`
	Integration     IntegrationResult  `json:"grid_integration"`
	TotalIncreaseMW map[string]float64 `json:"total_capacity_increase_mw"`
}

type RETechResult struct {
	IncreaseMW float64 `json:"capacity_increase_mw"`
	LCOEMWh    float64 `json:"lcoe_mwh"`
}

type IntegrationResult struct {
	VREPenetration    float64 `json:"vre_penetration_level"`
	CurtailmentFactor float64 `json:"estimated_curtailment_factor"`
	ForecastAccuracy  float64 `json:"forecasting_accuracy"`
}

func NewRenewable(params config.RenewableParams, startYear int) *Renewable {
	return &Renewable{
		params:    params,
		startYear: startYear,
		solarMW:   defaultIfZero(params.BaseSolarMW, 500),
		windMW:    defaultIfZero(params.BaseWindMW, 100),
	}
}

// Simulate projects the year's renewable build-out. totalSystemCapacityMW is
// the fleet total from the dispatch ledger and anchors the VRE penetration
// estimate.
func (r *Renewable) Simulate(year int, support model.PolicySupport, wholesalePriceMWh, totalSystemCapacityMW float64) RenewableResult {
	idx := float64(year - r.startYear)

	solarLR := defaultIfZero(r.params.LearningCurve.SolarLearningRate, 0.15)
	solarCost := defaultIfZero(r.params.Solar.BaseCostMWh, 70) * math.Pow(1-solarLR, idx)
	solar := r.expand(solarCost, wholesalePriceMWh,
		defaultIfZero(support.SolarTargetMW, defaultSolarTargetMW),
		solarEconomicBuildMW, solarBuildDampening)
	r.solarMW += solar.IncreaseMW

	windLR := defaultIfZero(r.params.LearningCurve.WindLearningRate, 0.1)
	windCost := defaultIfZero(r.params.Wind.BaseCostMWh, 80) * math.Pow(1-windLR, idx)
	wind := r.expand(windCost, wholesalePriceMWh,
		defaultIfZero(support.WindTargetMW, defaultWindTargetMW),
		windEconomicBuildMW, windBuildDampening)
	r.windMW += wind.IncreaseMW

	systemCap := defaultIfZero(totalSystemCapacityMW, defaultSystemCapMW)
	penetration := (r.solarMW + r.windMW) / systemCap
	maxPen := defaultIfZero(r.params.Integration.MaxVREPenetration, 0.5)
	integration := IntegrationResult{
		VREPenetration:    penetration,
		CurtailmentFactor: math.Max(0, (penetration-maxPen)*2),
		ForecastAccuracy:  math.Min(0.95, 0.8+0.01*idx),
	}

	return RenewableResult{
		Solar:           solar,
		Wind:            wind,
		BioIncreaseMW:   bioenergyIncreaseMW,
		HydroIncreaseMW: hydroDomesticAddMW,
		HydroImportMW:   hydroImportDefaultMW,
		Integration:     integration,
		TotalIncreaseMW: map[string]float64{
			"solar":          solar.IncreaseMW,
			"wind":           wind.IncreaseMW,
			"bioenergy":      bioenergyIncreaseMW,
			"hydro_domestic": hydroDomesticAddMW,
		},
	}
}

func (r *Renewable) expand(costMWh, wholesaleMWh, targetMW, economicBuildMW, dampening float64) RETechResult {
	economic := 0.0
	if costMWh < wholesaleMWh {
		economic = economicBuildMW
	}
	return RETechResult{
		IncreaseMW: math.Max(targetMW, economic) * dampening,
		LCOEMWh:    costMWh,
	}
}
