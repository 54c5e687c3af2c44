package submodel

import (
	"math"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Climate models hazard impacts on the power system and the resilience gained
// from adaptation investment. The resilience score compounds with diminishing
// returns as it approaches 1.
type Climate struct {
	params    config.ClimateParams
	startYear int

	resilience     float64
	cumulativeMUSD float64
}

type ClimateResult struct {
	ResilienceScore          float64 `json:"overall_resilience_score"`
	CumulativeInvestmentMUSD float64 `json:"cumulative_adaptation_investment_m_usd"`

	CycloneDamagePerEventMUSD float64 `json:"cyclone_damage_per_event_m_usd"`
	CycloneOutageHours        float64 `json:"cyclone_outage_hours_per_event"`
	FloodAnnualDamageMUSD     float64 `json:"flood_annual_damage_m_usd"`
	TempIncreaseC             float64 `json:"temp_increase_c"`
	DeratingFactor            float64 `json:"avg_derating_factor"`
	CoolingStressIndex        float64 `json:"cooling_stress_index"`
	SeaLevelRiseCM            float64 `json:"sea_level_rise_cm"`
	SLRNetRiskFactor          float64 `json:"slr_net_risk_factor"`

	TotalAnnualDamageMUSD float64 `json:"estimated_total_annual_damage_m_usd"`
}

func NewClimate(params config.ClimateParams, startYear int) *Climate {
	return &Climate{
		params:     params,
		startYear:  startYear,
		resilience: defaultIfZero(params.BaselineResilience, 0.4),
	}
}

// Simulate applies the year's adaptation investment and estimates hazard
// impacts. Hazard intensities scale up under RCP scenarios harsher than
// rcp45.
func (c *Climate) Simulate(year int, inputs model.ClimateInputs) ClimateResult {
	idx := float64(year - c.startYear)

	cycloneFactor, floodFactor, tempFactor, slrFactor := 1.0, 1.0, 1.0, 1.0
	if c.params.RCP != "rcp45" && c.params.RCP != "" {
		cycloneFactor, floodFactor, tempFactor, slrFactor = 1.5, 1.3, 1.2, 1.4
	}

	invest := inputs.AdaptationInvestmentMUSD
	c.cumulativeMUSD += invest
	effectiveness := defaultIfZero(c.params.InvestmentEffectiveness, 0.1)
	c.resilience = math.Min(1.0, c.resilience+effectiveness*(invest/1000)*(1-c.resilience))

	cycloneProtection := c.resilience * 0.8
	floodProtection := c.resilience * 0.7
	tempAdaptation := c.resilience * 0.5
	slrAdaptation := c.resilience * 0.6

	cycloneIntensity := 1.0 + 0.02*idx*cycloneFactor
	vulnerability := math.Max(0.1, 0.8-cycloneProtection*0.5)
	cycloneDamage := 50 * cycloneIntensity * vulnerability
	cycloneOutage := 24 * cycloneIntensity * vulnerability

	floodRisk := 1.0 + 0.015*idx*floodFactor
	floodDamage := 30 * floodRisk * math.Max(0.1, 1-floodProtection)

	tempIncrease := 0.05 * idx * tempFactor
	derating := math.Max(0, 0.01*tempIncrease*(1-tempAdaptation))

	slrCM := 1.0 * idx * slrFactor
	assetsAtRisk := math.Min(1.0, 0.05+slrCM*0.01)
	slrNetRisk := math.Max(0, assetsAtRisk*(1-slrAdaptation))

	frequency := defaultIfZero(inputs.CycloneFrequency, 0.5)
	totalDamage := cycloneDamage*frequency + floodDamage

	return ClimateResult{
		ResilienceScore:           c.resilience,
		CumulativeInvestmentMUSD:  c.cumulativeMUSD,
		CycloneDamagePerEventMUSD: cycloneDamage,
		CycloneOutageHours:        cycloneOutage,
		FloodAnnualDamageMUSD:     floodDamage,
		TempIncreaseC:             tempIncrease,
		DeratingFactor:            derating,
		CoolingStressIndex:        tempIncrease * 0.1,
		SeaLevelRiseCM:            slrCM,
		SLRNetRiskFactor:          slrNetRisk,
		TotalAnnualDamageMUSD:     totalDamage,
	}
}
