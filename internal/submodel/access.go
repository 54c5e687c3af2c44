package submodel

import (
	"math"

	"energy-outlook/internal/config"
)

// Access-model assumptions. The rural population share weights the national
// access aggregate; the fossil phaseout rate feeds the just-transition score.
const (
	ruralPopulationShare   = 0.6
	fossilPhaseoutRate     = 0.02
	gridArrivalRisk        = 0.1
	affordabilityRefTariff = 150.0
)

// Access models electrification progress, affordability, and equity outcomes.
// Access rates ratchet up year over year.
type Access struct {
	params    config.AccessParams
	startYear int

	national float64
	urban    float64
	rural    float64
}

type AccessResult struct {
	RuralRate    float64 `json:"rural_access_rate"`
	UrbanRate    float64 `json:"urban_access_rate"`
	NationalRate float64 `json:"national_access_rate"`

	SHSConnectionsAdded      float64 `json:"shs_connections_added"`
	MinigridConnectionsAdded float64 `json:"minigrid_connections_added"`

	AffordabilityScore float64 `json:"affordability_score"`
	EnergyBurden       float64 `json:"average_energy_burden"`
	EnergyPovertyIndex float64 `json:"energy_poverty_index"`

	WomenEntrepreneursSupported float64 `json:"women_entrepreneurs_supported"`
	GenderImpactScore           float64 `json:"gender_impact_score"`
	JustTransitionScore         float64 `json:"just_transition_score"`
}

func NewAccess(params config.AccessParams, startYear int) *Access {
	return &Access{
		params:    params,
		startYear: startYear,
		national:  defaultIfZero(params.BaselineAccessRates.National, 0.95),
		urban:     defaultIfZero(params.BaselineAccessRates.Urban, 0.99),
		rural:     defaultIfZero(params.BaselineAccessRates.Rural, 0.90),
	}
}

// Simulate advances access one year. Rural connection growth speeds up with
// service quality (derived from SAIDI), and the national rate is the
// population-weighted blend of rural and urban.
func (a *Access) Simulate(year int, retailTariffMWh, saidiHours float64) AccessResult {
	idx := float64(year - a.startYear)

	serviceQuality := math.Max(0, 1-saidiHours/20)
	target := defaultIfZero(a.params.RuralTargetAccess, 1.0)
	a.rural = math.Min(target, a.rural+0.015*(1+serviceQuality*0.2))

	shs := 100000 * math.Pow(0.9, idx)
	minigrid := 20000 * (1 - gridArrivalRisk)

	tariff := defaultIfZero(retailTariffMWh, 100)
	affordability := math.Max(0, 1-tariff/affordabilityRefTariff)
	// Energy burden: monthly 150 kWh at the retail rate against a $1000
	// reference income.
	burden := (tariff / 1000) * 150 / 1000
	povertyIndex := burden * 0.5

	women := defaultIfZero(a.params.EquityPrograms.Gender.SupportLevel, 100) * 1.1
	genderScore := math.Min(1.0, 0.3+0.03*idx)

	reskilling := defaultIfZero(a.params.EquityPrograms.JustTransition.ReskillingEffectiveness, 0.5)
	justTransition := reskilling * (1 - fossilPhaseoutRate*0.5)

	a.national = a.rural*ruralPopulationShare + a.urban*(1-ruralPopulationShare)
	a.urban = math.Min(1.0, a.urban+0.005)

	return AccessResult{
		RuralRate:                   a.rural,
		UrbanRate:                   a.urban,
		NationalRate:                a.national,
		SHSConnectionsAdded:         shs,
		MinigridConnectionsAdded:    minigrid,
		AffordabilityScore:          affordability,
		EnergyBurden:                burden,
		EnergyPovertyIndex:          povertyIndex,
		WomenEntrepreneursSupported: women,
		GenderImpactScore:           genderScore,
		JustTransitionScore:         justTransition,
	}
}
