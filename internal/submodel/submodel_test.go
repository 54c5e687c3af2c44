package submodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

func TestDemandCompoundsOnPriorYear(t *testing.T) {
	d := NewDemand(config.DemandParams{
		BaseDemandTWh: map[string]float64{"residential": 80, "industrial": 100},
		ElasticityParams: config.ElasticityParams{
			IncomeElasticityResidential: 0.85,
			GDPElasticityIndustrial:     1.05,
		},
	})
	econ := model.EconomicGrowthFactors{
		GDPGrowth:           0.065,
		IndustrialGDPGrowth: 0.0715,
		ServiceSectorGrowth: 0.078,
	}

	first, err := d.Project(2025, econ)
	require.NoError(t, err)
	second, err := d.Project(2026, econ)
	require.NoError(t, err)

	wantRes := 80 * (1 + 0.065*0.85) * (1 - efficiencyGainResidential)
	assert.InDelta(t, wantRes, first.BySectorTWh["residential"], 1e-9)
	// Year two grows on year one, not on the base.
	assert.InDelta(t, wantRes*(1+0.065*0.85)*(1-efficiencyGainResidential),
		second.BySectorTWh["residential"], 1e-9)
	assert.Greater(t, second.TotalTWh, first.TotalTWh)
}

func TestDemandRejectsUnusableProjection(t *testing.T) {
	d := NewDemand(config.DemandParams{
		BaseDemandTWh: map[string]float64{"residential": math.Inf(1)},
	})

	_, err := d.Project(2025, model.EconomicGrowthFactors{GDPGrowth: 0.06})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2025")
}

func TestFuelGasDeclineCurve(t *testing.T) {
	f := NewFuelSupply(config.FuelSupplyParams{
		DomesticGas: config.DomesticGasParams{InitialProductionBCFYr: 800, DeclineRate: 0.04},
	}, 2025)
	markets := model.GlobalMarkets{GasPriceFactor: 1.0, LNGSpotFactor: 1.2}

	y0 := f.Simulate(2025, markets, model.ClimateConditions{})
	y5 := f.Simulate(2030, markets, model.ClimateConditions{})

	assert.InDelta(t, 800.0, y0.DomesticGas.ProductionBCF, 1e-9)
	assert.InDelta(t, 800*math.Pow(0.96, 5), y5.DomesticGas.ProductionBCF, 1e-9)
	assert.InDelta(t, 5.0, y0.DomesticGas.PriceUSDMMBtu, 1e-9)
}

func TestFuelLNGBlendsContractAndSpot(t *testing.T) {
	f := NewFuelSupply(config.FuelSupplyParams{
		LNG: config.LNGParams{ContractPriceUSDMMBtu: 9, SpotShare: 0.25},
	}, 2025)

	res := f.Simulate(2025, model.GlobalMarkets{LNGSpotFactor: 1.2}, model.ClimateConditions{})

	assert.InDelta(t, 0.75*9+0.25*12, res.LNG.AvgPriceUSDMMBtu, 1e-9)
}

func TestGridLossesDeclineWithSmartMeters(t *testing.T) {
	g := NewGrid(config.GridParams{
		Losses:    config.LossParams{BaseTechnicalLoss: 0.06, BaseNonTechnicalLoss: 0.05},
		SmartGrid: config.SmartGridParams{TargetPenetration: 0.9, RolloutSpeedPctYr: 0.06},
	}, 2025)

	y0 := g.Simulate(2025, 100000)
	y1 := g.Simulate(2026, 100000)

	assert.Less(t, y1.Losses.TechnicalPct, y0.Losses.TechnicalPct)
	assert.Less(t, y1.Losses.NonTechnicalPct, y0.Losses.NonTechnicalPct)
	assert.InDelta(t, y0.Losses.TotalPct*100000, y0.Losses.LostEnergyGWh, 1e-6)
	assert.Greater(t, y1.SmartGrid.MeterPenetration, y0.SmartGrid.MeterPenetration)
}

func TestMarketSingleBuyerCostPlus(t *testing.T) {
	m := NewMarket(config.MarketParams{
		Structure: config.MarketStructureParams{Type: "single_buyer"},
		Tariff:    config.TariffParams{SubsidyLevel: 0.15},
	}, 2025)

	res := m.Simulate(2025, map[string]float64{"gas_cc": 40, "coal": 60})

	assert.InDelta(t, 50*1.05, res.Wholesale.PriceMWh, 1e-9)
	assert.InDelta(t, (50*1.05+networkCostMWh)*0.85, res.Retail.AvgTariffMWh, 1e-9)
}

func TestMarketMeritOrderUsesUpperMedian(t *testing.T) {
	m := NewMarket(config.MarketParams{
		Structure: config.MarketStructureParams{Type: "wholesale"},
	}, 2025)

	res := m.Simulate(2025, map[string]float64{"a": 10, "b": 30, "c": 50, "d": 90})

	assert.InDelta(t, 50.0, res.Wholesale.PriceMWh, 1e-9)
}

func TestMarketSupportPricesDecay(t *testing.T) {
	m := NewMarket(config.MarketParams{
		PPA:       config.PPAParams{AvgPPAPriceMWh: 70},
		RESupport: config.RESupportParams{FiTSolarMWh: 85},
	}, 2025)

	res := m.Simulate(2030, nil)

	assert.InDelta(t, 70*math.Pow(0.99, 5), res.PPA.AvgPriceMWh, 1e-9)
	assert.InDelta(t, 85*math.Pow(0.95, 5), res.RESupport.FiTSolarMWh, 1e-9)
	assert.InDelta(t, res.RESupport.FiTSolarMWh*0.8, res.RESupport.AuctionSolarMWh, 1e-9)
}

func TestGovernanceScoresEvolve(t *testing.T) {
	g := NewGovernance(config.GovernanceParams{
		UnbundlingLevel: "functional",
		Regulatory:      config.RegulatoryParams{CapacityScore: 0.55},
		Planning:        config.PlanningParams{IRPAdopted: true},
		PPPFramework:    config.PPPParams{ClarityScore: 0.65},
	})
	external := model.ExternalFactors{InvestorConfidence: 0.7, DataAvailabilityScore: 0.65}

	y0 := g.Simulate(2025, model.ReformAgenda{}, external)
	y1 := g.Simulate(2026, model.ReformAgenda{UnbundlingPush: true}, external)

	assert.InDelta(t, 0.7, y0.UnbundlingScore, 1e-9)
	assert.InDelta(t, 0.75, y1.UnbundlingScore, 1e-9)
	assert.InDelta(t, 0.55+defaultRegulatoryStrengthening*regulatorImplementationCapacity,
		y0.RegulatoryEffectiveness, 1e-9)
	// IRP adopted and data availability above threshold gives the fast
	// adherence ramp.
	assert.InDelta(t, 0.73, y0.PlanningAdherence, 1e-9)
	assert.InDelta(t, 0.65*0.7, y0.PSPEnvironmentScore, 1e-9)
}

func TestGovernanceFreshStatePerInstance(t *testing.T) {
	params := config.GovernanceParams{Regulatory: config.RegulatoryParams{CapacityScore: 0.5}}
	external := model.ExternalFactors{InvestorConfidence: 0.7}

	a := NewGovernance(params)
	a.Simulate(2025, model.ReformAgenda{}, external)
	a.Simulate(2026, model.ReformAgenda{}, external)

	b := NewGovernance(params)
	fresh := b.Simulate(2025, model.ReformAgenda{}, external)

	assert.InDelta(t, 0.5+defaultRegulatoryStrengthening*regulatorImplementationCapacity,
		fresh.RegulatoryEffectiveness, 1e-9, "new instance must not inherit prior run state")
}

func TestRenewableLearningCurve(t *testing.T) {
	r := NewRenewable(config.RenewableParams{
		Solar:         config.RETechParams{BaseCostMWh: 65},
		LearningCurve: config.LearningCurveParams{SolarLearningRate: 0.18},
		BaseSolarMW:   800,
		BaseWindMW:    150,
	}, 2025)

	y0 := r.Simulate(2025, model.PolicySupport{}, 60, 20000)
	y5 := r.Simulate(2030, model.PolicySupport{}, 60, 20000)

	assert.InDelta(t, 65.0, y0.Solar.LCOEMWh, 1e-9)
	assert.InDelta(t, 65*math.Pow(0.82, 5), y5.Solar.LCOEMWh, 1e-9)
}

func TestRenewableEconomicExpansionBeatsTarget(t *testing.T) {
	r := NewRenewable(config.RenewableParams{
		Solar: config.RETechParams{BaseCostMWh: 40},
	}, 2025)

	// Cost 40 undercuts the 60 wholesale price, so the 1000 MW economic
	// build wins over the 500 MW default target, dampened to half.
	res := r.Simulate(2025, model.PolicySupport{}, 60, 20000)

	assert.InDelta(t, 500.0, res.Solar.IncreaseMW, 1e-9)
}

func TestRenewableCurtailmentAboveLimit(t *testing.T) {
	r := NewRenewable(config.RenewableParams{
		Integration: config.IntegrationParams{MaxVREPenetration: 0.4},
		BaseSolarMW: 4000,
		BaseWindMW:  1000,
	}, 2025)

	res := r.Simulate(2025, model.PolicySupport{}, 50, 10000)

	assert.Greater(t, res.Integration.VREPenetration, 0.4)
	assert.InDelta(t, (res.Integration.VREPenetration-0.4)*2,
		res.Integration.CurtailmentFactor, 1e-9)
}

func TestAccessRuralRatchetsTowardTarget(t *testing.T) {
	a := NewAccess(config.AccessParams{
		BaselineAccessRates: config.AccessRates{National: 0.98, Urban: 1.0, Rural: 0.96},
		RuralTargetAccess:   1.0,
	}, 2025)

	var last AccessResult
	for year := 2025; year <= 2040; year++ {
		last = a.Simulate(year, 90, 15)
	}

	assert.InDelta(t, 1.0, last.RuralRate, 1e-9, "rural access saturates at target")
	assert.LessOrEqual(t, last.NationalRate, 1.0)
}

func TestClimateResilienceDiminishingReturns(t *testing.T) {
	c := NewClimate(config.ClimateParams{
		InvestmentEffectiveness: 0.08,
		BaselineResilience:      0.35,
	}, 2025)
	inputs := model.ClimateInputs{CycloneFrequency: 0.5, AdaptationInvestmentMUSD: 75}

	y0 := c.Simulate(2025, inputs)
	y1 := c.Simulate(2026, inputs)

	gain0 := y0.ResilienceScore - 0.35
	gain1 := y1.ResilienceScore - y0.ResilienceScore
	assert.Less(t, gain1, gain0, "resilience gains shrink as the score rises")
	assert.InDelta(t, 150.0, y1.CumulativeInvestmentMUSD, 1e-9)
	assert.InDelta(t, y0.CycloneDamagePerEventMUSD*0.5+y0.FloodAnnualDamageMUSD,
		y0.TotalAnnualDamageMUSD, 1e-9)
}

func TestClimateHarsherRCPScalesHazards(t *testing.T) {
	mild := NewClimate(config.ClimateParams{RCP: "rcp45"}, 2025)
	harsh := NewClimate(config.ClimateParams{RCP: "rcp60"}, 2025)
	inputs := model.ClimateInputs{AdaptationInvestmentMUSD: 50}

	mild.Simulate(2025, inputs)
	harsh.Simulate(2025, inputs)
	m := mild.Simulate(2030, inputs)
	h := harsh.Simulate(2030, inputs)

	assert.Greater(t, h.SeaLevelRiseCM, m.SeaLevelRiseCM)
	assert.Greater(t, h.TempIncreaseC, m.TempIncreaseC)
}

func TestEnvironmentCCSReducesCoalCO2Only(t *testing.T) {
	techParams := map[string]model.TechnologyParams{
		"coal":   {CO2FactorTMWh: 0.95, SOxFactorTMWh: 0.0015, CoalAshTMWh: 0.08},
		"gas_cc": {CO2FactorTMWh: 0.38},
	}
	env := NewEnvironment(config.EnvironmentParams{
		Mitigation: config.MitigationParams{CCSCaptureRate: 0.9},
	})
	mix := map[string]float64{"coal": 100, "gas_cc": 200}

	base := env.Calculate(mix, nil, techParams, model.MitigationMeasures{})
	ccs := env.Calculate(mix, nil, techParams, model.MitigationMeasures{CCSOnCoal: true})

	wantBase := 100*1000*0.95 + 200*1000*0.38
	assert.InDelta(t, wantBase, base.CO2eTonnes, 1e-6)
	assert.InDelta(t, 100*1000*0.95*0.1+200*1000*0.38, ccs.CO2eTonnes, 1e-6)
	assert.InDelta(t, base.SOxTonnes, ccs.SOxTonnes, 1e-9, "CCS only touches CO2")
	// The factor table must stay pristine for the next call.
	again := env.Calculate(mix, nil, techParams, model.MitigationMeasures{})
	assert.InDelta(t, wantBase, again.CO2eTonnes, 1e-6)
}

func TestEnvironmentLandUseFromCapacity(t *testing.T) {
	env := NewEnvironment(config.EnvironmentParams{
		LandUseFactors: map[string]config.LandFactors{
			"solar_util": {SqKmPerMW: 0.02},
		},
	})

	res := env.Calculate(nil, map[string]float64{"solar_util": 800}, nil, model.MitigationMeasures{})

	assert.InDelta(t, 16.0, res.LandUseSqKm, 1e-9)
}

func TestInnovationScoresAccumulate(t *testing.T) {
	inn := NewInnovation(config.InnovationParams{
		BaselineScores:     config.InnovationScores{Adaptation: 0.45, LocalMfgShare: 0.06, BusinessModel: 0.35, Digitalization: 0.25},
		LocalContentTarget: 0.1,
	})
	policy := model.IndustrialPolicy{Effectiveness: 0.5}

	y0 := inn.Simulate(2025, policy, model.PolicySupport{}, 0.6, 0)
	y1 := inn.Simulate(2026, policy, model.PolicySupport{EnableNewModels: true}, 0.6, 0)

	assert.Greater(t, y1.TechAdaptationScore, y0.TechAdaptationScore)
	assert.Greater(t, y1.DigitalizationLevel, y0.DigitalizationLevel)
	assert.Greater(t, y1.BusinessModelScore-y0.BusinessModelScore, 0.05,
		"enabling new models adds the policy bump on top of the digital effect")
	assert.InDelta(t,
		(y0.TechAdaptationScore+y0.LocalManufacturingShare*2+y0.BusinessModelScore+y0.DigitalizationLevel)/5,
		y0.OverallScore, 1e-9)
}

func TestFinanceNeedsAndGap(t *testing.T) {
	f := NewFinance(config.FinanceParams{
		CostPerMWNewMUSD:          1.4,
		ADPShareEnergy:            0.08,
		InvestorRiskPerception:    0.65,
		ClimateFinanceAccessScore: 0.55,
	})
	pipeline := []model.PipelineEntry{
		{Year: 2025, Technology: "nuclear", CapacityMW: 1200},
		{Year: 2026, Technology: "solar_util", CapacityMW: 600},
	}
	fin := model.FinancialInputs{
		TotalADPBudgetMUSD:     15000,
		GridInvestmentMUSD:     1200,
		LocalMarketDepthScore:  0.3,
		RooftopSolarIncreaseMW: 50,
	}

	res := f.Simulate(2025, pipeline, fin, 0.5)

	wantNeeds := 1200*1.4 + 1200
	assert.InDelta(t, wantNeeds, res.InvestmentNeedsMUSD, 1e-9)
	assert.InDelta(t, 15000*0.08+soeInvestmentMUSD, res.PublicMUSD, 1e-9)
	assert.InDelta(t, wantNeeds*0.6*0.35*0.5, res.PrivateMUSD, 1e-6)
	assert.InDelta(t, res.InvestmentNeedsMUSD-res.TotalMobilizedMUSD,
		res.FinancingGapMUSD, 1e-6, "gap closes the balance when needs exceed mobilization")

	second := f.Simulate(2026, pipeline, fin, 0.5)
	assert.InDelta(t, res.TotalMobilizedMUSD+second.TotalMobilizedMUSD,
		second.CumulativeMUSD, 1e-6)
}

func TestFinanceGapNeverNegative(t *testing.T) {
	f := NewFinance(config.FinanceParams{})

	res := f.Simulate(2025, nil, model.FinancialInputs{TotalADPBudgetMUSD: 100000}, 0.9)

	assert.GreaterOrEqual(t, res.FinancingGapMUSD, 0.0)
}
