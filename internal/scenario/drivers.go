package scenario

import (
	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Driver synthesis constants. These stand in for exogenous time series a
// richer data pipeline would supply; each is a linear ramp or a flat level
// anchored at the simulation start year.
const (
	baseInvestorConfidence = 0.7
	baseDataAvailability   = 0.6
	confidenceRampPerYear  = 0.01

	baseADPBudgetMUSD   = 15000.0
	adpBudgetRampMUSD   = 500.0
	baseGridInvestMUSD  = 1200.0
	gridInvestRampMUSD  = 50.0
	baseMarketDepth     = 0.3
	marketDepthRamp     = 0.01
	baseRooftopSolarMW  = 50.0
	rooftopSolarRampMW  = 10.0
	driverSubsidyLevel  = 0.1
	globalGasFactor     = 1.0
	globalLNGSpotFactor = 1.2
	solarIrradianceNorm = 1.0
)

// Synthesize builds the exogenous drivers for one simulation year. It is a
// pure function of the effective config, the year, and the start year: calling
// it twice with equal arguments returns equal results, which is what makes
// scenario runs reproducible.
func Synthesize(cfg *config.Config, year, startYear int) model.Drivers {
	idx := float64(year - startYear)
	growth := cfg.EconomicGrowthRate

	return model.Drivers{
		Economic: model.EconomicGrowthFactors{
			GDPGrowth:           growth,
			IndustrialGDPGrowth: growth * 1.1,
			ServiceSectorGrowth: growth * 1.2,
		},
		Policy: model.PolicyInputs{
			ReformAgenda:     cfg.ReformAgenda[year],
			PolicySupport:    cfg.PolicySupport[year],
			IndustrialPolicy: cfg.IndustrialPolicy,
			SubsidyLevel:     driverSubsidyLevel,
		},
		Climate: model.ClimateInputs{
			CycloneFrequency:         cfg.Climate.CycloneFrequency,
			AdaptationInvestmentMUSD: cfg.AdaptationInvestmentMUSDPerYear,
		},
		Financial: model.FinancialInputs{
			TotalADPBudgetMUSD:     baseADPBudgetMUSD + adpBudgetRampMUSD*idx,
			GridInvestmentMUSD:     baseGridInvestMUSD + gridInvestRampMUSD*idx,
			LocalMarketDepthScore:  baseMarketDepth + marketDepthRamp*idx,
			RooftopSolarIncreaseMW: baseRooftopSolarMW + rooftopSolarRampMW*idx,
		},
		External: model.ExternalFactors{
			InvestorConfidence:    baseInvestorConfidence + confidenceRampPerYear*idx,
			DataAvailabilityScore: baseDataAvailability + confidenceRampPerYear*idx,
			GlobalMarkets: model.GlobalMarkets{
				GasPriceFactor: globalGasFactor,
				LNGSpotFactor:  globalLNGSpotFactor,
			},
			ClimateConditions: model.ClimateConditions{
				SolarIrradianceFactor: solarIrradianceNorm,
			},
		},
	}
}
