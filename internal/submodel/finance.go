package submodel

import (
	"math"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Finance-model assumptions for sources without a dedicated submodel.
const (
	soeInvestmentMUSD       = 500.0
	mdbBilateralBaseMUSD    = 500.0
	privateCoverageShare    = 0.6
	climateFinanceShare     = 0.1
	commercialLendingShare  = 0.02
	rooftopCostMUSDPerMW    = 1.0
	householdEfficiencyMUSD = 50.0
)

// Finance models annual investment needs and mobilization by source, and
// tracks cumulative mobilized investment across the run.
type Finance struct {
	params         config.FinanceParams
	cumulativeMUSD float64
}

type FinanceResult struct {
	InvestmentNeedsMUSD float64 `json:"total_investment_needs_m_usd"`

	PublicMUSD      float64 `json:"public_m_usd"`
	PrivateMUSD     float64 `json:"private_m_usd"`
	DevelopmentMUSD float64 `json:"development_finance_m_usd"`
	CommercialMUSD  float64 `json:"commercial_m_usd"`
	HouseholdMUSD   float64 `json:"household_m_usd"`

	TotalMobilizedMUSD float64 `json:"total_investment_mobilized_m_usd"`
	FinancingGapMUSD   float64 `json:"financing_gap_m_usd"`
	CumulativeMUSD     float64 `json:"cumulative_investment_m_usd"`
}

func NewFinance(params config.FinanceParams) *Finance {
	return &Finance{params: params}
}

// Simulate sizes the year's investment needs from the expansion pipeline and
// grid requirements, then mobilizes funding by source. pspScore is the
// governance model's private-sector-participation environment score and
// scales private investment.
func (f *Finance) Simulate(year int, pipeline []model.PipelineEntry,
	fin model.FinancialInputs, pspScore float64) FinanceResult {

	expansionMW := model.CapacityInYear(pipeline, year)
	costPerMW := defaultIfZero(f.params.CostPerMWNewMUSD, 1.5)
	needs := expansionMW*costPerMW + defaultIfZero(fin.GridInvestmentMUSD, 1000)

	adpShare := defaultIfZero(f.params.ADPShareEnergy, 0.1)
	public := defaultIfZero(fin.TotalADPBudgetMUSD, 10000)*adpShare + soeInvestmentMUSD

	riskFactor := math.Max(0.1, 1-defaultIfZero(f.params.InvestorRiskPerception, 0.7))
	private := needs * privateCoverageShare * riskFactor * defaultIfZero(pspScore, 0.5)

	accessScore := defaultIfZero(f.params.ClimateFinanceAccessScore, 0.6)
	development := mdbBilateralBaseMUSD + needs*climateFinanceShare*accessScore

	commercial := needs * commercialLendingShare * defaultIfZero(fin.LocalMarketDepthScore, 0.3)

	household := defaultIfZero(fin.RooftopSolarIncreaseMW, 100)*rooftopCostMUSDPerMW +
		householdEfficiencyMUSD

	mobilized := public + private + development + commercial + household
	f.cumulativeMUSD += mobilized

	return FinanceResult{
		InvestmentNeedsMUSD: needs,
		PublicMUSD:          public,
		PrivateMUSD:         private,
		DevelopmentMUSD:     development,
		CommercialMUSD:      commercial,
		HouseholdMUSD:       household,
		TotalMobilizedMUSD:  mobilized,
		FinancingGapMUSD:    math.Max(0, needs-mobilized),
		CumulativeMUSD:      f.cumulativeMUSD,
	}
}
