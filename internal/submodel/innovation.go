package submodel

import (
	"math"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Innovation-model assumptions standing in for exogenous investment series.
const (
	rdSpendingShareGDP        = 0.001
	referenceMarketSizeMUSD   = 50000.0
	defaultMarketPullMUSD     = 4000.0
	gridModernizationMUSD     = 100.0
	gridModernizationRefMUSD  = 500.0
	localManufacturingCeiling = 0.5
)

// Innovation models technology adaptation capacity, local manufacturing,
// business-model innovation, and digitalization. All four scores accumulate
// year over year.
type Innovation struct {
	params config.InnovationParams

	adaptation float64
	mfgShare   float64
	bizModel   float64
	digital    float64
}

type InnovationResult struct {
	TechAdaptationScore     float64 `json:"tech_adaptation_score"`
	LocalManufacturingShare float64 `json:"local_manufacturing_share"`
	BusinessModelScore      float64 `json:"business_model_innovation_score"`
	DigitalizationLevel     float64 `json:"digitalization_level"`
	OverallScore            float64 `json:"overall_innovation_score"`
}

func NewInnovation(params config.InnovationParams) *Innovation {
	return &Innovation{
		params:     params,
		adaptation: defaultIfZero(params.BaselineScores.Adaptation, 0.4),
		mfgShare:   defaultIfZero(params.BaselineScores.LocalMfgShare, 0.05),
		bizModel:   defaultIfZero(params.BaselineScores.BusinessModel, 0.3),
		digital:    defaultIfZero(params.BaselineScores.Digitalization, 0.2),
	}
}

// Simulate advances the innovation scores one year. governanceScore comes
// from the governance model's overall score; mobilizedInvestmentMUSD is the
// market-pull signal, with zero read as the reference default.
func (i *Innovation) Simulate(year int, industrial model.IndustrialPolicy,
	support model.PolicySupport, governanceScore, mobilizedInvestmentMUSD float64) InnovationResult {

	improvement := rdSpendingShareGDP*10 + defaultIfZero(governanceScore, 0.5)*0.05
	i.adaptation = math.Min(1.0, i.adaptation+improvement*0.1)

	policyPush := defaultIfZero(i.params.LocalContentTarget, 0.1) *
		defaultIfZero(industrial.Effectiveness, 0.5)
	marketPull := defaultIfZero(mobilizedInvestmentMUSD, defaultMarketPullMUSD) / referenceMarketSizeMUSD
	i.mfgShare = math.Min(localManufacturingCeiling, i.mfgShare+0.02*(policyPush+marketPull))

	investEffect := gridModernizationMUSD / gridModernizationRefMUSD * 0.05
	i.digital = math.Min(1.0, i.digital+investEffect+i.adaptation*0.02)

	policyEffect := 0.0
	if support.EnableNewModels {
		policyEffect = 0.05
	}
	i.bizModel = math.Min(1.0, i.bizModel+policyEffect+i.digital*0.03)

	return InnovationResult{
		TechAdaptationScore:     i.adaptation,
		LocalManufacturingShare: i.mfgShare,
		BusinessModelScore:      i.bizModel,
		DigitalizationLevel:     i.digital,
		OverallScore:            (i.adaptation + i.mfgShare*2 + i.bizModel + i.digital) / 5,
	}
}
