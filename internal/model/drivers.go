package model

// Drivers bundles the exogenous inputs for one simulation year. Every field is
// a deterministic function of the scenario config and the year offset; nothing
// in here depends on prior years' submodel outputs.
type Drivers struct {
	Economic  EconomicGrowthFactors `json:"economic"`
	Policy    PolicyInputs          `json:"policy"`
	Climate   ClimateInputs         `json:"climate"`
	Financial FinancialInputs       `json:"financial"`
	External  ExternalFactors       `json:"external"`
}

// EconomicGrowthFactors are the growth rates demand projection keys off.
type EconomicGrowthFactors struct {
	GDPGrowth           float64 `json:"gdp_growth"`
	IndustrialGDPGrowth float64 `json:"industrial_gdp_growth"`
	ServiceSectorGrowth float64 `json:"service_sector_growth"`
}

// PolicyInputs collect the policy levers active in a year.
type PolicyInputs struct {
	ReformAgenda       ReformAgenda       `json:"reform_agenda"`
	PolicySupport      PolicySupport      `json:"policy_support"`
	IndustrialPolicy   IndustrialPolicy   `json:"industrial_policy"`
	SubsidyLevel       float64            `json:"subsidy_level"`
	MitigationMeasures MitigationMeasures `json:"mitigation_measures"`
}

// ReformAgenda describes the governance reforms pushed in a given year.
type ReformAgenda struct {
	UnbundlingPush          bool    `yaml:"unbundling_push" json:"unbundling_push,omitempty"`
	RegulatoryStrengthening float64 `yaml:"regulatory_strengthening" json:"regulatory_strengthening,omitempty"`
	AdoptIRP                bool    `yaml:"adopt_irp" json:"adopt_irp,omitempty"`
	ImprovePPPRules         bool    `yaml:"improve_ppp_rules" json:"improve_ppp_rules,omitempty"`
}

// PolicySupport describes renewable deployment support active in a year.
type PolicySupport struct {
	SolarTargetMW   float64 `yaml:"solar_target_mw" json:"solar_target_mw,omitempty"`
	WindTargetMW    float64 `yaml:"wind_target_mw" json:"wind_target_mw,omitempty"`
	EnableNewModels bool    `yaml:"enable_new_models" json:"enable_new_models,omitempty"`
}

// IndustrialPolicy describes local-manufacturing policy strength.
type IndustrialPolicy struct {
	Effectiveness float64 `yaml:"effectiveness" json:"effectiveness,omitempty"`
}

// MitigationMeasures flags deployed emissions-mitigation technology.
type MitigationMeasures struct {
	CCSOnCoal bool `yaml:"ccs_on_coal" json:"ccs_on_coal,omitempty"`
}

// ClimateInputs carry the hazard and adaptation assumptions for a year.
type ClimateInputs struct {
	CycloneFrequency         float64 `json:"cyclone_frequency"`
	AdaptationInvestmentMUSD float64 `json:"adaptation_investment_m_usd"`
}

// FinancialInputs carry the fiscal and household-finance assumptions for a
// year.
type FinancialInputs struct {
	TotalADPBudgetMUSD     float64 `json:"total_adp_budget_m_usd"`
	GridInvestmentMUSD     float64 `json:"grid_investment_m_usd"`
	LocalMarketDepthScore  float64 `json:"local_market_depth_score"`
	RooftopSolarIncreaseMW float64 `json:"rooftop_solar_increase_mw"`
}

// ExternalFactors are the system-external conditions for a year.
type ExternalFactors struct {
	InvestorConfidence    float64           `json:"investor_confidence"`
	DataAvailabilityScore float64           `json:"data_availability_score"`
	GlobalMarkets         GlobalMarkets     `json:"global_markets"`
	ClimateConditions     ClimateConditions `json:"climate_conditions"`
}

// GlobalMarkets are multiplicative price factors on world fuel markets.
type GlobalMarkets struct {
	GasPriceFactor  float64 `yaml:"global_gas_price_factor" json:"global_gas_price_factor"`
	LNGSpotFactor   float64 `yaml:"global_lng_spot_factor" json:"global_lng_spot_factor"`
	CoalPriceFactor float64 `yaml:"global_coal_price_factor" json:"global_coal_price_factor"`
	OilPriceFactor  float64 `yaml:"global_oil_price_factor" json:"global_oil_price_factor"`
}

// ClimateConditions are resource-availability factors for renewables.
type ClimateConditions struct {
	SolarIrradianceFactor float64 `yaml:"solar_irradiance_factor" json:"solar_irradiance_factor"`
	WindSpeedFactor       float64 `yaml:"wind_speed_factor" json:"wind_speed_factor"`
}
