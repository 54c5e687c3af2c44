package config

import (
	"errors"
	"fmt"

	"energy-outlook/internal/model"
)

// Config is the on-disk simulation configuration shape (YAML). One section per
// sector submodel plus the global simulation keys.
type Config struct {
	SimulationYears    YearRange `yaml:"simulation_years"`
	EconomicGrowthRate float64   `yaml:"economic_growth_rate"`

	AdaptationInvestmentMUSDPerYear float64 `yaml:"adaptation_investment_m_usd_per_year"`

	// Year-keyed policy levers. Years with no entry get the zero value.
	ReformAgenda  map[int]model.ReformAgenda  `yaml:"reform_agenda"`
	PolicySupport map[int]model.PolicySupport `yaml:"policy_support"`

	IndustrialPolicy model.IndustrialPolicy `yaml:"industrial_policy"`

	Generation  GenerationParams  `yaml:"generation_params"`
	FuelSupply  FuelSupplyParams  `yaml:"fuel_supply_params"`
	Grid        GridParams        `yaml:"grid_params"`
	Demand      DemandParams      `yaml:"demand_params"`
	Market      MarketParams      `yaml:"market_params"`
	Governance  GovernanceParams  `yaml:"governance_params"`
	Renewable   RenewableParams   `yaml:"renewable_params"`
	Access      AccessParams      `yaml:"access_params"`
	Climate     ClimateParams     `yaml:"climate_params"`
	Environment EnvironmentParams `yaml:"environment_params"`
	Innovation  InnovationParams  `yaml:"innovation_params"`
	Finance     FinanceParams     `yaml:"finance_params"`
}

// YearRange is the inclusive simulation window.
type YearRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// GenerationParams configure the generation portfolio: the base-year fleet,
// per-technology attributes, scheduled expansions/retirements, and the
// dispatch merit order.
type GenerationParams struct {
	BaseYearCapacityMW     map[string]float64                `yaml:"base_year_capacity"`
	TechnologyParameters   map[string]model.TechnologyParams `yaml:"technology_parameters"`
	ExpansionPipeline      []model.PipelineEntry             `yaml:"expansion_pipeline"`
	RetirementSchedule     []model.PipelineEntry             `yaml:"retirement_schedule"`
	DispatchMeritOrder     []string                          `yaml:"dispatch_merit_order"`
	OperationalConstraints OperationalConstraints            `yaml:"operational_constraints"`
}

// OperationalConstraints are system-wide dispatch constraints.
type OperationalConstraints struct {
	MinGasTakePct      float64 `yaml:"min_gas_take_pct"`
	MaxCoalUtilization float64 `yaml:"max_coal_utilization_pct"`
}

type FuelSupplyParams struct {
	DomesticGas       DomesticGasParams       `yaml:"domestic_gas_params"`
	LNG               LNGParams               `yaml:"lng_params"`
	Coal              CoalSupplyParams        `yaml:"coal_params"`
	RenewableResource RenewableResourceParams `yaml:"renewable_resource_params"`
}

type DomesticGasParams struct {
	InitialProductionBCFYr float64 `yaml:"initial_prod_bcf_yr"`
	DeclineRate            float64 `yaml:"decline_rate"`
}

type LNGParams struct {
	TerminalCapacityMTPA  float64 `yaml:"terminal_capacity_mtpa"`
	ContractPriceUSDMMBtu float64 `yaml:"contract_price_usd_mmbtu"`
	SpotShare             float64 `yaml:"spot_share"`
}

type CoalSupplyParams struct {
	ImportDependency     float64 `yaml:"import_dependency"`
	LogisticsCostUSDTonn float64 `yaml:"logistics_cost_usd_tonne"`
}

type RenewableResourceParams struct {
	AvgSolarCF       float64 `yaml:"avg_solar_cf"`
	AvgWindCFCoastal float64 `yaml:"avg_wind_cf_coastal"`
}

type GridParams struct {
	Transmission    TransmissionParams    `yaml:"transmission_params"`
	Distribution    DistributionParams    `yaml:"distribution_params"`
	Losses          LossParams            `yaml:"loss_params"`
	SmartGrid       SmartGridParams       `yaml:"smart_grid_params"`
	Interconnection InterconnectionParams `yaml:"interconnection_params"`
}

type TransmissionParams struct {
	BaseCapacityGW float64 `yaml:"base_capacity_gw"`
	ExpansionRate  float64 `yaml:"expansion_rate"`
}

type DistributionParams struct {
	FeederOverloadBasePct float64 `yaml:"feeder_overload_base_pct"`
	SAIDIBaseHours        float64 `yaml:"saidi_base_hours"`
}

type LossParams struct {
	BaseTechnicalLoss    float64 `yaml:"base_technical_loss"`
	BaseNonTechnicalLoss float64 `yaml:"base_non_technical_loss"`
}

type SmartGridParams struct {
	TargetPenetration float64 `yaml:"target_penetration"`
	RolloutSpeedPctYr float64 `yaml:"rollout_speed_pct_yr"`
}

type InterconnectionParams struct {
	BaseImportCapacityMW float64 `yaml:"base_import_capacity_mw"`
	PlannedIncreaseMWYr  float64 `yaml:"planned_increase_mw_yr"`
}

type DemandParams struct {
	BaseDemandTWh    map[string]float64 `yaml:"base_demand_twh"`
	ElasticityParams ElasticityParams   `yaml:"elasticity_params"`
}

type ElasticityParams struct {
	IncomeElasticityResidential float64 `yaml:"income_elasticity_residential"`
	GDPElasticityIndustrial     float64 `yaml:"gdp_elasticity_industrial"`
	GDPElasticityCommercial     float64 `yaml:"gdp_elasticity_commercial"`
}

type MarketParams struct {
	Structure MarketStructureParams `yaml:"market_structure_params"`
	Tariff    TariffParams          `yaml:"tariff_params"`
	PPA       PPAParams             `yaml:"ppa_params"`
	RESupport RESupportParams       `yaml:"re_support_params"`
}

type MarketStructureParams struct {
	Type string `yaml:"type"`
}

type TariffParams struct {
	AvgRetailMarkup float64 `yaml:"avg_retail_markup"`
	SubsidyLevel    float64 `yaml:"subsidy_level"`
}

type PPAParams struct {
	AvgPPAPriceMWh float64 `yaml:"avg_ppa_price"`
}

type RESupportParams struct {
	FiTSolarMWh            float64 `yaml:"fit_solar"`
	AuctionTargetSolarMWYr float64 `yaml:"auction_target_solar_mw_yr"`
	AuctionTargetWindMWYr  float64 `yaml:"auction_target_wind_mw_yr"`
}

type GovernanceParams struct {
	UnbundlingLevel string           `yaml:"unbundling_level"`
	Regulatory      RegulatoryParams `yaml:"regulatory_params"`
	Planning        PlanningParams   `yaml:"planning_params"`
	PPPFramework    PPPParams        `yaml:"ppp_framework"`
}

type RegulatoryParams struct {
	CapacityScore     float64 `yaml:"capacity_score"`
	IndependenceScore float64 `yaml:"independence_score"`
}

type PlanningParams struct {
	IRPAdopted     bool    `yaml:"irp_adopted"`
	AdherenceScore float64 `yaml:"adherence_score"`
}

type PPPParams struct {
	ClarityScore float64 `yaml:"clarity_score"`
}

type RenewableParams struct {
	Solar         RETechParams        `yaml:"solar_params"`
	Wind          RETechParams        `yaml:"wind_params"`
	Integration   IntegrationParams   `yaml:"integration_params"`
	LearningCurve LearningCurveParams `yaml:"learning_curves"`
	BaseSolarMW   float64             `yaml:"base_solar_mw"`
	BaseWindMW    float64             `yaml:"base_wind_mw"`
}

type RETechParams struct {
	BaseCostMWh float64 `yaml:"base_cost_mwh"`
	PotentialGW float64 `yaml:"potential_gw"`
}

type IntegrationParams struct {
	MaxVREPenetration      float64 `yaml:"max_vre_penetration"`
	CurtailmentStartThresh float64 `yaml:"curtailment_start_thresh"`
}

type LearningCurveParams struct {
	SolarLearningRate float64 `yaml:"solar_lr"`
	WindLearningRate  float64 `yaml:"wind_lr"`
}

type AccessParams struct {
	BaselineAccessRates AccessRates         `yaml:"baseline_access_rates"`
	RuralTargetAccess   float64             `yaml:"rural_target_access"`
	Affordability       AffordabilityParams `yaml:"affordability_params"`
	EquityPrograms      EquityPrograms      `yaml:"equity_programs"`
}

type AccessRates struct {
	National float64 `yaml:"national" json:"national"`
	Urban    float64 `yaml:"urban" json:"urban"`
	Rural    float64 `yaml:"rural" json:"rural"`
}

type AffordabilityParams struct {
	MaxEnergyBurdenPct float64 `yaml:"max_energy_burden_pct"`
}

type EquityPrograms struct {
	Gender         GenderProgram         `yaml:"gender"`
	JustTransition JustTransitionProgram `yaml:"just_transition"`
}

type GenderProgram struct {
	SupportLevel float64 `yaml:"support_level"`
}

type JustTransitionProgram struct {
	ReskillingEffectiveness float64 `yaml:"reskilling_effectiveness"`
}

type ClimateParams struct {
	RCP                     string  `yaml:"rcp"`
	CycloneFrequency        float64 `yaml:"cyclone_frequency"`
	InvestmentEffectiveness float64 `yaml:"investment_effectiveness"`
	BaselineResilience      float64 `yaml:"baseline_resilience"`
}

type EnvironmentParams struct {
	// Per-technology factors keyed by technology identifier. Emission factors
	// come from TechnologyParams; these cover water, land, and waste.
	WaterFactors   map[string]WaterFactors `yaml:"water_factors"`
	LandUseFactors map[string]LandFactors  `yaml:"land_use_factors"`
	Mitigation     MitigationParams        `yaml:"mitigation_params"`
}

type WaterFactors struct {
	WithdrawalM3MWh  float64 `yaml:"withdrawal_m3_per_mwh"`
	ConsumptionM3MWh float64 `yaml:"consumption_m3_per_mwh"`
}

type LandFactors struct {
	SqKmPerMW float64 `yaml:"sqkm_per_mw"`
}

type MitigationParams struct {
	CCSCaptureRate float64 `yaml:"ccs_capture_rate"`
}

type InnovationParams struct {
	BaselineScores     InnovationScores `yaml:"baseline_innovation_scores"`
	LocalContentTarget float64          `yaml:"local_content_target"`
}

type InnovationScores struct {
	Adaptation     float64 `yaml:"adaptation"`
	LocalMfgShare  float64 `yaml:"local_mfg_share"`
	BusinessModel  float64 `yaml:"biz_model"`
	Digitalization float64 `yaml:"digital"`
}

type FinanceParams struct {
	CostPerMWNewMUSD          float64 `yaml:"cost_per_mw_new"`
	ADPShareEnergy            float64 `yaml:"adp_share_energy"`
	InvestorRiskPerception    float64 `yaml:"investor_risk_perception"`
	ClimateFinanceAccessScore float64 `yaml:"climate_finance_access_score"`
}

// Validate checks the global keys and the generation section, the parts the
// orchestrator cannot run without. Submodel sections fall back to internal
// defaults, so they are deliberately not validated here.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.SimulationYears.Start == 0 || c.SimulationYears.End == 0 {
		return errors.New("simulation_years start and end are required")
	}
	if c.SimulationYears.End < c.SimulationYears.Start {
		return fmt.Errorf("simulation_years end %d precedes start %d",
			c.SimulationYears.End, c.SimulationYears.Start)
	}
	if len(c.Generation.DispatchMeritOrder) == 0 {
		return errors.New("generation_params.dispatch_merit_order is required")
	}
	for tech, mw := range c.Generation.BaseYearCapacityMW {
		if mw < 0 {
			return fmt.Errorf("generation_params.base_year_capacity[%s] is negative", tech)
		}
	}
	for _, e := range c.Generation.ExpansionPipeline {
		if e.CapacityMW < 0 {
			return fmt.Errorf("expansion_pipeline entry %s/%d has negative capacity", e.Technology, e.Year)
		}
	}
	for _, e := range c.Generation.RetirementSchedule {
		if e.CapacityMW < 0 {
			return fmt.Errorf("retirement_schedule entry %s/%d has negative capacity", e.Technology, e.Year)
		}
	}
	return nil
}
