package config

import "energy-outlook/internal/model"

// Scenario is one named run variant: a label plus the config sections it
// replaces. Overlay is shallow: a section present in Overrides replaces the
// base section wholesale, nested values are not merged.
type Scenario struct {
	Name      string    `yaml:"name"`
	Overrides Overrides `yaml:"config_overrides"`
}

// Overrides mirrors the top-level Config sections as pointers. A nil pointer
// means "keep the base section"; a non-nil pointer replaces it entirely. No
// shape validation is performed on override content; a malformed section
// replaces a well-formed default.
type Overrides struct {
	SimulationYears    *YearRange `yaml:"simulation_years"`
	EconomicGrowthRate *float64   `yaml:"economic_growth_rate"`

	AdaptationInvestmentMUSDPerYear *float64 `yaml:"adaptation_investment_m_usd_per_year"`

	ReformAgenda  map[int]model.ReformAgenda  `yaml:"reform_agenda"`
	PolicySupport map[int]model.PolicySupport `yaml:"policy_support"`

	IndustrialPolicy *model.IndustrialPolicy `yaml:"industrial_policy"`

	Generation  *GenerationParams  `yaml:"generation_params"`
	FuelSupply  *FuelSupplyParams  `yaml:"fuel_supply_params"`
	Grid        *GridParams        `yaml:"grid_params"`
	Demand      *DemandParams      `yaml:"demand_params"`
	Market      *MarketParams      `yaml:"market_params"`
	Governance  *GovernanceParams  `yaml:"governance_params"`
	Renewable   *RenewableParams   `yaml:"renewable_params"`
	Access      *AccessParams      `yaml:"access_params"`
	Climate     *ClimateParams     `yaml:"climate_params"`
	Environment *EnvironmentParams `yaml:"environment_params"`
	Innovation  *InnovationParams  `yaml:"innovation_params"`
	Finance     *FinanceParams     `yaml:"finance_params"`
}

// ScenarioFile is the on-disk shape of a scenario list (YAML).
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}
