package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, defaults, and validates a simulation config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse unmarshals, defaults, and validates an in-memory YAML config. The API
// uses it for inline configs; Load wraps it for files.
func Parse(raw []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadUnchecked loads a config without defaulting or validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// LoadScenarios reads a scenario list file.
func LoadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scenarios, err := ParseScenarios(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// ParseScenarios unmarshals an in-memory YAML scenario list. Scenario names
// must be unique and non-empty; override content is not validated.
func ParseScenarios(raw []byte) ([]Scenario, error) {
	var f ScenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(f.Scenarios))
	for _, s := range f.Scenarios {
		if s.Name == "" {
			return nil, errors.New("scenario with empty name")
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate scenario %q", s.Name)
		}
		seen[s.Name] = true
	}
	return f.Scenarios, nil
}

// ApplyDefaults fills the gaps a concise config file leaves open. Only values
// whose zero value would be nonsensical are defaulted; zero-meaningful values
// (subsidy level, learning rates) are left alone.
func (c *Config) ApplyDefaults() {
	if c.EconomicGrowthRate == 0 {
		c.EconomicGrowthRate = 0.06
	}
	if c.AdaptationInvestmentMUSDPerYear == 0 {
		c.AdaptationInvestmentMUSDPerYear = 50
	}
	if c.Market.Structure.Type == "" {
		c.Market.Structure.Type = "single_buyer"
	}
	if c.Market.Tariff.AvgRetailMarkup == 0 {
		c.Market.Tariff.AvgRetailMarkup = 1.2
	}
	if c.Market.PPA.AvgPPAPriceMWh == 0 {
		c.Market.PPA.AvgPPAPriceMWh = 60
	}
	if c.Market.RESupport.FiTSolarMWh == 0 {
		c.Market.RESupport.FiTSolarMWh = 80
	}
	if c.Climate.RCP == "" {
		c.Climate.RCP = "rcp45"
	}
	if c.Climate.CycloneFrequency == 0 {
		c.Climate.CycloneFrequency = 0.5
	}
	if c.Climate.InvestmentEffectiveness == 0 {
		c.Climate.InvestmentEffectiveness = 0.1
	}
	if c.Climate.BaselineResilience == 0 {
		c.Climate.BaselineResilience = 0.4
	}
	if c.Finance.CostPerMWNewMUSD == 0 {
		c.Finance.CostPerMWNewMUSD = 1.5
	}
	if c.Finance.ADPShareEnergy == 0 {
		c.Finance.ADPShareEnergy = 0.1
	}
	if c.Finance.InvestorRiskPerception == 0 {
		c.Finance.InvestorRiskPerception = 0.7
	}
	if c.Finance.ClimateFinanceAccessScore == 0 {
		c.Finance.ClimateFinanceAccessScore = 0.6
	}
	if c.Governance.UnbundlingLevel == "" {
		c.Governance.UnbundlingLevel = "partial"
	}
	if c.Governance.Regulatory.CapacityScore == 0 {
		c.Governance.Regulatory.CapacityScore = 0.5
	}
	if c.Governance.PPPFramework.ClarityScore == 0 {
		c.Governance.PPPFramework.ClarityScore = 0.6
	}
	if c.Renewable.Solar.BaseCostMWh == 0 {
		c.Renewable.Solar.BaseCostMWh = 70
	}
	if c.Renewable.Wind.BaseCostMWh == 0 {
		c.Renewable.Wind.BaseCostMWh = 80
	}
	if c.Renewable.Integration.MaxVREPenetration == 0 {
		c.Renewable.Integration.MaxVREPenetration = 0.5
	}
	if c.Renewable.LearningCurve.SolarLearningRate == 0 {
		c.Renewable.LearningCurve.SolarLearningRate = 0.15
	}
	if c.Renewable.LearningCurve.WindLearningRate == 0 {
		c.Renewable.LearningCurve.WindLearningRate = 0.1
	}
	if c.Access.BaselineAccessRates.National == 0 {
		c.Access.BaselineAccessRates.National = 0.95
	}
	if c.Access.BaselineAccessRates.Urban == 0 {
		c.Access.BaselineAccessRates.Urban = 0.99
	}
	if c.Access.BaselineAccessRates.Rural == 0 {
		c.Access.BaselineAccessRates.Rural = 0.90
	}
	if c.Access.RuralTargetAccess == 0 {
		c.Access.RuralTargetAccess = 1.0
	}
	if c.Grid.Transmission.BaseCapacityGW == 0 {
		c.Grid.Transmission.BaseCapacityGW = 50
	}
	if c.Grid.Losses.BaseTechnicalLoss == 0 {
		c.Grid.Losses.BaseTechnicalLoss = 0.08
	}
	if c.Grid.Losses.BaseNonTechnicalLoss == 0 {
		c.Grid.Losses.BaseNonTechnicalLoss = 0.04
	}
	if c.Grid.SmartGrid.TargetPenetration == 0 {
		c.Grid.SmartGrid.TargetPenetration = 1.0
	}
	if c.Grid.SmartGrid.RolloutSpeedPctYr == 0 {
		c.Grid.SmartGrid.RolloutSpeedPctYr = 0.05
	}
	if c.Grid.Interconnection.BaseImportCapacityMW == 0 {
		c.Grid.Interconnection.BaseImportCapacityMW = 1000
	}
	if c.Grid.Interconnection.PlannedIncreaseMWYr == 0 {
		c.Grid.Interconnection.PlannedIncreaseMWYr = 100
	}
	if c.Innovation.BaselineScores.Adaptation == 0 {
		c.Innovation.BaselineScores.Adaptation = 0.4
	}
	if c.Innovation.BaselineScores.LocalMfgShare == 0 {
		c.Innovation.BaselineScores.LocalMfgShare = 0.05
	}
	if c.Innovation.BaselineScores.BusinessModel == 0 {
		c.Innovation.BaselineScores.BusinessModel = 0.3
	}
	if c.Innovation.BaselineScores.Digitalization == 0 {
		c.Innovation.BaselineScores.Digitalization = 0.2
	}
	if c.Innovation.LocalContentTarget == 0 {
		c.Innovation.LocalContentTarget = 0.1
	}
	if c.Environment.Mitigation.CCSCaptureRate == 0 {
		c.Environment.Mitigation.CCSCaptureRate = 0.9
	}
}
