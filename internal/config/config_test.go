package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTemp(t, "outlook.yaml", `
simulation_years:
  start: 2025
  end: 2030
generation_params:
  base_year_capacity:
    gas_cc: 1000
  dispatch_merit_order: [gas_cc]
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 2025, cfg.SimulationYears.Start)
	assert.Equal(t, 0.06, cfg.EconomicGrowthRate)
	assert.Equal(t, "single_buyer", cfg.Market.Structure.Type)
	assert.Equal(t, "rcp45", cfg.Climate.RCP)
	assert.Equal(t, 1.5, cfg.Finance.CostPerMWNewMUSD)
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	path := writeTemp(t, "outlook.yaml", `
simulation_years:
  start: 2025
  end: 2030
economic_growth_rate: 0.08
generation_params:
  base_year_capacity:
    coal: 500
  dispatch_merit_order: [coal]
climate_params:
  rcp: rcp85
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 0.08, cfg.EconomicGrowthRate)
	assert.Equal(t, "rcp85", cfg.Climate.RCP)
}

func TestLoadRejectsMissingMeritOrder(t *testing.T) {
	path := writeTemp(t, "outlook.yaml", `
simulation_years:
  start: 2025
  end: 2030
generation_params:
  base_year_capacity:
    gas_cc: 1000
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dispatch_merit_order")
}

func TestLoadRejectsInvertedYears(t *testing.T) {
	path := writeTemp(t, "outlook.yaml", `
simulation_years:
  start: 2030
  end: 2025
generation_params:
  dispatch_merit_order: [gas_cc]
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "precedes")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("simulation_years: ["))

	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestLoadScenarios(t *testing.T) {
	path := writeTemp(t, "scenarios.yaml", `
scenarios:
  - name: base
  - name: ambitious
    config_overrides:
      economic_growth_rate: 0.08
`)

	scenarios, err := LoadScenarios(path)

	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "base", scenarios[0].Name)
	assert.Nil(t, scenarios[0].Overrides.EconomicGrowthRate)
	require.NotNil(t, scenarios[1].Overrides.EconomicGrowthRate)
	assert.Equal(t, 0.08, *scenarios[1].Overrides.EconomicGrowthRate)
}

func TestLoadScenariosRejectsDuplicateNames(t *testing.T) {
	path := writeTemp(t, "scenarios.yaml", `
scenarios:
  - name: twin
  - name: twin
`)

	_, err := LoadScenarios(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "twin")
}

func TestParseScenariosRejectsEmptyName(t *testing.T) {
	_, err := ParseScenarios([]byte("scenarios:\n  - name: \"\"\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty name")
}

func TestBaselineIsValid(t *testing.T) {
	cfg := Baseline()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2025, cfg.SimulationYears.Start)
	assert.Equal(t, 2040, cfg.SimulationYears.End)
	assert.NotEmpty(t, cfg.Generation.DispatchMeritOrder)
	for _, tech := range cfg.Generation.DispatchMeritOrder {
		_, ok := cfg.Generation.TechnologyParameters[tech]
		assert.True(t, ok, "merit order tech %s has no parameters", tech)
	}
}

func TestStockScenarios(t *testing.T) {
	scenarios := StockScenarios()

	require.Len(t, scenarios, 2)
	assert.Equal(t, "baseline", scenarios[0].Name)
	assert.Equal(t, "high_renewables", scenarios[1].Name)
	assert.Zero(t, scenarios[0].Overrides, "baseline must run the config as-is")
	require.NotNil(t, scenarios[1].Overrides.Renewable)
}

func TestValidateRejectsNegativeCapacity(t *testing.T) {
	cfg := Baseline()
	cfg.Generation.BaseYearCapacityMW["gas_cc"] = -1

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gas_cc")
}
