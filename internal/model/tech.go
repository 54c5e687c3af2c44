package model

// TechnologyParams defines the static cost and technical attributes of one
// generation technology.
// Units:
// - Efficiency: 0..1 (thermal)
// - VOMCostMWh: $/MWh variable O&M
// - FuelCostMMBtu / FuelCostTonne / FuelCostBbl / FuelCostMWh: fuel price in the
//   technology's native unit; at most one is meaningful per technology
// - HeatRateBtuKWh: Btu/kWh
// - RampRateMWMin: MW/min
// - MinLoad: fraction 0..1
// - Emission factors: tonnes per MWh generated
type TechnologyParams struct {
	Efficiency     float64 `yaml:"efficiency" json:"efficiency,omitempty"`
	VOMCostMWh     float64 `yaml:"vom_cost" json:"vom_cost,omitempty"`
	FuelCostMMBtu  float64 `yaml:"fuel_cost_mmbtu" json:"fuel_cost_mmbtu,omitempty"`
	FuelCostTonne  float64 `yaml:"fuel_cost_tonne" json:"fuel_cost_tonne,omitempty"`
	FuelCostBbl    float64 `yaml:"fuel_cost_bbl" json:"fuel_cost_bbl,omitempty"`
	FuelCostMWh    float64 `yaml:"fuel_cost_mwh" json:"fuel_cost_mwh,omitempty"`
	HeatRateBtuKWh float64 `yaml:"heat_rate_btu_kwh" json:"heat_rate_btu_kwh,omitempty"`
	RampRateMWMin  float64 `yaml:"ramp_rate_mw_min" json:"ramp_rate_mw_min,omitempty"`
	MinLoad        float64 `yaml:"min_load" json:"min_load,omitempty"`

	CO2FactorTMWh  float64 `yaml:"co2_factor_t_mwh" json:"co2_factor_t_mwh,omitempty"`
	SOxFactorTMWh  float64 `yaml:"sox_factor_t_mwh" json:"sox_factor_t_mwh,omitempty"`
	NOxFactorTMWh  float64 `yaml:"nox_factor_t_mwh" json:"nox_factor_t_mwh,omitempty"`
	PM25FactorTMWh float64 `yaml:"pm25_factor_t_mwh" json:"pm25_factor_t_mwh,omitempty"`
	CoalAshTMWh    float64 `yaml:"coal_ash_t_per_mwh" json:"coal_ash_t_per_mwh,omitempty"`
}
