package scenario

import "energy-outlook/internal/config"

// Resolve overlays a scenario's overrides on a base config and returns the
// effective config for that run. The overlay is shallow: each override section
// present replaces the corresponding base section wholesale, nested values are
// never merged. Resolving with empty overrides yields a copy equal to the
// base, and resolving twice with the same inputs yields the same output.
//
// The returned config shares map and slice backing with the base and the
// overrides. Resolved configs are treated as read-only for the rest of the
// run, so that sharing is safe.
func Resolve(base *config.Config, sc config.Scenario) *config.Config {
	out := *base
	o := sc.Overrides

	if o.SimulationYears != nil {
		out.SimulationYears = *o.SimulationYears
	}
	if o.EconomicGrowthRate != nil {
		out.EconomicGrowthRate = *o.EconomicGrowthRate
	}
	if o.AdaptationInvestmentMUSDPerYear != nil {
		out.AdaptationInvestmentMUSDPerYear = *o.AdaptationInvestmentMUSDPerYear
	}
	if o.ReformAgenda != nil {
		out.ReformAgenda = o.ReformAgenda
	}
	if o.PolicySupport != nil {
		out.PolicySupport = o.PolicySupport
	}
	if o.IndustrialPolicy != nil {
		out.IndustrialPolicy = *o.IndustrialPolicy
	}
	if o.Generation != nil {
		out.Generation = *o.Generation
	}
	if o.FuelSupply != nil {
		out.FuelSupply = *o.FuelSupply
	}
	if o.Grid != nil {
		out.Grid = *o.Grid
	}
	if o.Demand != nil {
		out.Demand = *o.Demand
	}
	if o.Market != nil {
		out.Market = *o.Market
	}
	if o.Governance != nil {
		out.Governance = *o.Governance
	}
	if o.Renewable != nil {
		out.Renewable = *o.Renewable
	}
	if o.Access != nil {
		out.Access = *o.Access
	}
	if o.Climate != nil {
		out.Climate = *o.Climate
	}
	if o.Environment != nil {
		out.Environment = *o.Environment
	}
	if o.Innovation != nil {
		out.Innovation = *o.Innovation
	}
	if o.Finance != nil {
		out.Finance = *o.Finance
	}
	return &out
}
