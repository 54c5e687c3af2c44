package portfolio

import "strings"

// ReserveMargin is the planning reserve applied on top of projected demand
// when sizing the annual generation target.
const ReserveMargin = 0.10

// Energy content conversions for fuel prices quoted in trade units.
const (
	mmbtuPerTonneCoal = 24.0
	mmbtuPerBblOil    = 5.8
)

// FuelPrices carries the delivered fuel prices for one dispatch year. A zero
// field means "no market signal this year" and falls back to the technology's
// configured fuel cost.
type FuelPrices struct {
	GasUSDMMBtu  float64 `json:"gas_usd_mmbtu,omitempty"`
	CoalUSDTonne float64 `json:"coal_usd_tonne,omitempty"`
	OilUSDBbl    float64 `json:"oil_usd_bbl,omitempty"`
}

// DispatchResult is the outcome of one year's energy-balance allocation.
type DispatchResult struct {
	GenerationGWh        map[string]float64 `json:"generation_by_tech_gwh"`
	TotalGenerationGWh   float64            `json:"total_generation_gwh"`
	TargetGenerationGWh  float64            `json:"target_generation_gwh"`
	UnservedEnergyGWh    float64            `json:"unserved_energy_gwh"`
	CurtailmentGWh       float64            `json:"curtailment_gwh"`
	VariableCostsMWh     map[string]float64 `json:"variable_costs_mwh"`
	TotalVariableCostUSD float64            `json:"total_variable_cost_usd"`
	CapacityMW           map[string]float64 `json:"capacity_mw"`
}

// SimulateDispatch allocates an annual generation target across the fleet.
//
// The target is demand grossed up by the reserve margin, converted to GWh.
// Allocation walks the configured merit order and hands each technology its
// capacity-proportional share of the target, clipped so the running total
// never exceeds it. Technologies with no installed capacity are skipped. Any
// target the fleet cannot cover is reported as unserved energy. This is an
// annual energy balance, not a chronological unit-commitment model, so
// curtailment is always zero here.
func (p *Portfolio) SimulateDispatch(demandTWh float64, prices FuelPrices) DispatchResult {
	res := DispatchResult{
		GenerationGWh:    make(map[string]float64),
		VariableCostsMWh: make(map[string]float64),
		CapacityMW:       p.Capacity(),
	}
	res.TargetGenerationGWh = demandTWh * 1000 * (1 + ReserveMargin)

	totalCap := p.ledger.TotalMW()
	if totalCap <= 0 || res.TargetGenerationGWh <= 0 {
		res.UnservedEnergyGWh = max0(res.TargetGenerationGWh)
		return res
	}

	remaining := res.TargetGenerationGWh
	for _, tech := range p.cfg.DispatchMeritOrder {
		if remaining <= 0 {
			break
		}
		mw, ok := p.ledger[tech]
		if !ok || mw <= 0 {
			continue
		}
		share := mw / totalCap * res.TargetGenerationGWh
		if share > remaining {
			share = remaining
		}
		res.GenerationGWh[tech] = share
		res.TotalGenerationGWh += share
		remaining -= share
	}
	res.UnservedEnergyGWh = max0(res.TargetGenerationGWh - res.TotalGenerationGWh)

	for tech, gwh := range res.GenerationGWh {
		cost := p.variableCostMWh(tech, prices)
		res.VariableCostsMWh[tech] = cost
		res.TotalVariableCostUSD += cost * gwh * 1000
	}
	return res
}

// variableCostMWh is variable O&M plus fuel cost per MWh. Fuel cost is the
// delivered price in the fuel's trade unit converted through the technology's
// heat rate.
func (p *Portfolio) variableCostMWh(tech string, prices FuelPrices) float64 {
	tp, ok := p.cfg.TechnologyParameters[tech]
	if !ok {
		return 0
	}
	cost := tp.VOMCostMWh
	mmbtuPerMWh := tp.HeatRateBtuKWh / 1000

	switch {
	case tp.FuelCostMWh > 0:
		cost += tp.FuelCostMWh
	case tp.FuelCostMMBtu > 0:
		price := tp.FuelCostMMBtu
		if prices.GasUSDMMBtu > 0 && strings.HasPrefix(tech, "gas") {
			price = prices.GasUSDMMBtu
		}
		cost += price * mmbtuPerMWh
	case tp.FuelCostTonne > 0:
		price := tp.FuelCostTonne
		if prices.CoalUSDTonne > 0 {
			price = prices.CoalUSDTonne
		}
		cost += price / mmbtuPerTonneCoal * mmbtuPerMWh
	case tp.FuelCostBbl > 0:
		price := tp.FuelCostBbl
		if prices.OilUSDBbl > 0 {
			price = prices.OilUSDBbl
		}
		cost += price / mmbtuPerBblOil * mmbtuPerMWh
	}
	return cost
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
