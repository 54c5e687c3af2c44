package submodel

import (
	"math"
	"sort"

	"energy-outlook/internal/config"
)

// Market models wholesale and retail price formation, PPA drift, and
// renewable support levels.
type Market struct {
	params    config.MarketParams
	startYear int
}

type MarketResult struct {
	Wholesale WholesaleResult `json:"wholesale_market"`
	Retail    RetailResult    `json:"retail_tariffs"`
	PPA       PPAResult       `json:"ppas"`
	RESupport RESupportResult `json:"re_support"`
}

type WholesaleResult struct {
	PriceMWh float64 `json:"wholesale_price_mwh"`
}

type RetailResult struct {
	AvgTariffMWh float64 `json:"average_retail_tariff_mwh"`
	SubsidyLevel float64 `json:"subsidy_level"`
}

type PPAResult struct {
	AvgPriceMWh float64 `json:"average_ppa_price_mwh"`
}

type RESupportResult struct {
	FiTSolarMWh     float64 `json:"feed_in_tariff_solar_mwh"`
	AuctionSolarMWh float64 `json:"auction_price_solar_mwh"`
}

// Network cost added on top of the wholesale price when building the retail
// tariff, $/MWh.
const networkCostMWh = 20.0

func NewMarket(params config.MarketParams, startYear int) *Market {
	return &Market{params: params, startYear: startYear}
}

// Simulate prices the year. Under single-buyer arrangements the wholesale
// price is mean variable cost plus a 5% administrative markup; any other
// structure clears at the upper-median cost as a stand-in for a merit-order
// market.
func (m *Market) Simulate(year int, variableCostsMWh map[string]float64) MarketResult {
	idx := float64(year - m.startYear)

	structure := m.params.Structure.Type
	if structure == "" {
		structure = "single_buyer"
	}
	var wholesale float64
	if structure == "single_buyer" {
		wholesale = meanOr(variableCostsMWh, 50) * 1.05
	} else {
		wholesale = upperMedianOr(variableCostsMWh, 60)
	}

	subsidy := defaultIfZero(m.params.Tariff.SubsidyLevel, 0.1)
	retail := RetailResult{
		AvgTariffMWh: (wholesale + networkCostMWh) * (1 - subsidy),
		SubsidyLevel: subsidy,
	}

	ppa := PPAResult{
		AvgPriceMWh: defaultIfZero(m.params.PPA.AvgPPAPriceMWh, 60) * math.Pow(0.99, idx),
	}

	fit := defaultIfZero(m.params.RESupport.FiTSolarMWh, 80) * math.Pow(0.95, idx)
	support := RESupportResult{
		FiTSolarMWh:     fit,
		AuctionSolarMWh: fit * 0.8,
	}

	return MarketResult{
		Wholesale: WholesaleResult{PriceMWh: wholesale},
		Retail:    retail,
		PPA:       ppa,
		RESupport: support,
	}
}

func meanOr(costs map[string]float64, fallback float64) float64 {
	if len(costs) == 0 {
		return fallback
	}
	sum := 0.0
	for _, c := range costs {
		sum += c
	}
	return sum / float64(len(costs))
}

func upperMedianOr(costs map[string]float64, fallback float64) float64 {
	if len(costs) == 0 {
		return fallback
	}
	vals := make([]float64, 0, len(costs))
	for _, c := range costs {
		vals = append(vals, c)
	}
	sort.Float64s(vals)
	return vals[len(vals)/2]
}
