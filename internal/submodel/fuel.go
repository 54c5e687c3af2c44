package submodel

import (
	"math"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// FuelSupply models fuel availability and pricing: the domestic gas decline
// curve, the LNG contract/spot blend, delivered coal, liquid fuels, and the
// climate-scaled renewable resource.
type FuelSupply struct {
	params    config.FuelSupplyParams
	startYear int
}

type FuelResult struct {
	DomesticGas DomesticGasResult       `json:"domestic_gas"`
	LNG         LNGResult               `json:"lng"`
	Coal        CoalResult              `json:"coal"`
	Liquid      LiquidResult            `json:"liquid"`
	Renewables  RenewableResourceResult `json:"renewable_resources"`
}

type DomesticGasResult struct {
	ProductionBCF float64 `json:"production_bcf"`
	PriceUSDMMBtu float64 `json:"price_usd_mmbtu"`
}

type LNGResult struct {
	AvgPriceUSDMMBtu float64 `json:"avg_price_usd_mmbtu"`
	Availability     float64 `json:"availability"`
	CapacityMTPA     float64 `json:"capacity_mtpa"`
}

type CoalResult struct {
	DeliveredPriceUSDTonne float64 `json:"delivered_price_usd_tonne"`
	Reliability            float64 `json:"reliability"`
}

type LiquidResult struct {
	HFOPriceUSDBbl    float64 `json:"hfo_price_usd_bbl"`
	DieselPriceUSDBbl float64 `json:"diesel_price_usd_bbl"`
	Availability      float64 `json:"availability"`
}

type RenewableResourceResult struct {
	SolarCapacityFactor float64 `json:"avg_solar_capacity_factor"`
	WindCapacityFactor  float64 `json:"avg_wind_capacity_factor"`
}

func NewFuelSupply(params config.FuelSupplyParams, startYear int) *FuelSupply {
	return &FuelSupply{params: params, startYear: startYear}
}

// Simulate computes the year's fuel conditions. Global market factors left at
// zero mean no signal and are read as 1.0.
func (f *FuelSupply) Simulate(year int, markets model.GlobalMarkets, climate model.ClimateConditions) FuelResult {
	idx := float64(year - f.startYear)

	initialProd := defaultIfZero(f.params.DomesticGas.InitialProductionBCFYr, 500)
	decline := defaultIfZero(f.params.DomesticGas.DeclineRate, 0.02)
	gas := DomesticGasResult{
		ProductionBCF: initialProd * math.Pow(1-decline, idx),
		PriceUSDMMBtu: 4.0 + factorOr1(markets.GasPriceFactor),
	}

	spotShare := defaultIfZero(f.params.LNG.SpotShare, 0.3)
	contractPrice := defaultIfZero(f.params.LNG.ContractPriceUSDMMBtu, 8.0)
	spotPrice := 10.0 * factorOr1(markets.LNGSpotFactor)
	lng := LNGResult{
		AvgPriceUSDMMBtu: (1-spotShare)*contractPrice + spotShare*spotPrice,
		Availability:     0.95,
		CapacityMTPA:     defaultIfZero(f.params.LNG.TerminalCapacityMTPA, 10),
	}

	coal := CoalResult{
		DeliveredPriceUSDTonne: 100*factorOr1(markets.CoalPriceFactor) +
			defaultIfZero(f.params.Coal.LogisticsCostUSDTonn, 20),
		Reliability: 0.98,
	}

	hfo := 70 * factorOr1(markets.OilPriceFactor)
	liquid := LiquidResult{
		HFOPriceUSDBbl:    hfo,
		DieselPriceUSDBbl: hfo + 10,
		Availability:      0.99,
	}

	renew := RenewableResourceResult{
		SolarCapacityFactor: defaultIfZero(f.params.RenewableResource.AvgSolarCF, 0.18) *
			factorOr1(climate.SolarIrradianceFactor),
		WindCapacityFactor: defaultIfZero(f.params.RenewableResource.AvgWindCFCoastal, 0.25) *
			factorOr1(climate.WindSpeedFactor),
	}

	return FuelResult{DomesticGas: gas, LNG: lng, Coal: coal, Liquid: liquid, Renewables: renew}
}

func factorOr1(v float64) float64 {
	if v == 0 {
		return 1.0
	}
	return v
}
