package submodel

import (
	"math"

	"energy-outlook/internal/config"
)

// Grid models transmission and distribution evolution. Loss levels and
// capacities carry over from year to year.
type Grid struct {
	params    config.GridParams
	startYear int

	transmissionCapGW float64
	technicalLoss     float64
	nonTechnicalLoss  float64
	importCapacityMW  float64
}

type GridResult struct {
	Transmission    TransmissionResult    `json:"hv_transmission"`
	Distribution    DistributionResult    `json:"distribution"`
	Losses          LossResult            `json:"losses"`
	SmartGrid       SmartGridResult       `json:"smart_grid"`
	Interconnection InterconnectionResult `json:"interconnections"`
}

type TransmissionResult struct {
	CapacityGW      float64 `json:"capacity_gw"`
	CongestionHours float64 `json:"congestion_hours"`
	AvgLoading      float64 `json:"avg_loading"`
}

type DistributionResult struct {
	OverloadedFeedersPct float64 `json:"overloaded_feeders_pct"`
	SAIDIHours           float64 `json:"saidi_hours"`
}

type LossResult struct {
	TechnicalPct    float64 `json:"technical_losses_pct"`
	NonTechnicalPct float64 `json:"non_technical_losses_pct"`
	TotalPct        float64 `json:"total_losses_pct"`
	LostEnergyGWh   float64 `json:"lost_energy_gwh"`
}

type SmartGridResult struct {
	MeterPenetration float64 `json:"smart_meter_penetration"`
	AutomationLevel  float64 `json:"automation_level"`
}

type InterconnectionResult struct {
	ImportCapacityMW float64 `json:"import_capacity_mw"`
	ExportCapacityMW float64 `json:"export_capacity_mw"`
}

func NewGrid(params config.GridParams, startYear int) *Grid {
	return &Grid{
		params:            params,
		startYear:         startYear,
		transmissionCapGW: defaultIfZero(params.Transmission.BaseCapacityGW, 50),
		technicalLoss:     defaultIfZero(params.Losses.BaseTechnicalLoss, 0.08),
		nonTechnicalLoss:  defaultIfZero(params.Losses.BaseNonTechnicalLoss, 0.04),
		importCapacityMW:  defaultIfZero(params.Interconnection.BaseImportCapacityMW, 1000),
	}
}

// Simulate advances the grid one year: smart-grid rollout first, since
// non-technical loss reduction keys off metering penetration, then capacity
// expansion and the loss estimate against the year's total generation.
func (g *Grid) Simulate(year int, totalGenerationGWh float64) GridResult {
	idx := float64(year - g.startYear)

	penTarget := defaultIfZero(g.params.SmartGrid.TargetPenetration, 1.0)
	rollout := defaultIfZero(g.params.SmartGrid.RolloutSpeedPctYr, 0.05)
	smart := SmartGridResult{
		MeterPenetration: math.Min(penTarget, 0.1+rollout*idx),
		AutomationLevel:  math.Min(1.0, 0.05+0.03*idx),
	}

	g.transmissionCapGW *= 1 + defaultIfZero(g.params.Transmission.ExpansionRate, 0.05)
	transmission := TransmissionResult{
		CapacityGW:      g.transmissionCapGW,
		CongestionHours: 100,
		AvgLoading:      0.6,
	}

	distribution := DistributionResult{
		OverloadedFeedersPct: defaultIfZero(g.params.Distribution.FeederOverloadBasePct, 0.05),
		SAIDIHours:           defaultIfZero(g.params.Distribution.SAIDIBaseHours, 10),
	}

	g.importCapacityMW += defaultIfZero(g.params.Interconnection.PlannedIncreaseMWYr, 100)
	interconnection := InterconnectionResult{
		ImportCapacityMW: g.importCapacityMW,
		ExportCapacityMW: 200,
	}

	g.technicalLoss *= 0.99
	g.nonTechnicalLoss *= 1 - smart.MeterPenetration*0.1
	total := g.technicalLoss + g.nonTechnicalLoss
	losses := LossResult{
		TechnicalPct:    g.technicalLoss,
		NonTechnicalPct: g.nonTechnicalLoss,
		TotalPct:        total,
		LostEnergyGWh:   totalGenerationGWh * total,
	}

	return GridResult{
		Transmission:    transmission,
		Distribution:    distribution,
		Losses:          losses,
		SmartGrid:       smart,
		Interconnection: interconnection,
	}
}
