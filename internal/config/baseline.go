package config

import "energy-outlook/internal/model"

// Baseline returns the built-in reference configuration: a plausible national
// system circa 2025 with a gas-heavy fleet, a nuclear/solar/coal expansion
// pipeline, and single-buyer market arrangements. It is used by cmd/demo, by
// API requests that do not carry an inline config, and by tests.
func Baseline() *Config {
	c := &Config{
		SimulationYears:    YearRange{Start: 2025, End: 2040},
		EconomicGrowthRate: 0.065,

		AdaptationInvestmentMUSDPerYear: 75,

		Generation: GenerationParams{
			BaseYearCapacityMW: map[string]float64{
				"gas_cc":     8000,
				"gas_oc":     3000,
				"coal":       6000,
				"liquid":     2000,
				"hydro":      230,
				"solar_util": 800,
				"wind":       150,
			},
			TechnologyParameters: map[string]model.TechnologyParams{
				"gas_cc": {
					Efficiency: 0.52, VOMCostMWh: 3, FuelCostMMBtu: 6,
					HeatRateBtuKWh: 6560, RampRateMWMin: 15, MinLoad: 0.4,
					CO2FactorTMWh: 0.38, SOxFactorTMWh: 0.0001, NOxFactorTMWh: 0.0002,
					PM25FactorTMWh: 0.00005,
				},
				"gas_oc": {
					Efficiency: 0.38, VOMCostMWh: 5, FuelCostMMBtu: 6.5,
					HeatRateBtuKWh: 8980, RampRateMWMin: 25, MinLoad: 0.5,
					CO2FactorTMWh: 0.42, SOxFactorTMWh: 0.0001, NOxFactorTMWh: 0.0003,
					PM25FactorTMWh: 0.00006,
				},
				"coal": {
					Efficiency: 0.39, VOMCostMWh: 4, FuelCostTonne: 120,
					HeatRateBtuKWh: 8750, RampRateMWMin: 5, MinLoad: 0.5,
					CO2FactorTMWh: 0.95, SOxFactorTMWh: 0.0015, NOxFactorTMWh: 0.0010,
					PM25FactorTMWh: 0.0005, CoalAshTMWh: 0.08,
				},
				"liquid": {
					Efficiency: 0.35, VOMCostMWh: 8, FuelCostBbl: 80,
					HeatRateBtuKWh: 9750, RampRateMWMin: 20, MinLoad: 0.3,
					CO2FactorTMWh: 0.75, SOxFactorTMWh: 0.0020, NOxFactorTMWh: 0.0015,
					PM25FactorTMWh: 0.0008,
				},
				"hydro": {
					VOMCostMWh: 2, RampRateMWMin: 50, MinLoad: 0.1,
					CO2FactorTMWh: 0.01,
				},
				"solar_util": {VOMCostMWh: 5, CO2FactorTMWh: 0.02},
				"wind":       {VOMCostMWh: 8, CO2FactorTMWh: 0.015},
				"nuclear": {
					Efficiency: 0.33, VOMCostMWh: 10, FuelCostMWh: 8,
					HeatRateBtuKWh: 10340, RampRateMWMin: 2, MinLoad: 0.7,
					CO2FactorTMWh: 0.01,
				},
			},
			ExpansionPipeline: []model.PipelineEntry{
				{Year: 2025, Technology: "nuclear", CapacityMW: 1200, PlantID: "Rooppur_1"},
				{Year: 2026, Technology: "nuclear", CapacityMW: 1200, PlantID: "Rooppur_2"},
				{Year: 2026, Technology: "solar_util", CapacityMW: 600},
				{Year: 2027, Technology: "coal", CapacityMW: 1320, PlantID: "Matarbari_Ext"},
				{Year: 2028, Technology: "wind", CapacityMW: 300},
				{Year: 2029, Technology: "solar_util", CapacityMW: 800},
				{Year: 2030, Technology: "gas_cc", CapacityMW: 700},
			},
			RetirementSchedule: []model.PipelineEntry{
				{Year: 2028, Technology: "liquid", CapacityMW: 500, PlantID: "old_rental_1"},
				{Year: 2030, Technology: "gas_oc", CapacityMW: 300, PlantID: "old_gas_peak_1"},
				{Year: 2035, Technology: "coal", CapacityMW: 200, PlantID: "old_coal_small"},
			},
			DispatchMeritOrder: []string{
				"nuclear", "hydro", "solar_util", "wind", "gas_cc", "coal", "gas_oc", "liquid",
			},
			OperationalConstraints: OperationalConstraints{
				MinGasTakePct:      0.6,
				MaxCoalUtilization: 0.85,
			},
		},

		FuelSupply: FuelSupplyParams{
			DomesticGas: DomesticGasParams{InitialProductionBCFYr: 800, DeclineRate: 0.04},
			LNG: LNGParams{
				TerminalCapacityMTPA:  12.5,
				ContractPriceUSDMMBtu: 9,
				SpotShare:             0.25,
			},
			Coal: CoalSupplyParams{ImportDependency: 0.98, LogisticsCostUSDTonn: 25},
			RenewableResource: RenewableResourceParams{
				AvgSolarCF:       0.17,
				AvgWindCFCoastal: 0.30,
			},
		},

		Grid: GridParams{
			Transmission: TransmissionParams{BaseCapacityGW: 30, ExpansionRate: 0.06},
			Distribution: DistributionParams{FeederOverloadBasePct: 0.08, SAIDIBaseHours: 15},
			Losses:       LossParams{BaseTechnicalLoss: 0.06, BaseNonTechnicalLoss: 0.05},
			SmartGrid:    SmartGridParams{TargetPenetration: 0.9, RolloutSpeedPctYr: 0.06},
			Interconnection: InterconnectionParams{
				BaseImportCapacityMW: 1160,
				PlannedIncreaseMWYr:  150,
			},
		},

		Demand: DemandParams{
			BaseDemandTWh: map[string]float64{
				"residential":  80,
				"industrial":   100,
				"commercial":   40,
				"agricultural": 15,
				"transport":    2,
			},
			ElasticityParams: ElasticityParams{
				IncomeElasticityResidential: 0.85,
				GDPElasticityIndustrial:     1.05,
				GDPElasticityCommercial:     0.95,
			},
		},

		Market: MarketParams{
			Structure: MarketStructureParams{Type: "single_buyer"},
			Tariff:    TariffParams{AvgRetailMarkup: 1.25, SubsidyLevel: 0.15},
			PPA:       PPAParams{AvgPPAPriceMWh: 70},
			RESupport: RESupportParams{FiTSolarMWh: 85, AuctionTargetSolarMWYr: 400},
		},

		Governance: GovernanceParams{
			UnbundlingLevel: "functional",
			Regulatory:      RegulatoryParams{CapacityScore: 0.55, IndependenceScore: 0.4},
			Planning:        PlanningParams{IRPAdopted: true, AdherenceScore: 0.6},
			PPPFramework:    PPPParams{ClarityScore: 0.65},
		},

		Renewable: RenewableParams{
			Solar:         RETechParams{BaseCostMWh: 65, PotentialGW: 50},
			Wind:          RETechParams{BaseCostMWh: 75, PotentialGW: 10},
			Integration:   IntegrationParams{MaxVREPenetration: 0.4, CurtailmentStartThresh: 0.35},
			LearningCurve: LearningCurveParams{SolarLearningRate: 0.18, WindLearningRate: 0.12},
			BaseSolarMW:   800,
			BaseWindMW:    150,
		},

		Access: AccessParams{
			BaselineAccessRates: AccessRates{National: 0.98, Urban: 1.0, Rural: 0.96},
			RuralTargetAccess:   1.0,
			Affordability:       AffordabilityParams{MaxEnergyBurdenPct: 0.10},
			EquityPrograms: EquityPrograms{
				Gender:         GenderProgram{SupportLevel: 150},
				JustTransition: JustTransitionProgram{ReskillingEffectiveness: 0.4},
			},
		},

		Climate: ClimateParams{
			RCP:                     "rcp60",
			CycloneFrequency:        0.5,
			InvestmentEffectiveness: 0.08,
			BaselineResilience:      0.35,
		},

		Environment: EnvironmentParams{
			WaterFactors: map[string]WaterFactors{
				"gas_cc":  {WithdrawalM3MWh: 0.8, ConsumptionM3MWh: 0.2},
				"coal":    {WithdrawalM3MWh: 1.5, ConsumptionM3MWh: 0.5},
				"nuclear": {WithdrawalM3MWh: 1.8, ConsumptionM3MWh: 0.6},
			},
			LandUseFactors: map[string]LandFactors{
				"solar_util": {SqKmPerMW: 0.02},
				"wind":       {SqKmPerMW: 0.08},
				"coal":       {SqKmPerMW: 0.005},
			},
			Mitigation: MitigationParams{CCSCaptureRate: 0.9},
		},

		Innovation: InnovationParams{
			BaselineScores: InnovationScores{
				Adaptation:     0.45,
				LocalMfgShare:  0.06,
				BusinessModel:  0.35,
				Digitalization: 0.25,
			},
			LocalContentTarget: 0.1,
		},

		Finance: FinanceParams{
			CostPerMWNewMUSD:          1.4,
			ADPShareEnergy:            0.08,
			InvestorRiskPerception:    0.65,
			ClimateFinanceAccessScore: 0.55,
		},
	}
	c.ApplyDefaults()
	return c
}

// StockScenarios returns the two reference run variants: the unmodified
// baseline and a high-renewables pathway with cheaper solar/wind, faster
// learning, looser integration limits, and a fossil-lighter pipeline.
func StockScenarios() []Scenario {
	highRE := Overrides{
		Renewable: &RenewableParams{
			Solar:         RETechParams{BaseCostMWh: 55, PotentialGW: 50},
			Wind:          RETechParams{BaseCostMWh: 65, PotentialGW: 10},
			Integration:   IntegrationParams{MaxVREPenetration: 0.6, CurtailmentStartThresh: 0.5},
			LearningCurve: LearningCurveParams{SolarLearningRate: 0.20, WindLearningRate: 0.15},
			BaseSolarMW:   800,
			BaseWindMW:    150,
		},
		Market: &MarketParams{
			Structure: MarketStructureParams{Type: "single_buyer"},
			Tariff:    TariffParams{AvgRetailMarkup: 1.25, SubsidyLevel: 0.15},
			PPA:       PPAParams{AvgPPAPriceMWh: 70},
			RESupport: RESupportParams{
				FiTSolarMWh:            90,
				AuctionTargetSolarMWYr: 600,
				AuctionTargetWindMWYr:  200,
			},
		},
		Generation: func() *GenerationParams {
			g := Baseline().Generation
			g.ExpansionPipeline = []model.PipelineEntry{
				{Year: 2025, Technology: "nuclear", CapacityMW: 1200, PlantID: "Rooppur_1"},
				{Year: 2026, Technology: "nuclear", CapacityMW: 1200, PlantID: "Rooppur_2"},
				{Year: 2026, Technology: "solar_util", CapacityMW: 800},
				{Year: 2028, Technology: "wind", CapacityMW: 500},
				{Year: 2029, Technology: "solar_util", CapacityMW: 1000},
			}
			return &g
		}(),
	}

	return []Scenario{
		{Name: "baseline"},
		{Name: "high_renewables", Overrides: highRE},
	}
}
