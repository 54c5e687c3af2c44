package sim

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"energy-outlook/internal/config"
	"energy-outlook/internal/portfolio"
	"energy-outlook/internal/scenario"
	"energy-outlook/internal/submodel"
)

// StepError reports a submodel failure inside a scenario run: which scenario,
// which year, and which step. The scenario's partial results are discarded.
type StepError struct {
	Scenario string
	Year     int
	Step     string
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("scenario %q year %d step %s: %v", e.Scenario, e.Year, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// ScenarioErrors collects per-scenario failures from a multi-scenario run.
type ScenarioErrors map[string]error

func (e ScenarioErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e[name]))
	}
	return fmt.Sprintf("%d scenario(s) failed: %s", len(e), strings.Join(parts, "; "))
}

// Unwrap exposes the individual failures to errors.Is / errors.As.
func (e ScenarioErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, err := range e {
		errs = append(errs, err)
	}
	return errs
}

// Engine runs scenario simulations against a base configuration.
type Engine struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// Run simulates every scenario sequentially. A failing scenario is dropped
// from the result set and reported in the returned ScenarioErrors; the other
// scenarios still complete. The returned error is nil when all scenarios
// succeed.
func (e *Engine) Run(ctx context.Context, base *config.Config, scenarios []config.Scenario) (ResultSet, error) {
	results := make(ResultSet, len(scenarios))
	failures := make(ScenarioErrors)
	for _, sc := range scenarios {
		records, err := e.runScenario(ctx, base, sc)
		if err != nil {
			e.log.Error("scenario failed", zap.String("scenario", sc.Name), zap.Error(err))
			failures[sc.Name] = err
			continue
		}
		results[sc.Name] = records
	}
	if len(failures) > 0 {
		return results, failures
	}
	return results, nil
}

// RunParallel simulates scenarios concurrently, one goroutine per scenario.
// Every scenario gets its own portfolio and submodel set, so runs share
// nothing but the read-only base config; results are merged after all
// goroutines finish.
func (e *Engine) RunParallel(ctx context.Context, base *config.Config, scenarios []config.Scenario) (ResultSet, error) {
	type outcome struct {
		name    string
		records []YearRecord
		err     error
	}

	var wg sync.WaitGroup
	outcomes := make([]outcome, len(scenarios))
	for i, sc := range scenarios {
		wg.Add(1)
		go func(i int, sc config.Scenario) {
			defer wg.Done()
			records, err := e.runScenario(ctx, base, sc)
			outcomes[i] = outcome{name: sc.Name, records: records, err: err}
		}(i, sc)
	}
	wg.Wait()

	results := make(ResultSet, len(scenarios))
	failures := make(ScenarioErrors)
	for _, o := range outcomes {
		if o.err != nil {
			e.log.Error("scenario failed", zap.String("scenario", o.name), zap.Error(o.err))
			failures[o.name] = o.err
			continue
		}
		results[o.name] = o.records
	}
	if len(failures) > 0 {
		return results, failures
	}
	return results, nil
}

// runScenario resolves, validates, and simulates one scenario. The year loop
// runs the thirteen steps in a fixed order; any step failure aborts the
// scenario and discards its partial records.
func (e *Engine) runScenario(ctx context.Context, base *config.Config, sc config.Scenario) ([]YearRecord, error) {
	cfg := scenario.Resolve(base, sc)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("resolve scenario %q: %w", sc.Name, err)
	}

	start, end := cfg.SimulationYears.Start, cfg.SimulationYears.End
	log := e.log.With(zap.String("scenario", sc.Name))

	port := portfolio.New(cfg.Generation, log)
	demand := submodel.NewDemand(cfg.Demand)
	fuel := submodel.NewFuelSupply(cfg.FuelSupply, start)
	grid := submodel.NewGrid(cfg.Grid, start)
	market := submodel.NewMarket(cfg.Market, start)
	governance := submodel.NewGovernance(cfg.Governance)
	renewable := submodel.NewRenewable(cfg.Renewable, start)
	access := submodel.NewAccess(cfg.Access, start)
	climate := submodel.NewClimate(cfg.Climate, start)
	environment := submodel.NewEnvironment(cfg.Environment)
	innovation := submodel.NewInnovation(cfg.Innovation)
	finance := submodel.NewFinance(cfg.Finance)

	records := make([]YearRecord, 0, end-start+1)
	for year := start; year <= end; year++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario %q interrupted at year %d: %w", sc.Name, year, err)
		}
		log.Debug("simulating year", zap.Int("year", year))

		update := port.UpdateCapacity(year)
		drivers := scenario.Synthesize(cfg, year, start)

		demandRes, err := demand.Project(year, drivers.Economic)
		if err != nil {
			return nil, &StepError{Scenario: sc.Name, Year: year, Step: "demand", Err: err}
		}

		fuelRes := fuel.Simulate(year, drivers.External.GlobalMarkets, drivers.External.ClimateConditions)

		// Marginal fuel prices for dispatch costing: gas clears at the LNG
		// blend, coal and liquids at delivered import prices.
		prices := portfolio.FuelPrices{
			GasUSDMMBtu:  fuelRes.LNG.AvgPriceUSDMMBtu,
			CoalUSDTonne: fuelRes.Coal.DeliveredPriceUSDTonne,
			OilUSDBbl:    fuelRes.Liquid.HFOPriceUSDBbl,
		}
		dispatch := port.SimulateDispatch(demandRes.TotalTWh, prices)

		gridRes := grid.Simulate(year, dispatch.TotalGenerationGWh)
		marketRes := market.Simulate(year, dispatch.VariableCostsMWh)
		governanceRes := governance.Simulate(year, drivers.Policy.ReformAgenda, drivers.External)
		renewableRes := renewable.Simulate(year, drivers.Policy.PolicySupport,
			marketRes.Wholesale.PriceMWh, port.Capacity().TotalMW())
		accessRes := access.Simulate(year, marketRes.Retail.AvgTariffMWh, gridRes.Distribution.SAIDIHours)
		climateRes := climate.Simulate(year, drivers.Climate)
		environmentRes := environment.Calculate(dispatch.GenerationGWh, dispatch.CapacityMW,
			cfg.Generation.TechnologyParameters, drivers.Policy.MitigationMeasures)
		// Market pull left at zero: the innovation model substitutes its
		// reference investment level.
		innovationRes := innovation.Simulate(year, drivers.Policy.IndustrialPolicy,
			drivers.Policy.PolicySupport, governanceRes.OverallScore, 0)
		financeRes := finance.Simulate(year, cfg.Generation.ExpansionPipeline,
			drivers.Financial, governanceRes.PSPEnvironmentScore)

		records = append(records, YearRecord{
			Scenario:     sc.Name,
			Year:         year,
			CapacityMW:   dispatch.CapacityMW,
			LedgerUpdate: update,
			Demand:       demandRes,
			Fuel:         fuelRes,
			Dispatch:     dispatch,
			Grid:         gridRes,
			Market:       marketRes,
			Governance:   governanceRes,
			Renewable:    renewableRes,
			Access:       accessRes,
			Climate:      climateRes,
			Environment:  environmentRes,
			Innovation:   innovationRes,
			Finance:      financeRes,
		})
	}
	return records, nil
}
