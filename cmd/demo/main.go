package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"energy-outlook/internal/analysis"
	"energy-outlook/internal/config"
	"energy-outlook/internal/sim"
)

// Demo:
// - Run the built-in baseline and high_renewables scenarios to 2040
// - Print capacity, generation, emissions, and access highlights per scenario
func main() {
	endYear := flag.Int("end", 2040, "Final simulation year")
	flag.Parse()

	cfg := config.Baseline()
	cfg.SimulationYears.End = *endYear

	engine := sim.New(zap.NewNop())
	results, err := engine.Run(context.Background(), cfg, config.StockScenarios())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	for _, s := range analysis.SummarizeAll(results) {
		records := results[s.Scenario]
		first, last := records[0], records[len(records)-1]

		fmt.Printf("=== %s (%d-%d) ===\n", s.Scenario, s.StartYear, s.EndYear)
		fmt.Printf("capacity:    %.0f MW -> %.0f MW (VRE share %.1f%%)\n",
			sumMW(first.CapacityMW), s.FinalCapacityMW, s.FinalVRECapacityShare*100)
		fmt.Printf("generation:  %.0f GWh -> %.0f GWh (unserved %.0f GWh worst year)\n",
			first.Dispatch.TotalGenerationGWh, last.Dispatch.TotalGenerationGWh, s.WorstUnservedGWh)
		fmt.Printf("emissions:   %.1f Mt CO2e cumulative, %.1f t/GWh final intensity\n",
			s.CumulativeCO2Mt, s.FinalEmissionsTCO2GWh)
		fmt.Printf("prices:      %.1f $/MWh mean wholesale, %.1f $/MWh P95\n",
			s.MeanWholesaleMWh, s.P95WholesaleMWh)
		fmt.Printf("access:      %.1f%% -> %.1f%% national electrification\n",
			first.Access.NationalRate*100, s.FinalAccessRate*100)
		fmt.Printf("finance:     $%.0fM invested, $%.0fM cumulative gap\n",
			s.CumulativeInvestmentMUSD, s.CumulativeFinancingGapMUSD)
		fmt.Println()
	}
}

func sumMW(capacity map[string]float64) float64 {
	total := 0.0
	for _, mw := range capacity {
		total += mw
	}
	return total
}
