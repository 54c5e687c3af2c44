package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"energy-outlook/internal/analysis"
	"energy-outlook/internal/config"
	"energy-outlook/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run --config examples/outlook.yaml --scenarios examples/scenarios.yaml --out results/")
	fmt.Println("  cli compare --metric emissions")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - omitting --config uses the built-in baseline, omitting --scenarios the stock scenario set")
	fmt.Println("  - run writes one CSV of yearly results per scenario plus a summary table")
	fmt.Println("  - compare ranks scenarios by emissions, unserved, financing_gap, access, or resilience")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (empty = built-in baseline)")
	scenPath := fs.String("scenarios", "", "Path to YAML scenario list (empty = stock scenarios)")
	outDir := fs.String("out", "results", "Output directory for per-scenario CSVs")
	parallel := fs.Bool("parallel", false, "Run scenarios concurrently")
	verbose := fs.Bool("v", false, "Verbose logging")
	_ = fs.Parse(args)

	cfg, scenarios := loadInputs(*cfgPath, *scenPath)
	results := simulate(cfg, scenarios, *parallel, *verbose)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal(err)
	}
	for name, records := range results {
		path := filepath.Join(*outDir, name+".csv")
		if err := sim.WriteScenarioCSV(path, records); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d years to %s\n", len(records), path)
	}

	fmt.Println()
	printSummaryTable(analysis.SummarizeAll(results))
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (empty = built-in baseline)")
	scenPath := fs.String("scenarios", "", "Path to YAML scenario list (empty = stock scenarios)")
	metric := fs.String("metric", "emissions", "Ranking metric: emissions, unserved, financing_gap, access, resilience")
	_ = fs.Parse(args)

	cfg, scenarios := loadInputs(*cfgPath, *scenPath)
	results := simulate(cfg, scenarios, true, false)

	ranked, err := analysis.RankScenarios(analysis.SummarizeAll(results), analysis.Metric(*metric))
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Ranking by %s (best first):\n", *metric)
	for i, s := range ranked {
		fmt.Printf("  %d. %-20s co2=%.1f Mt  unserved=%.0f GWh  gap=$%.0fM  access=%.3f  resilience=%.3f\n",
			i+1, s.Scenario, s.CumulativeCO2Mt, s.TotalUnservedGWh,
			s.CumulativeFinancingGapMUSD, s.FinalAccessRate, s.FinalResilienceScore)
	}
}

func loadInputs(cfgPath, scenPath string) (*config.Config, []config.Scenario) {
	cfg := config.Baseline()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	scenarios := config.StockScenarios()
	if scenPath != "" {
		loaded, err := config.LoadScenarios(scenPath)
		if err != nil {
			fatal(err)
		}
		scenarios = loaded
	}
	return cfg, scenarios
}

func simulate(cfg *config.Config, scenarios []config.Scenario, parallel, verbose bool) sim.ResultSet {
	log := zap.NewNop()
	if verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fatal(err)
		}
	}

	engine := sim.New(log)
	run := engine.Run
	if parallel {
		run = engine.RunParallel
	}
	results, err := run(context.Background(), cfg, scenarios)
	if err != nil {
		// Failed scenarios are already excluded; report and continue with
		// whatever completed.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if len(results) == 0 {
		fatal(fmt.Errorf("no scenario completed"))
	}
	return results
}

func printSummaryTable(summaries []analysis.ScenarioSummary) {
	fmt.Printf("%-20s %10s %12s %10s %12s %8s %12s\n",
		"scenario", "co2 (Mt)", "unserved GWh", "vre share", "price $/MWh", "access", "gap ($M)")
	for _, s := range summaries {
		fmt.Printf("%-20s %10.1f %12.0f %10.3f %12.1f %8.3f %12.0f\n",
			s.Scenario, s.CumulativeCO2Mt, s.TotalUnservedGWh, s.FinalVRECapacityShare,
			s.MeanWholesaleMWh, s.FinalAccessRate, s.CumulativeFinancingGapMUSD)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
