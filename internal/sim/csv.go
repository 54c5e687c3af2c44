package sim

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"
)

// WriteScenarioCSV writes one scenario's year series as a flat CSV: headline
// metrics first, then one generation column per technology seen anywhere in
// the series, in sorted order.
func WriteScenarioCSV(path string, records []YearRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	techs := techColumns(records)

	header := []string{
		"year",
		"scenario",
		"total_demand_twh",
		"target_generation_gwh",
		"total_generation_gwh",
		"unserved_energy_gwh",
		"wholesale_price_mwh",
		"retail_tariff_mwh",
		"co2_mt",
		"national_access_rate",
		"resilience_score",
		"vre_penetration",
		"investment_mobilized_m_usd",
		"financing_gap_m_usd",
	}
	for _, tech := range techs {
		header = append(header, "gen_"+tech+"_gwh")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			r.Scenario,
			fmtFloat(r.Demand.TotalTWh),
			fmtFloat(r.Dispatch.TargetGenerationGWh),
			fmtFloat(r.Dispatch.TotalGenerationGWh),
			fmtFloat(r.Dispatch.UnservedEnergyGWh),
			fmtFloat(r.Market.Wholesale.PriceMWh),
			fmtFloat(r.Market.Retail.AvgTariffMWh),
			fmtFloat(r.Environment.CO2eTonnes / 1e6),
			fmtFloat(r.Access.NationalRate),
			fmtFloat(r.Climate.ResilienceScore),
			fmtFloat(r.Renewable.Integration.VREPenetration),
			fmtFloat(r.Finance.TotalMobilizedMUSD),
			fmtFloat(r.Finance.FinancingGapMUSD),
		}
		for _, tech := range techs {
			row = append(row, fmtFloat(r.Dispatch.GenerationGWh[tech]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func techColumns(records []YearRecord) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		for tech := range r.Dispatch.GenerationGWh {
			seen[tech] = true
		}
	}
	techs := make([]string, 0, len(seen))
	for tech := range seen {
		techs = append(techs, tech)
	}
	sort.Strings(techs)
	return techs
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
