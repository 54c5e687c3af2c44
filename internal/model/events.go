package model

// PipelineEntry is one scheduled capacity change: a planned expansion project
// or a planned retirement. Entries are immutable once scheduled and are
// consumed exactly once, in the year matching Year.
type PipelineEntry struct {
	Year       int     `yaml:"year" json:"year"`
	Technology string  `yaml:"tech" json:"tech"`
	CapacityMW float64 `yaml:"capacity" json:"capacity"`
	PlantID    string  `yaml:"plant_id" json:"plant_id,omitempty"`
}

// EntriesForYear filters a schedule down to the entries matching one year,
// preserving order.
func EntriesForYear(schedule []PipelineEntry, year int) []PipelineEntry {
	var out []PipelineEntry
	for _, e := range schedule {
		if e.Year == year {
			out = append(out, e)
		}
	}
	return out
}

// CapacityInYear sums the scheduled MW for one year across a schedule.
func CapacityInYear(schedule []PipelineEntry, year int) float64 {
	total := 0.0
	for _, e := range schedule {
		if e.Year == year {
			total += e.CapacityMW
		}
	}
	return total
}
