package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntriesForYear(t *testing.T) {
	schedule := []PipelineEntry{
		{Year: 2026, Technology: "solar_util", CapacityMW: 600},
		{Year: 2025, Technology: "nuclear", CapacityMW: 1200, PlantID: "unit_1"},
		{Year: 2026, Technology: "nuclear", CapacityMW: 1200, PlantID: "unit_2"},
	}

	got := EntriesForYear(schedule, 2026)

	// Schedule order is preserved for the matching year.
	assert.Equal(t, []PipelineEntry{schedule[0], schedule[2]}, got)
	assert.Empty(t, EntriesForYear(schedule, 2030))
}

func TestCapacityInYear(t *testing.T) {
	schedule := []PipelineEntry{
		{Year: 2026, Technology: "solar_util", CapacityMW: 600},
		{Year: 2026, Technology: "nuclear", CapacityMW: 1200},
		{Year: 2027, Technology: "coal", CapacityMW: 1320},
	}

	assert.InDelta(t, 1800.0, CapacityInYear(schedule, 2026), 1e-9)
	assert.Zero(t, CapacityInYear(schedule, 2024))
}
