package portfolio

import (
	"fmt"

	"go.uber.org/zap"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Portfolio owns the generation fleet state for one scenario run: the capacity
// ledger plus the expansion pipeline and retirement schedule that mutate it
// year by year. It is not safe for concurrent use; parallel scenario runs each
// construct their own.
type Portfolio struct {
	cfg config.GenerationParams
	log *zap.Logger

	ledger Ledger

	// Highest year already applied to the ledger. Replaying a year at or below
	// this mark is a no-op, so capacity events land exactly once even if the
	// orchestrator calls UpdateCapacity twice for the same year.
	lastAppliedYear int
}

// LedgerUpdate reports what one year's capacity update did.
type LedgerUpdate struct {
	Year      int                `json:"year"`
	AddedMW   map[string]float64 `json:"added_mw,omitempty"`
	RetiredMW map[string]float64 `json:"retired_mw,omitempty"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// New builds a portfolio seeded from the base-year fleet.
func New(cfg config.GenerationParams, log *zap.Logger) *Portfolio {
	if log == nil {
		log = zap.NewNop()
	}
	ledger := make(Ledger, len(cfg.BaseYearCapacityMW))
	for tech, mw := range cfg.BaseYearCapacityMW {
		if mw > 0 {
			ledger[tech] = mw
		}
	}
	return &Portfolio{cfg: cfg, log: log, ledger: ledger}
}

// Capacity returns a snapshot of the current ledger.
func (p *Portfolio) Capacity() Ledger {
	return p.ledger.Clone()
}

// UpdateCapacity applies the pipeline and retirement events scheduled for
// year. Expansions land before retirements. Retiring a technology absent from
// the ledger is not an error: the event is skipped and reported as a warning,
// mirroring how stale retirement schedules show up in real planning data.
func (p *Portfolio) UpdateCapacity(year int) LedgerUpdate {
	upd := LedgerUpdate{Year: year}
	if year <= p.lastAppliedYear {
		return upd
	}
	p.lastAppliedYear = year

	for _, e := range model.EntriesForYear(p.cfg.ExpansionPipeline, year) {
		p.ledger.Add(e.Technology, e.CapacityMW)
		if upd.AddedMW == nil {
			upd.AddedMW = make(map[string]float64)
		}
		upd.AddedMW[e.Technology] += e.CapacityMW
	}
	for _, e := range model.EntriesForYear(p.cfg.RetirementSchedule, year) {
		if !p.ledger.Retire(e.Technology, e.CapacityMW) {
			w := fmt.Sprintf("retirement of %.0f MW %s (%s) skipped: technology not in fleet",
				e.CapacityMW, e.Technology, e.PlantID)
			upd.Warnings = append(upd.Warnings, w)
			p.log.Warn("retirement skipped",
				zap.Int("year", year),
				zap.String("tech", e.Technology),
				zap.Float64("capacity_mw", e.CapacityMW))
			continue
		}
		if upd.RetiredMW == nil {
			upd.RetiredMW = make(map[string]float64)
		}
		upd.RetiredMW[e.Technology] += e.CapacityMW
	}
	return upd
}
