package portfolio

// Ledger tracks installed capacity in MW per technology. Technologies whose
// capacity falls to zero or below are removed rather than kept at zero, so
// range iteration only ever sees live technologies.
type Ledger map[string]float64

// Clone returns an independent copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for tech, mw := range l {
		out[tech] = mw
	}
	return out
}

// TotalMW sums installed capacity across all technologies.
func (l Ledger) TotalMW() float64 {
	total := 0.0
	for _, mw := range l {
		total += mw
	}
	return total
}

// Add credits mw to tech, creating the entry if needed.
func (l Ledger) Add(tech string, mw float64) {
	l[tech] += mw
}

// Retire debits mw from tech. If the technology is absent the ledger is left
// untouched and ok is false. Entries that reach zero or below are deleted.
func (l Ledger) Retire(tech string, mw float64) (ok bool) {
	cur, present := l[tech]
	if !present {
		return false
	}
	cur -= mw
	if cur <= 0 {
		delete(l, tech)
	} else {
		l[tech] = cur
	}
	return true
}
