// Package visits holds the profile view counting policy.
//
// The rule itself is a pure function so it can be tested against a
// pinned clock; the artist repository applies the same rule as a
// single conditional UPDATE so concurrent views never lose counts.
package visits

import "time"

// Metrics is the counter snapshot carried on an artist row.
// VisitasTotal only ever grows. VisitasMes resets to 1 on the first
// view of a new calendar month, so total >= month is not an invariant.
type Metrics struct {
	VisitasTotal    uint64
	VisitasMes      uint64
	UltimaVisita    *time.Time
	MesUltimaVisita *uint8 // 1-12, nil when the profile was never viewed
}

// Apply returns the counters after one profile view at the given
// instant. The total always increments; the month counter resets to 1
// when the stored month number differs from now's month (a never-set
// month counts as a rollover), otherwise it increments.
func Apply(m Metrics, now time.Time) Metrics {
	month := uint8(now.Month())
	mes := m.VisitasMes + 1
	if m.MesUltimaVisita == nil || *m.MesUltimaVisita != month {
		mes = 1
	}
	ts := now
	return Metrics{
		VisitasTotal:    m.VisitasTotal + 1,
		VisitasMes:      mes,
		UltimaVisita:    &ts,
		MesUltimaVisita: &month,
	}
}
