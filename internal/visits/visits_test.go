package visits_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/artist-directory/internal/visits"
)

func at(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 10, 0, 0, 0, time.UTC)
}

func monthPtr(m time.Month) *uint8 { v := uint8(m); return &v }

func TestApplyFirstVisitEver(t *testing.T) {
	now := at(time.March, 5)
	got := visits.Apply(visits.Metrics{}, now)

	assert.Equal(t, uint64(1), got.VisitasTotal)
	assert.Equal(t, uint64(1), got.VisitasMes)
	require.NotNil(t, got.UltimaVisita)
	assert.Equal(t, now, *got.UltimaVisita)
	require.NotNil(t, got.MesUltimaVisita)
	assert.Equal(t, uint8(3), *got.MesUltimaVisita)
}

func TestApplySameMonthIncrements(t *testing.T) {
	prev := at(time.March, 5)
	m := visits.Metrics{
		VisitasTotal:    10,
		VisitasMes:      4,
		UltimaVisita:    &prev,
		MesUltimaVisita: monthPtr(time.March),
	}

	got := visits.Apply(m, at(time.March, 20))

	assert.Equal(t, uint64(11), got.VisitasTotal)
	assert.Equal(t, uint64(5), got.VisitasMes)
}

func TestApplyMonthRolloverResets(t *testing.T) {
	prev := at(time.March, 28)
	m := visits.Metrics{
		VisitasTotal:    50,
		VisitasMes:      30,
		UltimaVisita:    &prev,
		MesUltimaVisita: monthPtr(time.March),
	}

	got := visits.Apply(m, at(time.April, 1))

	// Total keeps growing; the month counter restarts at 1.
	assert.Equal(t, uint64(51), got.VisitasTotal)
	assert.Equal(t, uint64(1), got.VisitasMes)
	require.NotNil(t, got.MesUltimaVisita)
	assert.Equal(t, uint8(4), *got.MesUltimaVisita)
}

// A profile last seen in March of a previous year still reads month 3,
// so a visit in March a year later keeps counting into the same bucket.
// The month column stores only the month number, matching the legacy
// storage shape.
func TestApplySameMonthNumberAcrossYears(t *testing.T) {
	m := visits.Metrics{
		VisitasTotal:    5,
		VisitasMes:      5,
		MesUltimaVisita: monthPtr(time.March),
	}

	got := visits.Apply(m, at(time.March, 1))

	assert.Equal(t, uint64(6), got.VisitasMes)
}

func TestApplySequence(t *testing.T) {
	m := visits.Metrics{}
	times := []time.Time{
		at(time.January, 10),
		at(time.January, 11),
		at(time.February, 1),
		at(time.February, 2),
		at(time.February, 3),
	}
	for _, now := range times {
		m = visits.Apply(m, now)
	}

	assert.Equal(t, uint64(5), m.VisitasTotal)
	assert.Equal(t, uint64(3), m.VisitasMes)
	require.NotNil(t, m.MesUltimaVisita)
	assert.Equal(t, uint8(2), *m.MesUltimaVisita)
}
