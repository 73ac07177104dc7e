package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duewatch/internal/obligation"
)

func onDate(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestForecastGroupsByMonth(t *testing.T) {
	session := NewSession(obligation.KindReceivable, []*obligation.Obligation{
		open("a", onDate(2026, time.April, 5), 1000),
		open("b", onDate(2026, time.April, 20), 2000),
		open("c", onDate(2026, time.May, 1), 500),
	}, today)

	entries := session.Forecast(false)

	require.Len(t, entries, 2)
	assert.Equal(t, ForecastEntry{Year: 2026, Month: 4, Total: 3000}, entries[0])
	assert.Equal(t, ForecastEntry{Year: 2026, Month: 5, Total: 500}, entries[1])
}

func TestForecastOrdersAcrossYears(t *testing.T) {
	session := NewSession(obligation.KindReceivable, []*obligation.Obligation{
		open("a", onDate(2027, time.January, 10), 100),
		open("b", onDate(2026, time.December, 10), 200),
		open("c", onDate(2026, time.April, 10), 300),
	}, today)

	entries := session.Forecast(false)

	require.Len(t, entries, 3)
	assert.Equal(t, 2026, entries[0].Year)
	assert.Equal(t, 4, entries[0].Month)
	assert.Equal(t, 2026, entries[1].Year)
	assert.Equal(t, 12, entries[1].Month)
	assert.Equal(t, 2027, entries[2].Year)
}

func TestForecastPastDueVariants(t *testing.T) {
	items := []*obligation.Obligation{
		open("past", onDate(2026, time.January, 15), 4000),
		open("future", onDate(2026, time.April, 15), 1000),
	}

	// Receipts forecast looks forward only.
	forwardOnly := NewSession(obligation.KindReceivable, items, today).Forecast(false)
	require.Len(t, forwardOnly, 1)
	assert.Equal(t, 4, forwardOnly[0].Month)

	// Disbursement forecast keeps past-due amounts in the projection.
	withPastDue := NewSession(obligation.KindPayable, items, today).Forecast(true)
	require.Len(t, withPastDue, 2)
	assert.Equal(t, ForecastEntry{Year: 2026, Month: 1, Total: 4000}, withPastDue[0])
}

func TestForecastSkipsClosedAndUndated(t *testing.T) {
	settled := open("settled", onDate(2026, time.April, 1), 1000)
	settled.Status = obligation.StatusSettled
	split := open("split", onDate(2026, time.April, 1), 1000)
	split.Status = obligation.StatusSplit

	session := NewSession(obligation.KindReceivable, []*obligation.Obligation{
		settled,
		split,
		open("no-date", nil, 1000),
		open("kept", onDate(2026, time.April, 1), 250),
	}, today)

	entries := session.Forecast(true)

	require.Len(t, entries, 1)
	assert.Equal(t, int64(250), entries[0].Total)
}

func TestForecastIncludesDueToday(t *testing.T) {
	session := NewSession(obligation.KindReceivable, []*obligation.Obligation{
		open("today", dueIn(0), 900),
	}, today)

	entries := session.Forecast(false)

	require.Len(t, entries, 1)
	assert.Equal(t, int64(900), entries[0].Total)
}
