package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.Local)
}

func TestWeekStart_Wednesday(t *testing.T) {
	// 2025-06-11 is a Wednesday.
	got := WeekStart(localDate(2025, time.June, 11, 15, 42))
	assert.Equal(t, localDate(2025, time.June, 9, 0, 0), got)
	assert.Equal(t, time.Monday, got.Weekday())
}

func TestWeekStart_Sunday(t *testing.T) {
	got := WeekStart(localDate(2025, time.June, 15, 23, 59))
	assert.Equal(t, localDate(2025, time.June, 9, 0, 0), got)
}

func TestWeekStart_Monday(t *testing.T) {
	got := WeekStart(localDate(2025, time.June, 9, 0, 1))
	assert.Equal(t, localDate(2025, time.June, 9, 0, 0), got)
}

func TestWeekStart_AcrossMonthBoundary(t *testing.T) {
	// 2025-10-01 is a Wednesday; its Monday is in September.
	got := WeekStart(localDate(2025, time.October, 1, 8, 0))
	assert.Equal(t, localDate(2025, time.September, 29, 0, 0), got)
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(localDate(2025, time.December, 29, 0, 0))
	require.Len(t, dates, 7)
	want := []string{
		"2025-12-29", "2025-12-30", "2025-12-31",
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04",
	}
	for i, d := range dates {
		assert.Equal(t, want[i], ISODate(d))
	}
	assert.Equal(t, time.Sunday, dates[6].Weekday())
}

func TestISODate_UsesLocalCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	// 00:30 local is still the previous day in UTC.
	d := time.Date(2025, time.June, 11, 0, 30, 0, 0, loc)
	assert.Equal(t, "2025-06-11", ISODate(d))
}

func TestWeeklyEntries_WeekTotal(t *testing.T) {
	e := WeeklyEntries{
		"2025-06-08": 500, // previous Sunday
		"2025-06-09": 480,
		"2025-06-11": 300,
		"2025-06-15": 60,
		"2025-06-16": 999, // next Monday
	}
	assert.Equal(t, 840, e.WeekTotal(localDate(2025, time.June, 11, 12, 0)))
}

func TestWeeklyEntries_RemoveWeek(t *testing.T) {
	e := WeeklyEntries{
		"2025-06-08": 500,
		"2025-06-09": 480,
		"2025-06-15": 60,
	}
	removed := e.RemoveWeek(localDate(2025, time.June, 12, 9, 0))
	assert.Equal(t, 2, removed)
	assert.Equal(t, WeeklyEntries{"2025-06-08": 500}, e)

	assert.Equal(t, 0, e.RemoveWeek(localDate(2025, time.June, 12, 9, 0)))
}
