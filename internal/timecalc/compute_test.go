package timecalc

import (
	"testing"
	"time"

	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardInput = domain.SessionInput{Start: "08:00", Break: "00:30", Target: "08:00"}

func at(h, m, s int) time.Time {
	return time.Date(2025, time.June, 11, h, m, s, 0, time.Local)
}

func TestCompute_StandardDay(t *testing.T) {
	state := Compute(standardInput, at(12, 0, 30))

	require.True(t, state.Valid)
	assert.Equal(t, 480, state.StartMinutes)
	assert.Equal(t, 30, state.BreakMinutes)
	assert.Equal(t, 480, state.TargetMinutes)
	assert.InDelta(t, 720.5, state.CurrentMinutes, 1e-9)
	assert.InDelta(t, 210.5, state.WorkedMinutes, 1e-9)
	assert.Equal(t, 990, state.EndAtTarget)
	assert.Equal(t, 1080, state.EndAtMax)

	assert.Equal(t, "16:30 Uhr", FormatClockTime(float64(state.EndAtTarget)))
	assert.Equal(t, "18:00 Uhr", FormatClockTime(float64(state.EndAtMax)))
}

func TestCompute_WorkedClampedAtZero(t *testing.T) {
	state := Compute(domain.SessionInput{Start: "13:00", Break: "00:30", Target: "08:00"}, at(12, 0, 0))
	require.True(t, state.Valid)
	assert.Equal(t, 0.0, state.WorkedMinutes)

	// Still inside the break.
	state = Compute(standardInput, at(8, 15, 0))
	assert.Equal(t, 0.0, state.WorkedMinutes)
}

func TestCompute_MaxIgnoresBreakAndTarget(t *testing.T) {
	state := Compute(domain.SessionInput{Start: "07:15", Break: "01:00", Target: "10:00"}, at(9, 0, 0))
	require.True(t, state.Valid)
	assert.Equal(t, 435+600, state.EndAtMax)
	assert.Equal(t, 435+60+600, state.EndAtTarget)
}

func TestCompute_InvalidInput(t *testing.T) {
	now := at(10, 0, 0)
	for _, in := range []domain.SessionInput{
		{Start: "", Break: "00:30", Target: "08:00"},
		{Start: "08:00", Break: "x", Target: "08:00"},
		{Start: "08:00", Break: "00:30", Target: "8"},
	} {
		state := Compute(in, now)
		assert.False(t, state.Valid, "input=%+v", in)
		assert.Equal(t, now, state.ComputedAt)
		assert.Equal(t, 0.0, state.WorkedMinutes)
	}
}

func TestLiveMinutes(t *testing.T) {
	assert.Equal(t, 0, LiveMinutes(domain.SessionState{}))
	assert.Equal(t, 211, LiveMinutes(Compute(standardInput, at(12, 0, 30))))
}

func TestBuildSessionView(t *testing.T) {
	view := BuildSessionView(standardInput, Compute(standardInput, at(12, 0, 30)))
	assert.True(t, view.Valid)
	assert.Equal(t, "3 h 31 m", view.Worked)
	assert.Equal(t, "16:30 Uhr", view.TargetEnd)
	assert.Equal(t, "18:00 Uhr", view.MaxEnd)
	assert.Equal(t, domain.WarningNeutral, view.Warning.Level)

	invalid := domain.SessionInput{Break: "00:30", Target: "08:00"}
	view = BuildSessionView(invalid, Compute(invalid, at(12, 0, 0)))
	assert.False(t, view.Valid)
	assert.Equal(t, "-", view.Worked)
	assert.Equal(t, "-", view.TargetEnd)
	assert.Equal(t, "-", view.MaxEnd)
	assert.Equal(t, ClockPlaceholder, view.Timeline.NowLabel)
}
