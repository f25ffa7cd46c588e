package timecalc

import (
	"time"

	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// Compute derives a session snapshot from raw inputs and the wall clock.
// If any input fails to parse the snapshot is invalid and carries only
// ComputedAt.
func Compute(in domain.SessionInput, now time.Time) domain.SessionState {
	start, okStart := domain.ParseTimeOfDay(in.Start)
	brk, okBreak := domain.ParseTimeOfDay(in.Break)
	target, okTarget := domain.ParseTimeOfDay(in.Target)
	if !okStart || !okBreak || !okTarget {
		return domain.SessionState{ComputedAt: now}
	}

	startMin := start.Minutes()
	breakMin := brk.Minutes()
	targetMin := target.Minutes()
	current := CurrentMinutes(now)

	return domain.SessionState{
		Valid:          true,
		StartMinutes:   startMin,
		BreakMinutes:   breakMin,
		TargetMinutes:  targetMin,
		CurrentMinutes: current,
		WorkedMinutes:  max(0, current-float64(startMin)-float64(breakMin)),
		EndAtTarget:    startMin + breakMin + targetMin,
		EndAtMax:       startMin + domain.MaxWorkMinutes,
		ComputedAt:     now,
	}
}

// CurrentMinutes is the local wall-clock offset from midnight including
// seconds as a fraction.
func CurrentMinutes(now time.Time) float64 {
	return float64(now.Hour()*60+now.Minute()) + float64(now.Second())/60
}

// LiveMinutes is the rounded, clamped worked time of a valid snapshot, or
// zero for an invalid one.
func LiveMinutes(state domain.SessionState) int {
	if !state.Valid {
		return 0
	}
	return ClampedMinutes(state.WorkedMinutes)
}
