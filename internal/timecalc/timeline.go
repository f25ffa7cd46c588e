package timecalc

import (
	"github.com/alexanderramin/zeitrechner/internal/app"
	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// Progress markers may run past the max marker up to this percentage.
const overshootPct = 120

// BuildTimeline places start, now, target and max on the start→max span.
func BuildTimeline(state domain.SessionState) app.Timeline {
	if !state.Valid {
		return resetTimeline()
	}

	span := float64(state.EndAtMax - state.StartMinutes)
	if span <= 0 {
		return resetTimeline()
	}

	start := float64(state.StartMinutes)
	nowProgress := clamp((state.CurrentMinutes-start)/span*100, 0, overshootPct)
	targetProgress := clamp((float64(state.EndAtTarget)-start)/span*100, 0, overshootPct)

	return app.Timeline{
		Valid:       true,
		StartLabel:  FormatClockTime(start),
		NowLabel:    FormatClockTime(state.CurrentMinutes),
		TargetLabel: FormatClockTime(float64(state.EndAtTarget)),
		MaxLabel:    FormatClockTime(float64(state.EndAtMax)),
		FillPct:     clamp(nowProgress, 0, 100),
		StartPct:    0,
		NowPct:      clamp(nowProgress, 0, 100),
		TargetPct:   clamp(targetProgress, 0, 100),
		MaxPct:      100,
	}
}

func resetTimeline() app.Timeline {
	return app.Timeline{
		StartLabel:  ClockPlaceholder,
		NowLabel:    ClockPlaceholder,
		TargetLabel: ClockPlaceholder,
		MaxLabel:    ClockPlaceholder,
		MaxPct:      100,
	}
}
