package timecalc

import (
	"fmt"
	"math"
)

const minutesPerDay = 24 * 60

// ClockPlaceholder is rendered for clock values that cannot be computed.
const ClockPlaceholder = "--:--"

// RoundMinutes rounds to the nearest whole minute with halves rounded up
// (toward positive infinity), so -0.5 becomes 0 and 0.5 becomes 1.
func RoundMinutes(minutes float64) int {
	return int(math.Floor(minutes + 0.5))
}

// ClampedMinutes rounds minutes and clamps the result at zero.
func ClampedMinutes(minutes float64) int {
	return max(0, RoundMinutes(minutes))
}

// FormatDuration renders minutes as "{H} h {MM} m". Negative input renders
// as zero.
func FormatDuration(minutes float64) string {
	safe := ClampedMinutes(minutes)
	return fmt.Sprintf("%d h %02d m", safe/60, safe%60)
}

// FormatClockTime renders a minute offset from local midnight as "HH:MM Uhr".
// Offsets past midnight get a " (+1 Tag)" or " (+N Tage)" suffix; offsets
// before midnight wrap without one. NaN renders as ClockPlaceholder.
func FormatClockTime(totalMinutes float64) string {
	if math.IsNaN(totalMinutes) || math.IsInf(totalMinutes, 0) {
		return ClockPlaceholder
	}
	rounded := RoundMinutes(totalMinutes)
	normalized := ((rounded % minutesPerDay) + minutesPerDay) % minutesPerDay
	dayOffset := floorDiv(rounded, minutesPerDay)

	base := fmt.Sprintf("%02d:%02d Uhr", normalized/60, normalized%60)
	switch {
	case dayOffset <= 0:
		return base
	case dayOffset == 1:
		return base + " (+1 Tag)"
	default:
		return fmt.Sprintf("%s (+%d Tage)", base, dayOffset)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
