package timecalc

import (
	"fmt"
	"math"

	"github.com/alexanderramin/zeitrechner/internal/domain"
)

const (
	dangerMessage  = "Achtung: 10-Stunden-Grenze erreicht. Jetzt beenden!"
	neutralMessage = "Absolute Grenze einschliesslich Pause"
)

// EvaluateWarning classifies the distance to the 10-hour cap.
// limitDiff = round(EndAtMax - CurrentMinutes); <=0 is danger, <=30 warning.
func EvaluateWarning(state domain.SessionState) domain.Warning {
	if !state.Valid {
		return domain.Warning{Level: domain.WarningNeutral, Message: neutralMessage}
	}
	return classifyLimit(RoundMinutes(float64(state.EndAtMax) - state.CurrentMinutes))
}

func classifyLimit(limitDiff int) domain.Warning {
	if limitDiff <= 0 {
		return domain.Warning{Level: domain.WarningDanger, RemainingMin: limitDiff, Message: dangerMessage}
	}
	if limitDiff <= domain.WarningThresholdMinutes {
		return domain.Warning{
			Level:        domain.WarningSoon,
			RemainingMin: limitDiff,
			Message:      fmt.Sprintf("Nur noch %s bis zur 10-Stunden-Grenze.", FormatDuration(float64(limitDiff))),
		}
	}
	return domain.Warning{Level: domain.WarningNeutral, RemainingMin: limitDiff, Message: neutralMessage}
}

// clamp bounds v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
