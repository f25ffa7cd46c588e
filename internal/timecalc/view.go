package timecalc

import (
	"github.com/alexanderramin/zeitrechner/internal/app"
	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// BuildSessionView renders a snapshot into display strings. An invalid
// snapshot yields placeholders and a reset timeline.
func BuildSessionView(in domain.SessionInput, state domain.SessionState) app.SessionView {
	view := app.SessionView{
		Valid:       state.Valid,
		Input:       in,
		Worked:      app.OutputPlaceholder,
		TargetEnd:   app.OutputPlaceholder,
		MaxEnd:      app.OutputPlaceholder,
		CurrentNote: app.NoteCurrent,
		TargetNote:  app.NoteTarget,
		Warning:     EvaluateWarning(state),
		Timeline:    BuildTimeline(state),
	}
	if !state.Valid {
		return view
	}

	view.Worked = FormatDuration(state.WorkedMinutes)
	view.TargetEnd = FormatClockTime(float64(state.EndAtTarget))
	view.MaxEnd = FormatClockTime(float64(state.EndAtMax))
	return view
}
