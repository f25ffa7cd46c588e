package formatter

import (
	"strings"

	"github.com/alexanderramin/zeitrechner/internal/contract"
)

const (
	outputLabelWidth = 11
	noteIndent       = outputLabelWidth + 2
	TimelineWidth    = 40
)

// FormatInputs renders the current inputs on one line. A missing start shows
// the placeholder.
func FormatInputs(view contract.SessionView) string {
	start := view.Input.Start
	if start == "" {
		start = "--:--"
	}
	return strings.Join([]string{
		Dim("Start ") + Bold(start),
		Dim("Pause ") + Bold(view.Input.Break),
		Dim("Soll ") + Bold(view.Input.Target),
	}, Dim("  ·  "))
}

// FormatSession renders the three outputs with their notes and the timeline.
func FormatSession(view contract.SessionView) string {
	var b strings.Builder
	note := func(text string) {
		b.WriteString(strings.Repeat(" ", noteIndent) + text + "\n")
	}

	b.WriteString(labelValue("Arbeitszeit", outputLabelWidth, Bold(view.Worked)) + "\n")
	note(Dim(view.CurrentNote))
	b.WriteString(labelValue("Sollzeit", outputLabelWidth, Bold(view.TargetEnd)) + "\n")
	note(Dim(view.TargetNote))

	maxValue := WarningStyle(view.Warning.Level).Render(view.MaxEnd)
	if view.Valid {
		maxValue += "  " + WarningIndicator(view.Warning.Level)
	}
	b.WriteString(labelValue("10-h-Grenze", outputLabelWidth, maxValue) + "\n")
	note(WarningStyle(view.Warning.Level).Render(view.Warning.Message))

	b.WriteString("\n")
	b.WriteString(RenderTimeline(view.Timeline, view.Warning.Level, TimelineWidth))
	b.WriteString("\n")
	return b.String()
}

// FormatStatus renders a full status response for one-shot CLI output.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder
	b.WriteString(FormatInputs(resp.Session) + "\n\n")
	b.WriteString(FormatSession(resp.Session))
	b.WriteString("\n")
	b.WriteString(FormatWeek(resp.Week))
	return RenderBox("Zeitrechner", strings.TrimRight(b.String(), "\n"))
}
