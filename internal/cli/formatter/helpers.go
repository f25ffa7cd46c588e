package formatter

import (
	"strings"

	"github.com/alexanderramin/zeitrechner/internal/timecalc"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Duration renders whole minutes the way the dashboard shows them.
func Duration(minutes int) string {
	return timecalc.FormatDuration(float64(minutes))
}

// labelValue renders "Label  value" with the label dimmed and padded to width.
func labelValue(label string, width int, value string) string {
	pad := width - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}
	return Dim(label) + strings.Repeat(" ", pad+2) + value
}
