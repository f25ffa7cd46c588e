package formatter

import (
	"math"
	"strings"

	"github.com/alexanderramin/zeitrechner/internal/app"
	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/charmbracelet/lipgloss"
	drawille "github.com/exrook/drawille-go"
)

const (
	minTimelineWidth = 10
	emptyBraille     = '⠀'
)

// dotX maps a percentage of the span onto the canvas' horizontal dots.
func dotX(pct float64, dots int) int {
	x := int(math.Floor(pct / 100 * float64(dots-1)))
	return max(0, min(dots-1, x))
}

// TimelineTrack draws the start→max bar as one row of braille cells: a
// thick track with full-height ticks at the target and current positions.
// The result is exactly width runes long.
func TimelineTrack(tl app.Timeline, width int) string {
	width = max(width, minTimelineWidth)
	dots := width * 2

	canvas := drawille.NewCanvas()
	for x := range dots {
		canvas.Set(x, 1)
		canvas.Set(x, 2)
	}
	if tl.Valid {
		for _, pct := range []float64{tl.TargetPct, tl.NowPct, tl.MaxPct} {
			x := dotX(pct, dots)
			for y := range 4 {
				canvas.Set(x, y)
			}
		}
	}
	return canvasRow(&canvas, width)
}

// canvasRow returns the first braille row padded or truncated to width runes.
func canvasRow(canvas *drawille.Canvas, width int) string {
	rows := canvas.Rows(0, 0, width*2-1, 3)
	var row []rune
	if len(rows) > 0 {
		row = []rune(rows[0])
	}
	if len(row) > width {
		row = row[:width]
	}
	for len(row) < width {
		row = append(row, emptyBraille)
	}
	return string(row)
}

// RenderTimeline colors the track up to FillPct in the warning color and
// prints the marker labels beneath it.
func RenderTimeline(tl app.Timeline, level domain.WarningLevel, width int) string {
	track := []rune(TimelineTrack(tl, width))
	filled := 0
	if tl.Valid {
		filled = int(math.Round(tl.FillPct / 100 * float64(len(track))))
		filled = max(0, min(len(track), filled))
	}
	fillStyle := lipgloss.NewStyle().Foreground(WarningColor(level))
	bar := fillStyle.Render(string(track[:filled])) + StyleDim.Render(string(track[filled:]))

	labels := strings.Join([]string{
		Dim("Start ") + tl.StartLabel,
		Dim("Jetzt ") + tl.NowLabel,
		Dim("Soll ") + tl.TargetLabel,
		Dim("Max ") + tl.MaxLabel,
	}, Dim("  ·  "))
	return bar + "\n" + labels
}
