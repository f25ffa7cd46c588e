package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/zeitrechner/internal/app"
)

const (
	WeekEmptyText    = "Noch keine Eintraege in dieser Woche."
	savedPlaceholder = "-"
)

// LiveAnnotation renders today's running time, with the lead over the saved
// value when there is one.
func LiveAnnotation(day app.WeekDay) string {
	if !day.ShowLive {
		return ""
	}
	if day.SavedMin > 0 && day.DiffMin > 0 {
		return fmt.Sprintf("Live: %s (+%s)", Duration(day.LiveMin), Duration(day.DiffMin))
	}
	return "Live: " + Duration(day.LiveMin)
}

// SavedColumn renders the stored duration of a day or "-" when none exists.
func SavedColumn(day app.WeekDay) string {
	if day.SavedMin <= 0 {
		return savedPlaceholder
	}
	return Duration(day.SavedMin)
}

// FormatWeek renders the weekly list with its total.
func FormatWeek(week app.WeekView) string {
	var b strings.Builder
	b.WriteString(Header("Woche ab " + week.WeekStart))
	b.WriteString("\n")

	if week.Empty {
		b.WriteString(Dim(WeekEmptyText))
		b.WriteString("\n\n")
	} else {
		rows := make([][]string, 0, len(week.Days))
		for _, day := range week.Days {
			label := day.Label
			if day.IsToday {
				label = StyleBlue.Render(label)
			}
			rows = append(rows, []string{
				label,
				Dim(day.Date),
				SavedColumn(day),
				StyleGreen.Render(LiveAnnotation(day)),
			})
		}
		b.WriteString(RenderTable([]string{"TAG", "DATUM", "GESPEICHERT", ""}, rows))
		b.WriteString("\n")
	}

	b.WriteString(labelValue("Summe", 5, Bold(Duration(week.TotalMin))))
	b.WriteString("\n")
	return b.String()
}
