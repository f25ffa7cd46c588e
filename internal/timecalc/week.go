package timecalc

import (
	"time"

	"github.com/alexanderramin/zeitrechner/internal/app"
	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// BuildWeek assembles the Monday–Sunday view for the week containing now.
// A day is listed when it has saved minutes, or when it is today and live
// minutes are running. The total counts saved minutes only.
func BuildWeek(entries domain.WeeklyEntries, liveMin int, now time.Time) app.WeekView {
	weekStart := domain.WeekStart(now)
	todayKey := domain.ISODate(now)

	view := app.WeekView{
		WeekStart: domain.ISODate(weekStart),
		Days:      []app.WeekDay{},
		TotalMin:  entries.WeekTotal(now),
	}

	for i, date := range domain.WeekDates(weekStart) {
		key := domain.ISODate(date)
		saved := entries[key]

		isToday := key == todayKey
		showLive := isToday && liveMin > 0
		if saved <= 0 && !showLive {
			continue
		}

		day := app.WeekDay{
			Label:    domain.DayLabels[i],
			Date:     key,
			SavedMin: saved,
			IsToday:  isToday,
			ShowLive: showLive,
		}
		if showLive {
			day.LiveMin = liveMin
			if saved > 0 {
				day.DiffMin = max(0, liveMin-saved)
			}
		}
		view.Days = append(view.Days, day)
	}

	view.Empty = len(view.Days) == 0
	return view
}
