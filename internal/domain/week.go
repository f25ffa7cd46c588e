package domain

import "time"

// DayLabels are the short German weekday labels, Monday first.
var DayLabels = [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}

// WeekStart returns the Monday of the week containing t, at local midnight in
// t's location.
func WeekStart(t time.Time) time.Time {
	day := int(t.Weekday())
	offset := 1 - day
	if day == 0 {
		offset = -6
	}
	y, m, d := t.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, t.Location())
}

// WeekDates returns the seven consecutive dates starting at weekStart.
func WeekDates(weekStart time.Time) [7]time.Time {
	var dates [7]time.Time
	y, m, d := weekStart.Date()
	for i := range dates {
		dates[i] = time.Date(y, m, d+i, 0, 0, 0, 0, weekStart.Location())
	}
	return dates
}

// ISODate formats t as YYYY-MM-DD using its own calendar fields, not UTC.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
