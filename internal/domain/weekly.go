package domain

import "time"

// WeeklyEntries maps an ISO date to the minutes saved for that day.
type WeeklyEntries map[string]int

// WeekTotal sums the saved minutes of the seven days of the week containing t.
func (e WeeklyEntries) WeekTotal(t time.Time) int {
	total := 0
	for _, d := range WeekDates(WeekStart(t)) {
		total += e[ISODate(d)]
	}
	return total
}

// RemoveWeek deletes every entry of the week containing t and returns how many
// entries were removed.
func (e WeeklyEntries) RemoveWeek(t time.Time) int {
	removed := 0
	for _, d := range WeekDates(WeekStart(t)) {
		key := ISODate(d)
		if e[key] != 0 {
			delete(e, key)
			removed++
		}
	}
	return removed
}

// Revision identifies one stored version of a key and the process that wrote
// it.
type Revision struct {
	Number int64
	Origin string
}
