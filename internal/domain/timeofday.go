package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is an hours/minutes pair parsed from an HH:MM string. Both fields
// are taken as written: "25:99" is a valid TimeOfDay.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay splits value on ':' and parses the first two components as
// integers. A blank component counts as zero, so "08:" is 08:00 and ":30" is
// 00:30. It reports false for empty input, a missing minutes component or
// any component that is not a number. Extra components are ignored.
func ParseTimeOfDay(value string) (TimeOfDay, bool) {
	if value == "" {
		return TimeOfDay{}, false
	}
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return TimeOfDay{}, false
	}
	hours, ok := parseClockComponent(parts[0])
	if !ok {
		return TimeOfDay{}, false
	}
	minutes, ok := parseClockComponent(parts[1])
	if !ok {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: hours, Minute: minutes}, true
}

func parseClockComponent(part string) (int, bool) {
	part = strings.TrimSpace(part)
	if part == "" {
		return 0, true
	}
	n, err := strconv.Atoi(part)
	return n, err == nil
}

// Minutes returns the offset in minutes: hours*60 + minutes.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String renders the value zero-padded as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ClockOf returns the local wall-clock hours and minutes of t.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}
