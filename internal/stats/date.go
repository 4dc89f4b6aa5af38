// Package stats implements the streak and adherence computation engine.
// Every function here is a pure computation over already-loaded habit
// and log snapshots: no I/O, no wall clock.  The reference day
// ("today") is always an explicit argument so callers and tests can
// inject arbitrary dates.
package stats

import "time"

// DateOf strips the time component, returning midnight UTC of the
// same calendar date.  All map keys and date comparisons in this
// package go through DateOf so that logs loaded with differing time
// or location components still land on the same logical day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekdayCode maps a date onto the frequency convention used in
// habit schedules: Monday=2 through Sunday=8 (ISO weekday + 1).
func WeekdayCode(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // time.Sunday
		return 8
	}
	return wd + 1
}
