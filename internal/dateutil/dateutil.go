package dateutil

import "time"

const DateFormat = "2006-01-02"

// Clock returns the current time. Metrics and the tracker take a Clock so
// "now"-relative calculations are deterministic under test.
type Clock func() time.Time

// SameDay reports whether two instants fall on the same calendar day,
// ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the signed number of day boundaries crossed going from
// `from` to `to`, as the ceiling of the elapsed duration over 24h. Any
// crossing into a new calendar day counts as at least one day.
func DaysBetween(from, to time.Time) int {
	const day = 24 * time.Hour
	diff := to.Sub(from)
	days := diff / day
	if diff%day != 0 && diff > 0 {
		days++
	}
	return int(days)
}

// WeeksBetween returns the ceiling of the elapsed duration over seven days.
func WeeksBetween(from, to time.Time) int {
	const week = 7 * 24 * time.Hour
	diff := to.Sub(from)
	weeks := diff / week
	if diff%week != 0 && diff > 0 {
		weeks++
	}
	return int(weeks)
}

// NextWeekday returns the first instant on or after `from` whose weekday
// matches wd, preserving from's time-of-day.
func NextWeekday(from time.Time, wd time.Weekday) time.Time {
	t := from
	for t.Weekday() != wd {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// StartOfWeek returns midnight of the most recent weekStart on or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	d := StartOfDay(t)
	for d.Weekday() != weekStart {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
