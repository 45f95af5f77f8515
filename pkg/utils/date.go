package utils

import "time"

// DateLayout is the calendar-day format used across the analyzer.
const DateLayout = "2006-01-02"

// IsBusinessDay reports whether t falls on a weekday. No holiday calendar
// is applied.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BusinessDays returns every weekday between start and end, inclusive,
// in chronological order.
func BusinessDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days
}
