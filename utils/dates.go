// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// BeginningOfDayUTC truncates to the UTC calendar day. Reporting buckets are
// keyed by UTC date components regardless of server locale.
func BeginningOfDayUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayKeyUTC formats the UTC calendar day as "2006-01-02".
func DayKeyUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
