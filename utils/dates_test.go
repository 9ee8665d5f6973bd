// utils/dates_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKeyUTC_NormalizesZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	// 03:00 IST is 21:30 UTC the previous day.
	local := time.Date(2026, 3, 11, 3, 0, 0, 0, ist)
	assert.Equal(t, "2026-03-10", DayKeyUTC(local))

	utc := time.Date(2026, 3, 11, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-11", DayKeyUTC(utc))
}

func TestBeginningOfDayUTC(t *testing.T) {
	in := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), BeginningOfDayUTC(in))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, 9, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}
