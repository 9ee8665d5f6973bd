// controllers/daily_booking_test.go
package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iFloriana/backend-ifloriana-sub000/services"
)

func TestBuildDailySeries_ZeroFillsEmptyDays(t *testing.T) {
	end := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -dailyBookingWindowDays)

	// Activity on only two of the fourteen days.
	days := map[string]*services.DaySummary{
		"2026-03-03": {Date: "2026-03-03", AppointmentCount: 2, FinalTotal: 900},
		"2026-03-10": {Date: "2026-03-10", AppointmentCount: 1, FinalTotal: 300},
	}

	series := buildDailySeries(days, start, end)

	require.Len(t, series, dailyBookingWindowDays)

	// Every day of the window appears, in order, oldest first.
	assert.Equal(t, "2026-03-01", series[0].Date)
	assert.Equal(t, "2026-03-14", series[len(series)-1].Date)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}

	var active int
	for _, day := range series {
		switch day.Date {
		case "2026-03-03":
			assert.Equal(t, 2, day.AppointmentCount)
			assert.Equal(t, 900.0, day.FinalTotal)
			active++
		case "2026-03-10":
			assert.Equal(t, 1, day.AppointmentCount)
			assert.Equal(t, 300.0, day.FinalTotal)
			active++
		default:
			assert.Equal(t, services.DaySummary{Date: day.Date}, day)
		}
	}
	assert.Equal(t, 2, active)
}

func TestBuildDailySeries_EmptyWindowIsAllZeroes(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	series := buildDailySeries(nil, start, end)

	require.Len(t, series, 3)
	for _, day := range series {
		assert.Zero(t, day.AppointmentCount)
		assert.Zero(t, day.FinalTotal)
		assert.NotEmpty(t, day.Date)
	}
}
