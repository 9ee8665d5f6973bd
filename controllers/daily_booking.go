// controllers/daily_booking.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/services"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

// dailyBookingWindowDays is the rolling window of the daily booking report.
const dailyBookingWindowDays = 14

// GetDailyBooking returns per-day booking and revenue figures for the last 14
// days, today included. Days with no appointments come back zero-filled so
// dashboard charts always see a full series.
func GetDailyBooking(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	end := utils.BeginningOfDayUTC(time.Now()).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -dailyBookingWindowDays)

	var appointments []models.Appointment
	if err := config.DB.Preload("Services").
		Where("salon_id = ? AND appointment_date >= ? AND appointment_date < ?", salonUUID, start, end).
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	payments, err := paymentsForAppointments(salonUUID, appointments)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	days := services.SummarizeByDayUTC(appointments, payments)

	c.JSON(http.StatusOK, buildDailySeries(days, start, end))
}

// buildDailySeries walks every UTC day in [start, end) in order, filling
// gaps with an empty summary so the series always covers the whole window.
func buildDailySeries(days map[string]*services.DaySummary, start, end time.Time) []services.DaySummary {
	series := make([]services.DaySummary, 0, dailyBookingWindowDays)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := utils.DayKeyUTC(d)
		if day, ok := days[key]; ok {
			series = append(series, *day)
		} else {
			series = append(series, services.DaySummary{Date: key})
		}
	}
	return series
}

func paymentsForAppointments(salonID uuid.UUID, appointments []models.Appointment) ([]models.Payment, error) {
	if len(appointments) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(appointments))
	for _, a := range appointments {
		ids = append(ids, a.ID)
	}
	var payments []models.Payment
	if err := config.DB.Where("salon_id = ? AND appointment_id IN ?", salonID, ids).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
