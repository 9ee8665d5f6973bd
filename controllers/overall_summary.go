// controllers/overall_summary.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/services"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

// GetOverallSummary returns the revenue rollup over a date range. Both bounds
// are optional and inclusive; the default range is today. Dates are UTC
// calendar days in YYYY-MM-DD form.
func GetOverallSummary(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	start := utils.BeginningOfDayUTC(time.Now())
	end := start.AddDate(0, 0, 1)

	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if e := c.Query("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		end = parsed.AddDate(0, 0, 1)
	}

	if !end.After(start) {
		utils.RespondWithError(c, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

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

	summary := services.SummarizeRange(appointments, payments)

	c.JSON(http.StatusOK, gin.H{
		"start_date": utils.DayKeyUTC(start),
		"end_date":   utils.DayKeyUTC(end.AddDate(0, 0, -1)),
		"summary":    summary,
	})
}
