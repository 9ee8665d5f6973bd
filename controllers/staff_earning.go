// controllers/staff_earning.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/services"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

type PayStaffInput struct {
	SalonID       *uuid.UUID `json:"salon_id"`
	PaymentMethod string     `json:"payment_method" binding:"required"`
	Description   string     `json:"description"`
	// When true the staff member's monthly salary is included in the payout.
	IncludeSalary bool `json:"include_salary"`
}

// GetStaffEarnings returns the live-computed earning snapshot for every
// active staff member of a salon.
func GetStaffEarnings(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	snaps, err := services.NewEarningService(config.DB).SnapshotAll(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute staff earnings")
		return
	}

	c.JSON(http.StatusOK, snaps)
}

func GetStaffEarning(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	staffUUID, ok := pathUUID(c, "staff_id")
	if !ok {
		return
	}

	snap, err := services.NewEarningService(config.DB).Snapshot(salonUUID, staffUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute staff earnings")
		}
		return
	}

	c.JSON(http.StatusOK, snap)
}

// PayStaff settles everything a staff member is currently owed. One
// transaction records the payout, stamps the attributed service lines as paid
// with their earned commission, zeroes the accumulator and moves the earning
// watermark to now. Lines stamped here never count toward a later payout.
func PayStaff(c *gin.Context) {
	staffUUID, ok := pathUUID(c, "staff_id")
	if !ok {
		return
	}

	var input PayStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// salon_id is accepted in the body (matching the other payout clients) or
	// as a query parameter.
	var salonUUID uuid.UUID
	if input.SalonID != nil {
		salonUUID = *input.SalonID
	} else {
		salonUUID, ok = salonIDFromQuery(c)
		if !ok {
			return
		}
	}

	var staff models.Staff
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	snap, err := services.NewEarningService(config.DB).Snapshot(salonUUID, staffUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute staff earnings")
		return
	}

	salary := 0.0
	if input.IncludeSalary {
		salary = staff.Salary
	}
	totalPay := services.Round2(snap.CommissionEarning + snap.TipEarning + salary)

	if totalPay <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Nothing to pay out")
		return
	}

	now := time.Now()
	payout := models.StaffPayout{
		ID:               uuid.New(),
		SalonID:          salonUUID,
		StaffID:          staff.ID,
		CommissionAmount: snap.CommissionEarning,
		TipAmount:        snap.TipEarning,
		SalaryAmount:     salary,
		TotalPay:         totalPay,
		PaymentMethod:    input.PaymentMethod,
		Description:      input.Description,
		PayoutDate:       now,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&payout).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payout")
		return
	}

	for _, line := range snap.Lines {
		if err := tx.Model(&models.AppointmentService{}).
			Where("id = ? AND paid = false", line.ServiceLineID).
			Updates(map[string]interface{}{
				"paid":              true,
				"commission_earned": line.Commission,
			}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to mark service lines paid")
			return
		}
	}

	if err := tx.Model(&models.StaffEarning{}).
		Where("staff_id = ?", staff.ID).
		Updates(map[string]interface{}{
			"total_booking":      0,
			"service_amount":     0,
			"commission_earning": 0,
			"tip_earning":        0,
			"staff_earning":      0,
			"earning_start_date": now,
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset staff earnings")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to commit payout")
		return
	}

	c.JSON(http.StatusCreated, payout)
}

// GetStaffPayouts lists a salon's payout history, optionally filtered by
// staff member.
func GetStaffPayouts(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	query := config.DB.Where("salon_id = ?", salonUUID)
	if staffID := c.Query("staff_id"); staffID != "" {
		id, err := uuid.Parse(staffID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff_id")
			return
		}
		query = query.Where("staff_id = ?", id)
	}

	var payouts []models.StaffPayout
	if err := query.Order("payout_date DESC").Find(&payouts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payouts")
		return
	}

	c.JSON(http.StatusOK, payouts)
}
