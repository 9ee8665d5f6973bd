package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/services"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

type CommissionSlotInput struct {
	Slot   string  `json:"slot" binding:"required"` // "min-max", e.g. "0-500"
	Amount float64 `json:"amount" binding:"min=0"`
}

type CreateRevenueCommissionInput struct {
	CommissionName string                `json:"commissionName" binding:"required"`
	CommissionType string                `json:"commissionType" binding:"required,oneof=Percentage flat"`
	Slots          []CommissionSlotInput `json:"slots" binding:"required,min=1"`
}

type UpdateRevenueCommissionInput struct {
	CommissionName *string                `json:"commissionName"`
	CommissionType *string                `json:"commissionType" binding:"omitempty,oneof=Percentage flat"`
	Slots          *[]CommissionSlotInput `json:"slots" binding:"omitempty,min=1"`
}

func CreateRevenueCommission(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateRevenueCommissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	rc := models.RevenueCommission{
		SalonID:        salonUUID,
		CommissionName: input.CommissionName,
		CommissionType: input.CommissionType,
	}
	for i, s := range input.Slots {
		if _, _, err := services.ParseSlotRange(s.Slot); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot range: "+s.Slot)
			return
		}
		rc.Slots = append(rc.Slots, models.CommissionSlot{
			Slot:     s.Slot,
			Amount:   s.Amount,
			Position: i,
		})
	}

	if err := config.DB.Create(&rc).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create revenue commission")
		return
	}

	c.JSON(http.StatusCreated, rc)
}

func GetRevenueCommissions(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var commissions []models.RevenueCommission
	if err := config.DB.Preload("Slots").
		Where("salon_id = ?", salonUUID).Find(&commissions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve revenue commissions")
		return
	}

	c.JSON(http.StatusOK, commissions)
}

func UpdateRevenueCommission(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	rcUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateRevenueCommissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var rc models.RevenueCommission
	if err := tx.Preload("Slots").
		Where("salon_id = ? AND id = ?", salonUUID, rcUUID).
		First(&rc).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Revenue commission not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CommissionName != nil {
		rc.CommissionName = *input.CommissionName
	}
	if input.CommissionType != nil {
		rc.CommissionType = *input.CommissionType
	}
	if input.Slots != nil {
		if err := tx.Where("revenue_commission_id = ?", rc.ID).
			Delete(&models.CommissionSlot{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing slots")
			return
		}
		var slots []models.CommissionSlot
		for i, s := range *input.Slots {
			if _, _, err := services.ParseSlotRange(s.Slot); err != nil {
				tx.Rollback()
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot range: "+s.Slot)
				return
			}
			slots = append(slots, models.CommissionSlot{
				RevenueCommissionID: rc.ID,
				Slot:                s.Slot,
				Amount:              s.Amount,
				Position:            i,
			})
		}
		rc.Slots = slots
	}

	if err := tx.Save(&rc).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update revenue commission")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, rc)
}

func DeleteRevenueCommission(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	rcUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, rcUUID).
		Delete(&models.RevenueCommission{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete revenue commission")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Revenue commission not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Revenue commission deleted successfully"})
}
