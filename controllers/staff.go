package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

type CreateStaffInput struct {
	Name                string     `json:"name" binding:"required"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone" binding:"required"`
	Gender              string     `json:"gender"`
	Image               string     `json:"image"`
	Salary              float64    `json:"salary" binding:"min=0"`
	BranchID            *uuid.UUID `json:"branchId"`
	RevenueCommissionID *uuid.UUID `json:"revenueCommissionId"`
}

type UpdateStaffInput struct {
	Name                *string    `json:"name"`
	Email               *string    `json:"email"`
	Phone               *string    `json:"phone"`
	Gender              *string    `json:"gender"`
	Image               *string    `json:"image"`
	Salary              *float64   `json:"salary"`
	BranchID            *uuid.UUID `json:"branchId"`
	RevenueCommissionID *uuid.UUID `json:"revenueCommissionId"`
	IsActive            *bool      `json:"isActive"`
}

func CreateStaff(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// A commission assignment must reference a table in the same salon
	if input.RevenueCommissionID != nil {
		var rc models.RevenueCommission
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.RevenueCommissionID).
			First(&rc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Revenue commission not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	staff := models.Staff{
		SalonID:             salonUUID,
		BranchID:            input.BranchID,
		Name:                input.Name,
		Email:               input.Email,
		Phone:               input.Phone,
		Gender:              input.Gender,
		Image:               input.Image,
		Salary:              input.Salary,
		RevenueCommissionID: input.RevenueCommissionID,
		IsActive:            true,
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func GetStaffList(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var staff []models.Staff
	if err := config.DB.Preload("RevenueCommission.Slots").
		Where("salon_id = ?", salonUUID).Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

func GetStaff(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	staffUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := config.DB.Preload("RevenueCommission.Slots").
		Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, staff)
}

func UpdateStaff(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	staffUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
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

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Email != nil {
		staff.Email = *input.Email
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		staff.Phone = *input.Phone
	}
	if input.Gender != nil {
		staff.Gender = *input.Gender
	}
	if input.Image != nil {
		staff.Image = *input.Image
	}
	if input.Salary != nil {
		staff.Salary = *input.Salary
	}
	if input.BranchID != nil {
		staff.BranchID = input.BranchID
	}
	if input.RevenueCommissionID != nil {
		var rc models.RevenueCommission
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, *input.RevenueCommissionID).
			First(&rc).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Revenue commission not found")
			return
		}
		staff.RevenueCommissionID = input.RevenueCommissionID
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

func DeleteStaff(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	staffUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		Delete(&models.Staff{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}
