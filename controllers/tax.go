package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

type CreateTaxInput struct {
	Title string  `json:"title" binding:"required"`
	Type  string  `json:"type" binding:"required,oneof=percent flat"`
	Value float64 `json:"value" binding:"required,min=0"`
}

type UpdateTaxInput struct {
	Title    *string  `json:"title"`
	Type     *string  `json:"type" binding:"omitempty,oneof=percent flat"`
	Value    *float64 `json:"value" binding:"omitempty,min=0"`
	IsActive *bool    `json:"isActive"`
}

func CreateTax(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateTaxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tax := models.Tax{
		SalonID:  salonUUID,
		Title:    input.Title,
		Type:     input.Type,
		Value:    input.Value,
		IsActive: true,
	}

	if err := config.DB.Create(&tax).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tax")
		return
	}

	c.JSON(http.StatusCreated, tax)
}

func GetTaxes(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var taxes []models.Tax
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&taxes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve taxes")
		return
	}

	c.JSON(http.StatusOK, taxes)
}

func UpdateTax(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	taxUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateTaxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var tax models.Tax
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, taxUUID).
		First(&tax).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tax not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		tax.Title = *input.Title
	}
	if input.Type != nil {
		tax.Type = *input.Type
	}
	if input.Value != nil {
		tax.Value = *input.Value
	}
	if input.IsActive != nil {
		tax.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&tax).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update tax")
		return
	}

	c.JSON(http.StatusOK, tax)
}

func DeleteTax(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	taxUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, taxUUID).
		Delete(&models.Tax{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete tax")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Tax not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tax deleted successfully"})
}
