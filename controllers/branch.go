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

type CreateBranchInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Image   string `json:"image"`
}

type UpdateBranchInput struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Image    *string `json:"image"`
	IsActive *bool   `json:"isActive"`
}

func CreateBranch(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateBranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	branch := models.Branch{
		SalonID:  salonUUID,
		Name:     input.Name,
		Address:  input.Address,
		Phone:    input.Phone,
		Image:    input.Image,
		IsActive: true,
	}

	if err := config.DB.Create(&branch).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create branch")
		return
	}

	c.JSON(http.StatusCreated, branch)
}

func GetBranches(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var branches []models.Branch
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&branches).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve branches")
		return
	}

	c.JSON(http.StatusOK, branches)
}

func GetBranch(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	branchUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var branch models.Branch
	if err := config.DB.Preload("Staff").
		Where("salon_id = ? AND id = ?", salonUUID, branchUUID).
		First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Branch not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, branch)
}

func UpdateBranch(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	branchUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateBranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var branch models.Branch
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, branchUUID).
		First(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Branch not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		branch.Name = *input.Name
	}
	if input.Address != nil {
		branch.Address = *input.Address
	}
	if input.Phone != nil {
		branch.Phone = *input.Phone
	}
	if input.Image != nil {
		branch.Image = *input.Image
	}
	if input.IsActive != nil {
		branch.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&branch).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update branch")
		return
	}

	c.JSON(http.StatusOK, branch)
}

func DeleteBranch(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	branchUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, branchUUID).
		Delete(&models.Branch{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete branch")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Branch not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted successfully"})
}
