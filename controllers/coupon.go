package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/services"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

type CreateCouponInput struct {
	Name           string     `json:"name" binding:"required"`
	Code           string     `json:"code" binding:"required"`
	Description    string     `json:"description"`
	DiscountType   string     `json:"discountType" binding:"required,oneof=percent flat"`
	DiscountAmount float64    `json:"discountAmount" binding:"required,min=0"`
	UseLimit       int        `json:"useLimit" binding:"min=0"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
}

type UpdateCouponInput struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	DiscountType   *string    `json:"discountType" binding:"omitempty,oneof=percent flat"`
	DiscountAmount *float64   `json:"discountAmount" binding:"omitempty,min=0"`
	UseLimit       *int       `json:"useLimit" binding:"omitempty,min=0"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	IsActive       *bool      `json:"isActive"`
}

func CreateCoupon(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.DiscountType == services.CouponDiscountPercent && input.DiscountAmount > 100 {
		utils.RespondWithError(c, http.StatusBadRequest, "Percent discount cannot exceed 100")
		return
	}

	coupon := models.Coupon{
		SalonID:        salonUUID,
		Name:           input.Name,
		Code:           input.Code,
		Description:    input.Description,
		DiscountType:   input.DiscountType,
		DiscountAmount: input.DiscountAmount,
		UseLimit:       input.UseLimit,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		IsActive:       true,
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create coupon")
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

func GetCoupons(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var coupons []models.Coupon
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&coupons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve coupons")
		return
	}

	c.JSON(http.StatusOK, coupons)
}

func GetCoupon(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	couponUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var coupon models.Coupon
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, couponUUID).
		First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, coupon)
}

func UpdateCoupon(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	couponUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var coupon models.Coupon
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, couponUUID).
		First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		coupon.Name = *input.Name
	}
	if input.Description != nil {
		coupon.Description = *input.Description
	}
	if input.DiscountType != nil {
		coupon.DiscountType = *input.DiscountType
	}
	if input.DiscountAmount != nil {
		coupon.DiscountAmount = *input.DiscountAmount
	}
	if input.UseLimit != nil {
		coupon.UseLimit = *input.UseLimit
	}
	if input.StartDate != nil {
		coupon.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		coupon.EndDate = input.EndDate
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&coupon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update coupon")
		return
	}

	c.JSON(http.StatusOK, coupon)
}

func DeleteCoupon(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	couponUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, couponUUID).
		Delete(&models.Coupon{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete coupon")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}
