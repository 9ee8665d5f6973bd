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
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

type CreateBranchMembershipInput struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	Discount         float64 `json:"discount" binding:"required,min=0"`
	DiscountType     string  `json:"discountType" binding:"required,oneof=percentage flat"`
	SubscriptionPlan string  `json:"subscriptionPlan" binding:"required"`
	MembershipAmount float64 `json:"membershipAmount" binding:"required,min=0"`
}

type UpdateBranchMembershipInput struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Discount         *float64 `json:"discount" binding:"omitempty,min=0"`
	DiscountType     *string  `json:"discountType" binding:"omitempty,oneof=percentage flat"`
	SubscriptionPlan *string  `json:"subscriptionPlan"`
	MembershipAmount *float64 `json:"membershipAmount" binding:"omitempty,min=0"`
	IsActive         *bool    `json:"isActive"`
}

type PurchaseMembershipInput struct {
	CustomerID         uuid.UUID `json:"customerId" binding:"required"`
	BranchMembershipID uuid.UUID `json:"branchMembershipId" binding:"required"`
}

// subscriptionPlanEnd resolves a plan token into the membership end date.
// "lifetime" memberships have no end date.
func subscriptionPlanEnd(plan string, start time.Time) *time.Time {
	var end time.Time
	switch plan {
	case "lifetime":
		return nil
	case "1-month":
		end = start.AddDate(0, 1, 0)
	case "3-months":
		end = start.AddDate(0, 3, 0)
	case "6-months":
		end = start.AddDate(0, 6, 0)
	case "1-year":
		end = start.AddDate(1, 0, 0)
	default:
		// Unknown token behaves like the shortest plan rather than failing
		end = start.AddDate(0, 1, 0)
	}
	return &end
}

func CreateBranchMembership(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateBranchMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	membership := models.BranchMembership{
		SalonID:          salonUUID,
		Name:             input.Name,
		Description:      input.Description,
		Discount:         input.Discount,
		DiscountType:     input.DiscountType,
		SubscriptionPlan: input.SubscriptionPlan,
		MembershipAmount: input.MembershipAmount,
		IsActive:         true,
	}

	if err := config.DB.Create(&membership).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create membership")
		return
	}

	c.JSON(http.StatusCreated, membership)
}

func GetBranchMemberships(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var memberships []models.BranchMembership
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&memberships).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve memberships")
		return
	}

	c.JSON(http.StatusOK, memberships)
}

func UpdateBranchMembership(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	membershipUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateBranchMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var membership models.BranchMembership
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, membershipUUID).
		First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Membership not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		membership.Name = *input.Name
	}
	if input.Description != nil {
		membership.Description = *input.Description
	}
	if input.Discount != nil {
		membership.Discount = *input.Discount
	}
	if input.DiscountType != nil {
		membership.DiscountType = *input.DiscountType
	}
	if input.SubscriptionPlan != nil {
		membership.SubscriptionPlan = *input.SubscriptionPlan
	}
	if input.MembershipAmount != nil {
		membership.MembershipAmount = *input.MembershipAmount
	}
	if input.IsActive != nil {
		membership.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&membership).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update membership")
		return
	}

	c.JSON(http.StatusOK, membership)
}

func DeleteBranchMembership(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	membershipUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, membershipUUID).
		Delete(&models.BranchMembership{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete membership")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Membership not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Membership deleted successfully"})
}

// PurchaseMembership enrolls a customer into a membership plan. The purchase
// appends to the customer's membership history; settlement only ever consults
// the active entry with the latest end date.
func PurchaseMembership(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input PurchaseMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.CustomerID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var plan models.BranchMembership
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.BranchMembershipID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Membership plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	start := time.Now()
	purchase := models.CustomerMembership{
		SalonID:            salonUUID,
		CustomerID:         customer.ID,
		BranchMembershipID: plan.ID,
		StartDate:          start,
		EndDate:            subscriptionPlanEnd(plan.SubscriptionPlan, start),
		IsActive:           true,
	}

	if err := config.DB.Create(&purchase).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to purchase membership")
		return
	}

	c.JSON(http.StatusCreated, purchase)
}
