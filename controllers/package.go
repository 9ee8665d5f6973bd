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

type PackageServiceInput struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=1"`
}

type CreateBranchPackageInput struct {
	Name         string                `json:"name" binding:"required"`
	Description  string                `json:"description"`
	PackagePrice float64               `json:"packagePrice" binding:"required,min=0"`
	DurationDays int                   `json:"durationDays" binding:"min=1"`
	Services     []PackageServiceInput `json:"services" binding:"required,min=1"`
}

type PurchasePackageInput struct {
	CustomerID      uuid.UUID `json:"customerId" binding:"required"`
	BranchPackageID uuid.UUID `json:"branchPackageId" binding:"required"`
}

func CreateBranchPackage(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateBranchPackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	pkg := models.BranchPackage{
		SalonID:      salonUUID,
		Name:         input.Name,
		Description:  input.Description,
		PackagePrice: input.PackagePrice,
		DurationDays: input.DurationDays,
		IsActive:     true,
	}

	for _, s := range input.Services {
		var service models.Service
		if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, s.ServiceID).
			First(&service).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+s.ServiceID.String())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		pkg.Services = append(pkg.Services, models.BranchPackageService{
			ServiceID: s.ServiceID,
			Quantity:  s.Quantity,
		})
	}

	if err := config.DB.Create(&pkg).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create package")
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

func GetBranchPackages(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var packages []models.BranchPackage
	if err := config.DB.Preload("Services").
		Where("salon_id = ?", salonUUID).Find(&packages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve packages")
		return
	}

	c.JSON(http.StatusOK, packages)
}

func DeleteBranchPackage(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	packageUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, packageUUID).
		Delete(&models.BranchPackage{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete package")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
}

// PurchasePackage enrolls a customer into a package for its duration.
func PurchasePackage(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input PurchasePackageInput
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

	var pkg models.BranchPackage
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, input.BranchPackageID).
		First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	start := time.Now()
	purchase := models.CustomerPackage{
		SalonID:         salonUUID,
		CustomerID:      customer.ID,
		BranchPackageID: pkg.ID,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, pkg.DurationDays),
		IsActive:        true,
	}

	if err := config.DB.Create(&purchase).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to purchase package")
		return
	}

	c.JSON(http.StatusCreated, purchase)
}
