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

type ProductVariantInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
	Stock int     `json:"stock" binding:"min=0"`
}

type CreateProductInput struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Brand       string                `json:"brand"`
	Category    string                `json:"category"`
	Price       float64               `json:"price" binding:"required,min=0"`
	Stock       int                   `json:"stock" binding:"min=0"`
	Image       string                `json:"image"`
	Variants    []ProductVariantInput `json:"variants"`
}

type UpdateProductInput struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Brand       *string                `json:"brand"`
	Category    *string                `json:"category"`
	Price       *float64               `json:"price"`
	Stock       *int                   `json:"stock"`
	Image       *string                `json:"image"`
	Variants    *[]ProductVariantInput `json:"variants"`
	IsActive    *bool                  `json:"isActive"`
}

func CreateProduct(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		SalonID:     salonUUID,
		Name:        input.Name,
		Description: input.Description,
		Brand:       input.Brand,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		IsActive:    true,
	}
	for _, v := range input.Variants {
		product.Variants = append(product.Variants, models.ProductVariant{
			Name:  v.Name,
			Price: v.Price,
			Stock: v.Stock,
		})
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func GetProducts(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := config.DB.Preload("Variants").
		Where("salon_id = ?", salonUUID).Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	productUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.Preload("Variants").
		Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

func UpdateProduct(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	productUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateProductInput
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

	var product models.Product
	if err := tx.Preload("Variants").
		Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		First(&product).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	// Replacing variants drops the old set, same as invoice items on update
	if input.Variants != nil {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductVariant{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing variants")
			return
		}
		var variants []models.ProductVariant
		for _, v := range *input.Variants {
			variants = append(variants, models.ProductVariant{
				ProductID: product.ID,
				Name:      v.Name,
				Price:     v.Price,
				Stock:     v.Stock,
			})
		}
		product.Variants = variants
	}

	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	productUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		Delete(&models.Product{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
