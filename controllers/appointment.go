// controllers/appointment.go
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

type AppointmentServiceInput struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	StaffID   uuid.UUID `json:"staffId" binding:"required"`
}

type AppointmentProductInput struct {
	ProductID uuid.UUID  `json:"productId" binding:"required"`
	VariantID *uuid.UUID `json:"variantId"`
	Quantity  int        `json:"quantity" binding:"min=1"`
}

type CreateAppointmentInput struct {
	CustomerID      uuid.UUID                 `json:"customerId" binding:"required"`
	BranchID        *uuid.UUID                `json:"branchId"`
	AppointmentDate time.Time                 `json:"appointmentDate" binding:"required"`
	Services        []AppointmentServiceInput `json:"services" binding:"required,min=1"`
	Products        []AppointmentProductInput `json:"products"`
	Notes           string                    `json:"notes"`
}

type UpdateAppointmentInput struct {
	AppointmentDate *time.Time                 `json:"appointmentDate"`
	Status          *string                    `json:"status" binding:"omitempty,oneof=upcoming checked-in check-out cancelled"`
	Services        *[]AppointmentServiceInput `json:"services"`
	Products        *[]AppointmentProductInput `json:"products"`
	Notes           *string                    `json:"notes"`
}

// snapshotServices resolves service lines against the catalog, freezing the
// current price into each row.
func snapshotServices(db *gorm.DB, salonID uuid.UUID, inputs []AppointmentServiceInput) ([]models.AppointmentService, float64, error) {
	var lines []models.AppointmentService
	var total float64
	for _, in := range inputs {
		var service models.Service
		if err := db.Where("salon_id = ? AND id = ?", salonID, in.ServiceID).
			First(&service).Error; err != nil {
			return nil, 0, err
		}
		var staff models.Staff
		if err := db.Where("salon_id = ? AND id = ?", salonID, in.StaffID).
			First(&staff).Error; err != nil {
			return nil, 0, err
		}
		lines = append(lines, models.AppointmentService{
			ID:            uuid.New(),
			ServiceID:     service.ID,
			StaffID:       staff.ID,
			ServiceName:   service.Name,
			ServiceAmount: service.Price,
		})
		total += service.Price
	}
	return lines, services.Round2(total), nil
}

// snapshotProducts resolves product lines; a variant's price wins over the
// product base price.
func snapshotProducts(db *gorm.DB, salonID uuid.UUID, inputs []AppointmentProductInput) ([]models.AppointmentProduct, float64, error) {
	var lines []models.AppointmentProduct
	var total float64
	for _, in := range inputs {
		var product models.Product
		if err := db.Preload("Variants").
			Where("salon_id = ? AND id = ?", salonID, in.ProductID).
			First(&product).Error; err != nil {
			return nil, 0, err
		}
		unitPrice := product.Price
		name := product.Name
		if in.VariantID != nil {
			found := false
			for _, v := range product.Variants {
				if v.ID == *in.VariantID {
					unitPrice = v.Price
					name = product.Name + " (" + v.Name + ")"
					found = true
					break
				}
			}
			if !found {
				return nil, 0, gorm.ErrRecordNotFound
			}
		}
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		lineTotal := services.Round2(unitPrice * float64(qty))
		lines = append(lines, models.AppointmentProduct{
			ID:          uuid.New(),
			ProductID:   product.ID,
			VariantID:   in.VariantID,
			ProductName: name,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			TotalPrice:  lineTotal,
		})
		total += lineTotal
	}
	return lines, services.Round2(total), nil
}

// CreateAppointment books an appointment, freezing service and product prices
// into the line rows at creation time.
func CreateAppointment(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
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

	serviceLines, serviceTotal, err := snapshotServices(config.DB, salonUUID, input.Services)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service or staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	productLines, productTotal, err := snapshotProducts(config.DB, salonUUID, input.Products)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Product or variant not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	appointment := models.Appointment{
		ID:              uuid.New(),
		SalonID:         salonUUID,
		BranchID:        input.BranchID,
		CustomerID:      customer.ID,
		AppointmentDate: input.AppointmentDate,
		Status:          models.AppointmentStatusUpcoming,
		PaymentStatus:   models.PaymentStatusPending,
		Notes:           input.Notes,
		TotalPayment:    services.Round2(serviceTotal + productTotal),
		Services:        serviceLines,
		Products:        productLines,
	}

	appointment.CreatedByUserID = userIDFromContext(c)

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

func GetAppointments(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Services").Preload("Products").Preload("Customer").
		Where("salon_id = ?", salonUUID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date DESC").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func GetAppointment(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	appointmentUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Services").Preload("Products").Preload("Customer").
		Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment changes schedule, status or line items. Line items can
// only be replaced (re-snapshotting current prices) while the appointment is
// still unsettled.
func UpdateAppointment(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	appointmentUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input UpdateAppointmentInput
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

	var appointment models.Appointment
	if err := tx.Preload("Services").Preload("Products").
		Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if (input.Services != nil || input.Products != nil) &&
		appointment.PaymentStatus == models.PaymentStatusPaid {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot change line items after settlement")
		return
	}

	if input.AppointmentDate != nil {
		appointment.AppointmentDate = *input.AppointmentDate
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	recalc := false
	if input.Services != nil {
		if err := tx.Where("appointment_id = ?", appointment.ID).
			Delete(&models.AppointmentService{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing services")
			return
		}
		lines, _, err := snapshotServices(tx, salonUUID, *input.Services)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Service or staff not found")
			return
		}
		for i := range lines {
			lines[i].AppointmentID = appointment.ID
		}
		appointment.Services = lines
		recalc = true
	}
	if input.Products != nil {
		if err := tx.Where("appointment_id = ?", appointment.ID).
			Delete(&models.AppointmentProduct{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing products")
			return
		}
		lines, _, err := snapshotProducts(tx, salonUUID, *input.Products)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Product or variant not found")
			return
		}
		for i := range lines {
			lines[i].AppointmentID = appointment.ID
		}
		appointment.Products = lines
		recalc = true
	}

	if recalc {
		var total float64
		for _, line := range appointment.Services {
			total += line.ServiceAmount
		}
		for _, line := range appointment.Products {
			total += line.TotalPrice
		}
		appointment.TotalPayment = services.Round2(total)
	}

	if err := tx.Save(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an unsettled appointment and its line items.
func DeleteAppointment(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	appointmentUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var appointment models.Appointment
	if err := tx.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if appointment.PaymentStatus == models.PaymentStatusPaid {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot delete a settled appointment")
		return
	}

	if err := tx.Where("appointment_id = ?", appointment.ID).
		Delete(&models.AppointmentService{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment services")
		return
	}
	if err := tx.Where("appointment_id = ?", appointment.ID).
		Delete(&models.AppointmentProduct{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment products")
		return
	}
	if err := tx.Delete(&appointment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
