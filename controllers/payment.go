// controllers/payment.go
package controllers

import (
	"errors"
	"math"
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

// splitTolerance absorbs float drift when validating that split legs re-add
// to the final total.
const splitTolerance = 0.01

type CreatePaymentInput struct {
	AppointmentID uuid.UUID  `json:"appointment_id" binding:"required"`
	CouponID      *uuid.UUID `json:"coupon_id"`
	TaxID         *uuid.UUID `json:"tax_id"`

	AdditionalDiscount     float64 `json:"additional_discount" binding:"min=0"`
	AdditionalDiscountType string  `json:"additional_discount_type" binding:"omitempty,oneof=percentage fixed"`
	AdditionalCharges      float64 `json:"additional_charges" binding:"min=0"`
	Tips                   float64 `json:"tips" binding:"min=0"`

	PaymentMethod string              `json:"payment_method" binding:"required"`
	PaymentSplit  []models.SplitEntry `json:"payment_split"`
}

// activeMembership returns the customer's active membership, if any. When a
// customer holds several active rows, the one with the latest end date wins;
// a lifetime membership (nil end date) beats any dated one.
func activeMembership(db *gorm.DB, salonID, customerID uuid.UUID) (*models.CustomerMembership, error) {
	var memberships []models.CustomerMembership
	if err := db.Preload("BranchMembership").
		Where("salon_id = ? AND customer_id = ? AND is_active = true", salonID, customerID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	var best *models.CustomerMembership
	for i := range memberships {
		m := &memberships[i]
		if m.EndDate != nil && m.EndDate.Before(now) {
			continue
		}
		if best == nil {
			best = m
			continue
		}
		if m.EndDate == nil {
			best = m
		} else if best.EndDate != nil && m.EndDate.After(*best.EndDate) {
			best = m
		}
	}
	return best, nil
}

// resolveCoupon loads a coupon and checks it is usable right now.
func resolveCoupon(db *gorm.DB, salonID, couponID uuid.UUID) (*models.Coupon, string, error) {
	var coupon models.Coupon
	if err := db.Where("salon_id = ? AND id = ?", salonID, couponID).
		First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "Coupon not found", nil
		}
		return nil, "", err
	}

	now := time.Now()
	switch {
	case !coupon.IsActive:
		return nil, "Coupon is not active", nil
	case coupon.StartDate != nil && coupon.StartDate.After(now):
		return nil, "Coupon is not yet valid", nil
	case coupon.EndDate != nil && coupon.EndDate.Before(now):
		return nil, "Coupon has expired", nil
	case coupon.UseLimit > 0 && coupon.UseCount >= coupon.UseLimit:
		return nil, "Coupon use limit reached", nil
	}
	return &coupon, "", nil
}

// CreatePayment settles an appointment: it derives the full charge breakdown
// from the appointment's line items and the applicable discounts, persists the
// payment, flips the appointment to paid, and updates the customer's visit
// stats — all in one transaction. Invoice rendering happens afterwards in the
// background and never blocks or fails the settlement.
func CreatePayment(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Services").Preload("Products").Preload("Customer").
		Where("salon_id = ? AND id = ?", salonUUID, input.AppointmentID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if appointment.PaymentStatus == models.PaymentStatusPaid {
		utils.RespondWithError(c, http.StatusConflict, "Appointment is already paid")
		return
	}

	var serviceAmount, productAmount float64
	for _, line := range appointment.Services {
		serviceAmount += line.ServiceAmount
	}
	for _, line := range appointment.Products {
		productAmount += line.TotalPrice
	}

	settlementInput := services.SettlementInput{
		ServiceAmount:          serviceAmount,
		ProductAmount:          productAmount,
		AdditionalCharges:      input.AdditionalCharges,
		AdditionalDiscount:     input.AdditionalDiscount,
		AdditionalDiscountType: input.AdditionalDiscountType,
		Tips:                   input.Tips,
	}

	membership, err := activeMembership(config.DB, salonUUID, appointment.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if membership != nil {
		settlementInput.Membership = &services.MembershipDiscountInput{
			Discount:     membership.BranchMembership.Discount,
			DiscountType: membership.BranchMembership.DiscountType,
		}
	}

	var coupon *models.Coupon
	if input.CouponID != nil {
		var msg string
		coupon, msg, err = resolveCoupon(config.DB, salonUUID, *input.CouponID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if coupon == nil {
			utils.RespondWithError(c, http.StatusBadRequest, msg)
			return
		}
		settlementInput.Coupon = &services.CouponDiscountInput{
			DiscountType:   coupon.DiscountType,
			DiscountAmount: coupon.DiscountAmount,
		}
	}

	if input.TaxID != nil {
		var tax models.Tax
		if err := config.DB.Where("salon_id = ? AND id = ? AND is_active = true", salonUUID, *input.TaxID).
			First(&tax).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Tax not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		settlementInput.Tax = &services.TaxInput{Type: tax.Type, Value: tax.Value}
	}

	settlement := services.CalculateSettlement(settlementInput)

	if input.PaymentMethod == models.PaymentMethodSplit {
		if len(input.PaymentSplit) == 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Split payment requires payment_split entries")
			return
		}
		var splitSum float64
		for _, leg := range input.PaymentSplit {
			splitSum += leg.Amount
		}
		if math.Abs(services.Round2(splitSum)-settlement.FinalTotal) > splitTolerance {
			utils.RespondWithError(c, http.StatusBadRequest, "Split amounts do not add up to the final total")
			return
		}
	}

	payment := models.Payment{
		ID:                     uuid.New(),
		SalonID:                salonUUID,
		AppointmentID:          appointment.ID,
		CustomerID:             appointment.CustomerID,
		ServiceAmount:          settlement.ServiceAmount,
		ProductAmount:          settlement.ProductAmount,
		AdditionalCharges:      settlement.AdditionalCharges,
		MembershipDiscount:     settlement.MembershipDiscount,
		CouponDiscount:         settlement.CouponDiscount,
		AdditionalDiscount:     settlement.AdditionalDiscount,
		AdditionalDiscountType: input.AdditionalDiscountType,
		SubTotal:               settlement.SubTotal,
		TaxAmount:              settlement.TaxAmount,
		Tips:                   settlement.Tips,
		FinalTotal:             settlement.FinalTotal,
		PaymentMethod:          input.PaymentMethod,
		PaymentSplit:           input.PaymentSplit,
		CouponID:               input.CouponID,
		TaxID:                  input.TaxID,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	now := time.Now()
	res := tx.Model(&models.Appointment{}).
		Where("id = ? AND payment_status = ?", appointment.ID, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_status": models.PaymentStatusPaid,
			"status":         models.AppointmentStatusCheckOut,
			"grand_total":    settlement.FinalTotal,
		})
	if res.Error != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}
	// Zero rows means another request settled this appointment after our
	// read; the status flip is the settlement lock, so losing it aborts the
	// whole payment.
	if res.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusConflict, "Appointment is already paid")
		return
	}

	if coupon != nil {
		if err := tx.Model(coupon).
			UpdateColumn("use_count", gorm.Expr("use_count + 1")).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update coupon usage")
			return
		}
	}

	if err := tx.Model(&models.Customer{}).
		Where("id = ?", appointment.CustomerID).
		Updates(map[string]interface{}{
			"total_visits": gorm.Expr("total_visits + 1"),
			"total_spent":  gorm.Expr("total_spent + ?", settlement.FinalTotal),
			"last_visit":   now,
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to commit payment")
		return
	}

	go services.NewInvoiceService(config.DB).Generate(payment, appointment, appointment.Customer.Name)

	c.JSON(http.StatusCreated, gin.H{
		"payment":         payment,
		"invoice_pdf_url": "/invoices/" + payment.ID.String() + ".pdf",
	})
}

// PaymentStaffTip is the derived per-staff tip share reported alongside a
// payment in listings.
type PaymentStaffTip struct {
	StaffID   uuid.UUID `json:"staff_id"`
	StaffName string    `json:"staff_name"`
	TipAmount float64   `json:"tip_amount"`
}

type PaymentListItem struct {
	models.Payment
	ServiceCount int               `json:"service_count"`
	StaffTips    []PaymentStaffTip `json:"staff_tips"`
}

// GetPayments lists a salon's payments newest first, each enriched with the
// derived equal tip split across the distinct staff on its appointment.
func GetPayments(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}

	var payments []models.Payment
	if err := config.DB.Preload("Appointment.Services").
		Where("salon_id = ?", salonUUID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	staffNames := map[uuid.UUID]string{}
	var staffList []models.Staff
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&staffList).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}
	for _, st := range staffList {
		staffNames[st.ID] = st.Name
	}

	items := make([]PaymentListItem, 0, len(payments))
	for _, p := range payments {
		item := PaymentListItem{Payment: p, ServiceCount: len(p.Appointment.Services)}

		seen := map[uuid.UUID]bool{}
		var staffIDs []uuid.UUID
		for _, line := range p.Appointment.Services {
			if !seen[line.StaffID] {
				seen[line.StaffID] = true
				staffIDs = append(staffIDs, line.StaffID)
			}
		}
		if p.Tips > 0 && len(staffIDs) > 0 {
			share := services.TipShare(p.Tips, len(staffIDs))
			for _, id := range staffIDs {
				item.StaffTips = append(item.StaffTips, PaymentStaffTip{
					StaffID:   id,
					StaffName: staffNames[id],
					TipAmount: share,
				})
			}
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

func GetPayment(c *gin.Context) {
	salonUUID, ok := salonIDFromQuery(c)
	if !ok {
		return
	}
	paymentUUID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var payment models.Payment
	if err := config.DB.Preload("Appointment.Services").
		Where("salon_id = ? AND id = ?", salonUUID, paymentUUID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}
