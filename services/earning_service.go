// services/earning_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
)

// EarningService recomputes staff earnings from scratch on every query. The
// only state carried between queries is the per-staff watermark
// (StaffEarning.EarningStartDate), which moves forward only on payout.
type EarningService struct {
	db *gorm.DB
}

func NewEarningService(db *gorm.DB) *EarningService {
	return &EarningService{db: db}
}

// LineCommission is one attributed, not-yet-paid appointment service line and
// the commission it earns. The payout flow stamps these onto the rows it
// marks paid.
type LineCommission struct {
	ServiceLineID uuid.UUID `json:"service_line_id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	ServiceAmount float64   `json:"service_amount"`
	Commission    float64   `json:"commission"`
}

// EarningSnapshot is the live-computed earning state for one staff member.
type EarningSnapshot struct {
	StaffID           uuid.UUID        `json:"staff_id"`
	StaffName         string           `json:"staff_name"`
	TotalBooking      int              `json:"total_booking"`
	ServiceAmount     float64          `json:"service_amount"`
	CommissionEarning float64          `json:"commission_earning"`
	TipEarning        float64          `json:"tip_earning"`
	StaffEarning      float64          `json:"staff_earning"`
	EarningStartDate  time.Time        `json:"earning_start_date"`
	Lines             []LineCommission `json:"-"`
}

// Snapshot computes the current earning state for one staff member and
// refreshes the persisted accumulator row to match.
func (s *EarningService) Snapshot(salonID, staffID uuid.UUID) (*EarningSnapshot, error) {
	var staff models.Staff
	if err := s.db.Preload("RevenueCommission.Slots").
		Where("salon_id = ? AND id = ?", salonID, staffID).
		First(&staff).Error; err != nil {
		return nil, err
	}

	earning, err := s.ensureEarningRow(&staff)
	if err != nil {
		return nil, err
	}

	snap, err := s.compute(&staff, earning.EarningStartDate)
	if err != nil {
		return nil, err
	}

	// Refresh the stored accumulator so dashboards reading the table directly
	// see the same figures as this endpoint.
	if err := s.db.Model(earning).Updates(map[string]interface{}{
		"total_booking":      snap.TotalBooking,
		"service_amount":     snap.ServiceAmount,
		"commission_earning": snap.CommissionEarning,
		"tip_earning":        snap.TipEarning,
		"staff_earning":      snap.StaffEarning,
	}).Error; err != nil {
		return nil, err
	}

	return snap, nil
}

// SnapshotAll computes earnings for every active staff member of a salon.
func (s *EarningService) SnapshotAll(salonID uuid.UUID) ([]EarningSnapshot, error) {
	var staffList []models.Staff
	if err := s.db.Where("salon_id = ? AND is_active = true", salonID).Find(&staffList).Error; err != nil {
		return nil, err
	}

	snaps := make([]EarningSnapshot, 0, len(staffList))
	for _, st := range staffList {
		snap, err := s.Snapshot(salonID, st.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		snaps = append(snaps, *snap)
	}
	return snaps, nil
}

func (s *EarningService) ensureEarningRow(staff *models.Staff) (*models.StaffEarning, error) {
	var earning models.StaffEarning
	err := s.db.Where("staff_id = ?", staff.ID).First(&earning).Error
	if err == nil {
		return &earning, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	earning = models.StaffEarning{
		SalonID:          staff.SalonID,
		StaffID:          staff.ID,
		EarningStartDate: staff.CreatedAt,
	}
	if err := s.db.Create(&earning).Error; err != nil {
		return nil, err
	}
	return &earning, nil
}

// compute derives the snapshot from checked-out appointments created at or
// after the watermark. Two independent filters select attributable work: the
// date watermark on the appointment AND the paid flag on each service line.
// A line marked paid never counts again, even when its appointment's
// created_at falls inside the current window.
func (s *EarningService) compute(staff *models.Staff, watermark time.Time) (*EarningSnapshot, error) {
	snap := &EarningSnapshot{
		StaffID:          staff.ID,
		StaffName:        staff.Name,
		EarningStartDate: watermark,
	}

	var appointments []models.Appointment
	if err := s.db.Preload("Services").
		Where("salon_id = ? AND status = ? AND created_at >= ?",
			staff.SalonID, models.AppointmentStatusCheckOut, watermark).
		Where("EXISTS (SELECT 1 FROM appointment_services WHERE appointment_services.appointment_id = appointments.id AND appointment_services.staff_id = ?)", staff.ID).
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	tippable, distinctStaff := foldAppointments(staff, appointments, snap)

	if len(tippable) > 0 {
		var payments []models.Payment
		if err := s.db.Where("appointment_id IN ?", tippable).Find(&payments).Error; err != nil {
			return nil, err
		}
		foldTips(snap, payments, distinctStaff)
	}

	snap.StaffEarning = Round2(snap.CommissionEarning + snap.TipEarning)
	return snap, nil
}

// foldAppointments accumulates the staff member's unpaid attributed lines
// into the snapshot. It returns the appointments that still owe this staff
// member (tip-eligible) and, per appointment, how many distinct staff worked
// it. Both attribution filters apply here: appointments created before the
// watermark (snap.EarningStartDate) and lines already stamped paid by a
// previous payout contribute nothing, and lines belonging to other staff
// never do. The query feeding this fold applies the same watermark in SQL.
func foldAppointments(staff *models.Staff, appointments []models.Appointment, snap *EarningSnapshot) ([]uuid.UUID, map[uuid.UUID]int) {
	tippable := make([]uuid.UUID, 0, len(appointments))
	distinctStaff := make(map[uuid.UUID]int, len(appointments))

	for _, appt := range appointments {
		if appt.CreatedAt.Before(snap.EarningStartDate) {
			continue
		}
		attributed := false
		staffSet := map[uuid.UUID]bool{}
		for _, line := range appt.Services {
			staffSet[line.StaffID] = true
			if line.StaffID != staff.ID || line.Paid {
				continue
			}
			attributed = true
			commission := CommissionForAmount(staff.RevenueCommission, line.ServiceAmount)
			snap.ServiceAmount = Round2(snap.ServiceAmount + line.ServiceAmount)
			snap.CommissionEarning = Round2(snap.CommissionEarning + commission)
			snap.Lines = append(snap.Lines, LineCommission{
				ServiceLineID: line.ID,
				AppointmentID: appt.ID,
				ServiceAmount: line.ServiceAmount,
				Commission:    commission,
			})
		}
		if attributed {
			snap.TotalBooking++
			tippable = append(tippable, appt.ID)
			distinctStaff[appt.ID] = len(staffSet)
		}
	}
	return tippable, distinctStaff
}

// foldTips adds this staff member's equal share of each payment's tip. The
// divisor is the distinct staff count of the whole appointment, not just
// those still unpaid.
func foldTips(snap *EarningSnapshot, payments []models.Payment, distinctStaff map[uuid.UUID]int) {
	for _, p := range payments {
		if p.Tips <= 0 {
			continue
		}
		snap.TipEarning = Round2(snap.TipEarning + TipShare(p.Tips, distinctStaff[p.AppointmentID]))
	}
}
