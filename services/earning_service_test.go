// services/earning_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
)

func earningStaff() *models.Staff {
	return &models.Staff{
		ID:   uuid.New(),
		Name: "Asha",
		RevenueCommission: &models.RevenueCommission{
			CommissionType: models.CommissionTypePercentage,
			Slots: []models.CommissionSlot{
				{Slot: "0-1000", Amount: 10, Position: 0},
			},
		},
	}
}

func TestFoldAppointments_SkipsPaidLines(t *testing.T) {
	staff := earningStaff()
	appt := models.Appointment{ID: uuid.New()}
	appt.Services = []models.AppointmentService{
		{ID: uuid.New(), AppointmentID: appt.ID, StaffID: staff.ID, ServiceAmount: 300},
		{ID: uuid.New(), AppointmentID: appt.ID, StaffID: staff.ID, ServiceAmount: 500, Paid: true},
	}

	snap := &EarningSnapshot{StaffID: staff.ID}
	tippable, distinct := foldAppointments(staff, []models.Appointment{appt}, snap)

	// Only the unpaid line counts toward earnings.
	assert.Equal(t, 300.0, snap.ServiceAmount)
	assert.Equal(t, 30.0, snap.CommissionEarning)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, appt.Services[0].ID, snap.Lines[0].ServiceLineID)

	// The appointment still owes the staff member, so it stays tip-eligible.
	assert.Equal(t, []uuid.UUID{appt.ID}, tippable)
	assert.Equal(t, 1, distinct[appt.ID])
}

func TestFoldAppointments_SkipsOtherStaff(t *testing.T) {
	staff := earningStaff()
	other := uuid.New()
	appt := models.Appointment{ID: uuid.New()}
	appt.Services = []models.AppointmentService{
		{ID: uuid.New(), AppointmentID: appt.ID, StaffID: other, ServiceAmount: 400},
	}

	snap := &EarningSnapshot{StaffID: staff.ID}
	tippable, _ := foldAppointments(staff, []models.Appointment{appt}, snap)

	assert.Equal(t, 0.0, snap.ServiceAmount)
	assert.Equal(t, 0, snap.TotalBooking)
	assert.Empty(t, tippable)
}

func TestFoldAppointments_FullyPaidAppointmentDropsOut(t *testing.T) {
	staff := earningStaff()
	appt := models.Appointment{ID: uuid.New()}
	appt.Services = []models.AppointmentService{
		{ID: uuid.New(), AppointmentID: appt.ID, StaffID: staff.ID, ServiceAmount: 500, Paid: true},
	}

	snap := &EarningSnapshot{StaffID: staff.ID}
	tippable, _ := foldAppointments(staff, []models.Appointment{appt}, snap)

	// Once every attributed line is paid the appointment no longer feeds
	// bookings, commission or tips — a payout never double-counts.
	assert.Equal(t, 0, snap.TotalBooking)
	assert.Empty(t, tippable)
	assert.Empty(t, snap.Lines)
}

func TestFoldAppointments_SkipsAppointmentsBeforeWatermark(t *testing.T) {
	staff := earningStaff()
	watermark := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	before := models.Appointment{ID: uuid.New()}
	before.CreatedAt = watermark.Add(-time.Hour)
	before.Services = []models.AppointmentService{
		{ID: uuid.New(), AppointmentID: before.ID, StaffID: staff.ID, ServiceAmount: 400},
	}

	after := models.Appointment{ID: uuid.New()}
	after.CreatedAt = watermark.Add(time.Hour)
	after.Services = []models.AppointmentService{
		{ID: uuid.New(), AppointmentID: after.ID, StaffID: staff.ID, ServiceAmount: 250},
	}

	snap := &EarningSnapshot{StaffID: staff.ID, EarningStartDate: watermark}
	tippable, _ := foldAppointments(staff, []models.Appointment{before, after}, snap)

	// The pre-watermark appointment carries an unpaid line, but the date
	// filter excludes it independently of the paid flag.
	assert.Equal(t, 250.0, snap.ServiceAmount)
	assert.Equal(t, 1, snap.TotalBooking)
	assert.Equal(t, []uuid.UUID{after.ID}, tippable)
}

func TestFoldTips_EqualShareAcrossAllStaff(t *testing.T) {
	staff := earningStaff()
	colleague := uuid.New()
	appt := models.Appointment{ID: uuid.New()}
	appt.Services = []models.AppointmentService{
		{ID: uuid.New(), AppointmentID: appt.ID, StaffID: staff.ID, ServiceAmount: 600},
		{ID: uuid.New(), AppointmentID: appt.ID, StaffID: colleague, ServiceAmount: 400},
	}

	snap := &EarningSnapshot{StaffID: staff.ID}
	tippable, distinct := foldAppointments(staff, []models.Appointment{appt}, snap)
	require.Len(t, tippable, 1)
	assert.Equal(t, 2, distinct[appt.ID])

	foldTips(snap, []models.Payment{
		{AppointmentID: appt.ID, Tips: 100},
	}, distinct)

	// Equal split across distinct staff, not proportional to service value.
	assert.Equal(t, 50.0, snap.TipEarning)
}

func TestFoldTips_IgnoresZeroTips(t *testing.T) {
	snap := &EarningSnapshot{}
	apptID := uuid.New()
	foldTips(snap, []models.Payment{{AppointmentID: apptID, Tips: 0}}, map[uuid.UUID]int{apptID: 2})
	assert.Equal(t, 0.0, snap.TipEarning)
}
