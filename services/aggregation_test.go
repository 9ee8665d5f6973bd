// services/aggregation_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
)

func TestBucketPaymentMethod(t *testing.T) {
	tests := []struct {
		method string
		bucket string
	}{
		{"Cash", "cash"},
		{"Card", "card"},
		{"Credit Card", "card"},
		{"UPI", "upi"},
		{"upi transfer", "upi"},
		{"Paytm", "cash"}, // unrecognized methods fall back to cash
		{"Wallet", "cash"},
		{"", "cash"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bucket, BucketPaymentMethod(tt.method), "method %q", tt.method)
	}
}

func TestMethodBreakdown_AddPayment_Split(t *testing.T) {
	var b MethodBreakdown
	b.AddPayment(models.Payment{
		PaymentMethod: models.PaymentMethodSplit,
		FinalTotal:    300,
		PaymentSplit: models.PaymentSplitList{
			{Method: "Cash", Amount: 100},
			{Method: "Card", Amount: 150},
			{Method: "UPI", Amount: 50},
		},
	})

	// Split legs are bucketed individually; the final total is ignored.
	assert.Equal(t, 100.0, b.Cash)
	assert.Equal(t, 150.0, b.Card)
	assert.Equal(t, 50.0, b.UPI)
}

func TestMethodBreakdown_AddPayment_SingleMethod(t *testing.T) {
	var b MethodBreakdown
	b.AddPayment(models.Payment{PaymentMethod: models.PaymentMethodCard, FinalTotal: 500})
	b.AddPayment(models.Payment{PaymentMethod: "Paytm", FinalTotal: 120})

	assert.Equal(t, 500.0, b.Card)
	assert.Equal(t, 120.0, b.Cash)
	assert.Equal(t, 0.0, b.UPI)
}

func checkedOutAppointment(date time.Time, serviceAmounts ...float64) models.Appointment {
	appt := models.Appointment{
		ID:              uuid.New(),
		AppointmentDate: date,
		Status:          models.AppointmentStatusCheckOut,
	}
	for _, amount := range serviceAmounts {
		appt.Services = append(appt.Services, models.AppointmentService{
			ID:            uuid.New(),
			AppointmentID: appt.ID,
			ServiceAmount: amount,
		})
	}
	return appt
}

func TestSummarizeByDayUTC_BucketsByUTCDay(t *testing.T) {
	// 23:30 and next-day 00:30 UTC are different calendar days even though
	// they are an hour apart.
	late := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	early := time.Date(2026, 3, 11, 0, 30, 0, 0, time.UTC)

	days := SummarizeByDayUTC([]models.Appointment{
		checkedOutAppointment(late, 100),
		checkedOutAppointment(early, 200),
	}, nil)

	require.Len(t, days, 2)
	assert.Equal(t, 1, days["2026-03-10"].AppointmentCount)
	assert.Equal(t, 1, days["2026-03-11"].AppointmentCount)
}

func TestSummarizeByDayUTC_PaymentAuthoritative(t *testing.T) {
	date := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	appt := checkedOutAppointment(date, 1000)

	payment := models.Payment{
		ID:            uuid.New(),
		AppointmentID: appt.ID,
		ServiceAmount: 1000,
		TaxAmount:     180,
		Tips:          50,
		FinalTotal:    1230,
		PaymentMethod: models.PaymentMethodCash,
	}

	days := SummarizeByDayUTC([]models.Appointment{appt}, []models.Payment{payment})

	day := days["2026-03-10"]
	require.NotNil(t, day)
	assert.Equal(t, 1, day.SettledCount)
	assert.Equal(t, 1000.0, day.ServiceAmount)
	assert.Equal(t, 180.0, day.TaxAmount)
	assert.Equal(t, 50.0, day.Tips)
	assert.Equal(t, 1230.0, day.FinalTotal)
	assert.Equal(t, 1230.0, day.PaymentBreakdown.Cash)
	// The settled figures replace the raw fallback entirely.
	assert.Equal(t, 0.0, day.UnsettledAmount)
}

func TestSummarizeByDayUTC_UnsettledFallback(t *testing.T) {
	date := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	appt := checkedOutAppointment(date, 300, 200)

	days := SummarizeByDayUTC([]models.Appointment{appt}, nil)

	day := days["2026-03-10"]
	require.NotNil(t, day)
	assert.Equal(t, 1, day.AppointmentCount)
	assert.Equal(t, 0, day.SettledCount)
	// Only the raw service total is charged; no tax or tips are fabricated,
	// and nothing lands in FinalTotal or the method breakdown.
	assert.Equal(t, 500.0, day.UnsettledAmount)
	assert.Equal(t, 0.0, day.FinalTotal)
	assert.Equal(t, 0.0, day.TaxAmount)
	assert.Equal(t, MethodBreakdown{}, day.PaymentBreakdown)
}

func TestSummarizeRange_Rollup(t *testing.T) {
	d1 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	settled := checkedOutAppointment(d1, 400)
	unsettled := checkedOutAppointment(d2, 250)

	payment := models.Payment{
		ID:            uuid.New(),
		AppointmentID: settled.ID,
		ServiceAmount: 400,
		FinalTotal:    400,
		PaymentMethod: models.PaymentMethodUPI,
	}

	out := SummarizeRange([]models.Appointment{settled, unsettled}, []models.Payment{payment})

	assert.Equal(t, 2, out.AppointmentCount)
	assert.Equal(t, 1, out.SettledCount)
	assert.Equal(t, 400.0, out.FinalTotal)
	assert.Equal(t, 250.0, out.UnsettledAmount)
	assert.Equal(t, 400.0, out.PaymentBreakdown.UPI)
}

func TestSummarizeByDayUTC_MultiplePaymentsSummed(t *testing.T) {
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	appt := checkedOutAppointment(date, 100)

	payments := []models.Payment{
		{ID: uuid.New(), AppointmentID: appt.ID, FinalTotal: 60, PaymentMethod: models.PaymentMethodCash},
		{ID: uuid.New(), AppointmentID: appt.ID, FinalTotal: 40, PaymentMethod: models.PaymentMethodCard},
	}

	days := SummarizeByDayUTC([]models.Appointment{appt}, payments)

	day := days["2026-03-10"]
	require.NotNil(t, day)
	assert.Equal(t, 1, day.SettledCount)
	assert.Equal(t, 100.0, day.FinalTotal)
	assert.Equal(t, 60.0, day.PaymentBreakdown.Cash)
	assert.Equal(t, 40.0, day.PaymentBreakdown.Card)
}
