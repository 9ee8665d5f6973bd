// services/aggregation.go
package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

// MethodBreakdown buckets settled revenue by payment method.
type MethodBreakdown struct {
	Cash float64 `json:"cash"`
	Card float64 `json:"card"`
	UPI  float64 `json:"upi"`
}

// BucketPaymentMethod maps a free-form method string onto one of the three
// reporting buckets by case-insensitive substring match. Anything
// unrecognized ("Paytm", "Wallet", ...) falls back to the cash bucket; that
// fallback is intentional, so no revenue ever drops out of the breakdown.
func BucketPaymentMethod(method string) string {
	m := strings.ToLower(method)
	switch {
	case strings.Contains(m, "card"):
		return "card"
	case strings.Contains(m, "upi"):
		return "upi"
	default:
		return "cash"
	}
}

func (b *MethodBreakdown) add(method string, amount float64) {
	switch BucketPaymentMethod(method) {
	case "card":
		b.Card = Round2(b.Card + amount)
	case "upi":
		b.UPI = Round2(b.UPI + amount)
	default:
		b.Cash = Round2(b.Cash + amount)
	}
}

// AddPayment folds one payment into the breakdown. Split payments contribute
// each leg separately; single-method payments contribute their final total.
func (b *MethodBreakdown) AddPayment(p models.Payment) {
	if p.PaymentMethod == models.PaymentMethodSplit {
		for _, leg := range p.PaymentSplit {
			b.add(leg.Method, leg.Amount)
		}
		return
	}
	b.add(p.PaymentMethod, p.FinalTotal)
}

// DaySummary is the aggregate for one UTC calendar day.
type DaySummary struct {
	Date             string          `json:"date"`
	AppointmentCount int             `json:"appointment_count"`
	SettledCount     int             `json:"settled_count"`
	ServiceAmount    float64         `json:"service_amount"`
	ProductAmount    float64         `json:"product_amount"`
	MembershipDisc   float64         `json:"membership_discount"`
	CouponDiscount   float64         `json:"coupon_discount"`
	AdditionalDisc   float64         `json:"additional_discount"`
	TaxAmount        float64         `json:"tax_amount"`
	Tips             float64         `json:"tips"`
	FinalTotal       float64         `json:"final_total"`
	UnsettledAmount  float64         `json:"unsettled_amount"`
	PaymentBreakdown MethodBreakdown `json:"payment_breakdown"`
}

// add folds either the appointment's payments (authoritative when present) or
// the conservative fallback into the summary. The fallback charges only the
// raw service total — no tax or tips are fabricated for unsettled bookings —
// and stays a separate figure rather than blending into FinalTotal.
func (d *DaySummary) add(appt models.Appointment, payments []models.Payment) {
	d.AppointmentCount++

	if len(payments) == 0 {
		var raw float64
		for _, line := range appt.Services {
			raw += line.ServiceAmount
		}
		d.UnsettledAmount = Round2(d.UnsettledAmount + raw)
		return
	}

	d.SettledCount++
	for _, p := range payments {
		d.ServiceAmount = Round2(d.ServiceAmount + p.ServiceAmount)
		d.ProductAmount = Round2(d.ProductAmount + p.ProductAmount)
		d.MembershipDisc = Round2(d.MembershipDisc + p.MembershipDiscount)
		d.CouponDiscount = Round2(d.CouponDiscount + p.CouponDiscount)
		d.AdditionalDisc = Round2(d.AdditionalDisc + p.AdditionalDiscount)
		d.TaxAmount = Round2(d.TaxAmount + p.TaxAmount)
		d.Tips = Round2(d.Tips + p.Tips)
		d.FinalTotal = Round2(d.FinalTotal + p.FinalTotal)
		d.PaymentBreakdown.AddPayment(p)
	}
}

// SummarizeByDayUTC groups appointments (and their payments, keyed by
// appointment) into UTC calendar-day buckets. The appointment's date decides
// the bucket; multiple payment rows per appointment are summed rather than
// deduplicated.
func SummarizeByDayUTC(appointments []models.Appointment, payments []models.Payment) map[string]*DaySummary {
	byAppt := make(map[uuid.UUID][]models.Payment, len(payments))
	for _, p := range payments {
		byAppt[p.AppointmentID] = append(byAppt[p.AppointmentID], p)
	}

	days := make(map[string]*DaySummary)
	for _, appt := range appointments {
		key := utils.DayKeyUTC(appt.AppointmentDate)
		day, ok := days[key]
		if !ok {
			day = &DaySummary{Date: key}
			days[key] = day
		}
		day.add(appt, byAppt[appt.ID])
	}
	return days
}

// RangeSummary is the flat rollup over a date range.
type RangeSummary struct {
	AppointmentCount int             `json:"appointment_count"`
	SettledCount     int             `json:"settled_count"`
	ServiceAmount    float64         `json:"service_amount"`
	ProductAmount    float64         `json:"product_amount"`
	MembershipDisc   float64         `json:"membership_discount"`
	CouponDiscount   float64         `json:"coupon_discount"`
	AdditionalDisc   float64         `json:"additional_discount"`
	TaxAmount        float64         `json:"tax_amount"`
	Tips             float64         `json:"tips"`
	FinalTotal       float64         `json:"final_total"`
	UnsettledAmount  float64         `json:"unsettled_amount"`
	PaymentBreakdown MethodBreakdown `json:"payment_breakdown"`
}

// SummarizeRange rolls the per-day buckets up into a single summary.
func SummarizeRange(appointments []models.Appointment, payments []models.Payment) RangeSummary {
	var out RangeSummary
	for _, day := range SummarizeByDayUTC(appointments, payments) {
		out.AppointmentCount += day.AppointmentCount
		out.SettledCount += day.SettledCount
		out.ServiceAmount = Round2(out.ServiceAmount + day.ServiceAmount)
		out.ProductAmount = Round2(out.ProductAmount + day.ProductAmount)
		out.MembershipDisc = Round2(out.MembershipDisc + day.MembershipDisc)
		out.CouponDiscount = Round2(out.CouponDiscount + day.CouponDiscount)
		out.AdditionalDisc = Round2(out.AdditionalDisc + day.AdditionalDisc)
		out.TaxAmount = Round2(out.TaxAmount + day.TaxAmount)
		out.Tips = Round2(out.Tips + day.Tips)
		out.FinalTotal = Round2(out.FinalTotal + day.FinalTotal)
		out.UnsettledAmount = Round2(out.UnsettledAmount + day.UnsettledAmount)
		out.PaymentBreakdown.Cash = Round2(out.PaymentBreakdown.Cash + day.PaymentBreakdown.Cash)
		out.PaymentBreakdown.Card = Round2(out.PaymentBreakdown.Card + day.PaymentBreakdown.Card)
		out.PaymentBreakdown.UPI = Round2(out.PaymentBreakdown.UPI + day.PaymentBreakdown.UPI)
	}
	return out
}
