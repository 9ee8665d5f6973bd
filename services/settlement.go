// services/settlement.go
package services

import "math"

// Discount/tax type tokens. The tokens differ per entity (membership uses
// "percentage", coupon and tax use "percent", the ad-hoc discount uses
// "percentage"/"fixed") and are kept as-is because they are part of the
// stored data contract.
const (
	MembershipDiscountPercentage = "percentage"
	MembershipDiscountFlat       = "flat"

	CouponDiscountPercent = "percent"
	CouponDiscountFlat    = "flat"

	AdditionalDiscountPercentage = "percentage"
	AdditionalDiscountFixed      = "fixed"

	TaxTypePercent = "percent"
	TaxTypeFlat    = "flat"
)

// MembershipDiscountInput is the discount carried by the customer's active
// membership plan.
type MembershipDiscountInput struct {
	Discount     float64
	DiscountType string // "percentage" or "flat"
}

type CouponDiscountInput struct {
	DiscountType   string // "percent" or "flat"
	DiscountAmount float64
}

type TaxInput struct {
	Type  string // "percent" or "flat"
	Value float64
}

// SettlementInput is everything the calculator needs. Nil pointers mean the
// corresponding discount/tax does not apply.
type SettlementInput struct {
	ServiceAmount     float64
	ProductAmount     float64
	AdditionalCharges float64

	Membership *MembershipDiscountInput
	Coupon     *CouponDiscountInput

	AdditionalDiscount     float64
	AdditionalDiscountType string // "percentage" or "fixed"

	Tax  *TaxInput
	Tips float64
}

// Settlement is the fully derived charge breakdown for one appointment.
type Settlement struct {
	ServiceAmount      float64 `json:"service_amount"`
	ProductAmount      float64 `json:"product_amount"`
	AdditionalCharges  float64 `json:"additional_charges"`
	MembershipDiscount float64 `json:"membership_discount"`
	CouponDiscount     float64 `json:"coupon_discount"`
	AdditionalDiscount float64 `json:"additional_discount"`
	SubTotal           float64 `json:"sub_total"`
	TaxAmount          float64 `json:"tax_amount"`
	Tips               float64 `json:"tips"`
	FinalTotal         float64 `json:"final_total"`
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateSettlement computes the final payable amount for one appointment.
//
// The step order is fixed: membership discount, then coupon, then the ad-hoc
// discount, then tax, then tips. Every intermediate amount is independently
// rounded to 2 decimals before it is subtracted from the running base, so the
// persisted line items always re-add exactly to the totals on the invoice.
// The result is a pure function of its input; callers persist it separately.
//
// FinalTotal is deliberately not clamped at zero: a discount stack that
// exceeds the base produces a negative total, same as the stored figures
// it reconciles against.
func CalculateSettlement(in SettlementInput) Settlement {
	out := Settlement{
		ServiceAmount:     Round2(in.ServiceAmount),
		ProductAmount:     Round2(in.ProductAmount),
		AdditionalCharges: Round2(in.AdditionalCharges),
		Tips:              in.Tips,
	}

	base := Round2(out.ServiceAmount + out.ProductAmount + out.AdditionalCharges)

	if in.Membership != nil {
		if in.Membership.DiscountType == MembershipDiscountPercentage {
			out.MembershipDiscount = Round2(base * in.Membership.Discount / 100)
		} else {
			out.MembershipDiscount = Round2(in.Membership.Discount)
		}
	}
	base = Round2(base - out.MembershipDiscount)

	if in.Coupon != nil {
		if in.Coupon.DiscountType == CouponDiscountPercent {
			out.CouponDiscount = Round2(base * in.Coupon.DiscountAmount / 100)
		} else {
			out.CouponDiscount = Round2(in.Coupon.DiscountAmount)
		}
	}
	base = Round2(base - out.CouponDiscount)

	if in.AdditionalDiscountType == AdditionalDiscountPercentage {
		out.AdditionalDiscount = Round2(base * in.AdditionalDiscount / 100)
	} else {
		out.AdditionalDiscount = Round2(in.AdditionalDiscount)
	}
	base = Round2(base - out.AdditionalDiscount)

	out.SubTotal = base

	if in.Tax != nil {
		if in.Tax.Type == TaxTypePercent {
			out.TaxAmount = Round2(out.SubTotal * in.Tax.Value / 100)
		} else {
			out.TaxAmount = Round2(in.Tax.Value)
		}
	}

	out.FinalTotal = Round2(out.SubTotal+out.TaxAmount) + in.Tips

	return out
}
