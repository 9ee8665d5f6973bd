// services/settlement_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSettlement_FullPipeline(t *testing.T) {
	// 1000 services + 200 products, 10% membership, 18% tax, 50 tips.
	in := SettlementInput{
		ServiceAmount: 1000,
		ProductAmount: 200,
		Membership: &MembershipDiscountInput{
			Discount:     10,
			DiscountType: MembershipDiscountPercentage,
		},
		Tax:  &TaxInput{Type: TaxTypePercent, Value: 18},
		Tips: 50,
	}

	out := CalculateSettlement(in)

	assert.Equal(t, 120.0, out.MembershipDiscount)
	assert.Equal(t, 1080.0, out.SubTotal)
	assert.Equal(t, 194.4, out.TaxAmount)
	assert.Equal(t, 1324.4, out.FinalTotal)
}

func TestCalculateSettlement_DiscountOrder(t *testing.T) {
	// Each discount applies to the base left by the previous one, not to
	// the original total.
	in := SettlementInput{
		ServiceAmount: 1000,
		Membership: &MembershipDiscountInput{
			Discount:     10,
			DiscountType: MembershipDiscountPercentage,
		},
		Coupon: &CouponDiscountInput{
			DiscountType:   CouponDiscountPercent,
			DiscountAmount: 10,
		},
		AdditionalDiscount:     10,
		AdditionalDiscountType: AdditionalDiscountPercentage,
	}

	out := CalculateSettlement(in)

	assert.Equal(t, 100.0, out.MembershipDiscount) // 10% of 1000
	assert.Equal(t, 90.0, out.CouponDiscount)      // 10% of 900
	assert.Equal(t, 81.0, out.AdditionalDiscount)  // 10% of 810
	assert.Equal(t, 729.0, out.SubTotal)
	assert.Equal(t, 729.0, out.FinalTotal)
}

func TestCalculateSettlement_FlatVariants(t *testing.T) {
	tests := []struct {
		name     string
		in       SettlementInput
		subTotal float64
		tax      float64
		final    float64
	}{
		{
			name: "flat membership",
			in: SettlementInput{
				ServiceAmount: 500,
				Membership:    &MembershipDiscountInput{Discount: 50, DiscountType: MembershipDiscountFlat},
			},
			subTotal: 450,
			final:    450,
		},
		{
			name: "flat coupon",
			in: SettlementInput{
				ServiceAmount: 500,
				Coupon:        &CouponDiscountInput{DiscountType: CouponDiscountFlat, DiscountAmount: 75},
			},
			subTotal: 425,
			final:    425,
		},
		{
			name: "fixed additional discount",
			in: SettlementInput{
				ServiceAmount:          500,
				AdditionalDiscount:     25,
				AdditionalDiscountType: AdditionalDiscountFixed,
			},
			subTotal: 475,
			final:    475,
		},
		{
			name: "flat tax",
			in: SettlementInput{
				ServiceAmount: 500,
				Tax:           &TaxInput{Type: TaxTypeFlat, Value: 40},
			},
			subTotal: 500,
			tax:      40,
			final:    540,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := CalculateSettlement(tt.in)
			assert.Equal(t, tt.subTotal, out.SubTotal)
			assert.Equal(t, tt.tax, out.TaxAmount)
			assert.Equal(t, tt.final, out.FinalTotal)
		})
	}
}

func TestCalculateSettlement_PerStepRounding(t *testing.T) {
	// A third of 100 rounds to 33.33 before subtraction; the remaining base
	// is exactly 66.67, not 66.666...
	in := SettlementInput{
		ServiceAmount: 100,
		Membership: &MembershipDiscountInput{
			Discount:     33.333,
			DiscountType: MembershipDiscountPercentage,
		},
	}

	out := CalculateSettlement(in)

	assert.Equal(t, 33.33, out.MembershipDiscount)
	assert.Equal(t, 66.67, out.SubTotal)
}

func TestCalculateSettlement_NegativeTotalNotClamped(t *testing.T) {
	// A flat discount larger than the base drives the total negative; the
	// calculator reports it as-is rather than clamping to zero.
	in := SettlementInput{
		ServiceAmount: 100,
		Coupon:        &CouponDiscountInput{DiscountType: CouponDiscountFlat, DiscountAmount: 150},
	}

	out := CalculateSettlement(in)

	assert.Equal(t, -50.0, out.SubTotal)
	assert.Equal(t, -50.0, out.FinalTotal)
}

func TestCalculateSettlement_TipsExcludedFromTax(t *testing.T) {
	in := SettlementInput{
		ServiceAmount: 100,
		Tax:           &TaxInput{Type: TaxTypePercent, Value: 10},
		Tips:          20,
	}

	out := CalculateSettlement(in)

	assert.Equal(t, 10.0, out.TaxAmount) // 10% of 100, tips not in the base
	assert.Equal(t, 130.0, out.FinalTotal)
}

func TestCalculateSettlement_Pure(t *testing.T) {
	in := SettlementInput{
		ServiceAmount: 1000,
		ProductAmount: 200,
		Membership: &MembershipDiscountInput{
			Discount:     10,
			DiscountType: MembershipDiscountPercentage,
		},
		Tax:  &TaxInput{Type: TaxTypePercent, Value: 18},
		Tips: 50,
	}

	first := CalculateSettlement(in)
	second := CalculateSettlement(in)

	assert.Equal(t, first, second)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(33.333333))
	assert.Equal(t, 33.34, Round2(33.336))
	assert.Equal(t, -50.0, Round2(-50.0001))
	assert.Equal(t, 0.0, Round2(0))
}
