// services/commission_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
)

func TestParseSlotRange(t *testing.T) {
	min, max, err := ParseSlotRange("0-500")
	require.NoError(t, err)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 500.0, max)

	min, max, err = ParseSlotRange(" 501 - 1000 ")
	require.NoError(t, err)
	assert.Equal(t, 501.0, min)
	assert.Equal(t, 1000.0, max)

	_, _, err = ParseSlotRange("501")
	assert.Error(t, err)

	_, _, err = ParseSlotRange("abc-def")
	assert.Error(t, err)
}

func percentageCommission(slots ...models.CommissionSlot) *models.RevenueCommission {
	return &models.RevenueCommission{
		CommissionType: models.CommissionTypePercentage,
		Slots:          slots,
	}
}

func TestCommissionForAmount_Percentage(t *testing.T) {
	rc := percentageCommission(
		models.CommissionSlot{Slot: "0-500", Amount: 5, Position: 0},
		models.CommissionSlot{Slot: "501-1000", Amount: 10, Position: 1},
	)

	assert.Equal(t, 5.0, CommissionForAmount(rc, 100))   // 5% of 100
	assert.Equal(t, 80.0, CommissionForAmount(rc, 800))  // 10% of 800
	assert.Equal(t, 0.0, CommissionForAmount(rc, 5000))  // no slot matches
	assert.Equal(t, 0.0, CommissionForAmount(nil, 1000)) // no table at all
}

func TestCommissionForAmount_InclusiveBounds(t *testing.T) {
	rc := percentageCommission(
		models.CommissionSlot{Slot: "0-500", Amount: 5, Position: 0},
		models.CommissionSlot{Slot: "501-1000", Amount: 10, Position: 1},
	)

	// Both ends of a slot belong to it.
	assert.Equal(t, 25.0, CommissionForAmount(rc, 500))   // 5% of 500, upper bound
	assert.Equal(t, 50.1, CommissionForAmount(rc, 501))   // 10% of 501, lower bound
	assert.Equal(t, 100.0, CommissionForAmount(rc, 1000)) // 10% of 1000
}

func TestCommissionForAmount_FirstMatchWinsByPosition(t *testing.T) {
	// Overlapping slots: the one with the lower position wins regardless of
	// declaration order.
	rc := percentageCommission(
		models.CommissionSlot{Slot: "0-1000", Amount: 20, Position: 1},
		models.CommissionSlot{Slot: "0-500", Amount: 5, Position: 0},
	)

	assert.Equal(t, 15.0, CommissionForAmount(rc, 300)) // 5%, not 20%
	assert.Equal(t, 160.0, CommissionForAmount(rc, 800))
}

func TestCommissionForAmount_Flat(t *testing.T) {
	rc := &models.RevenueCommission{
		CommissionType: models.CommissionTypeFlat,
		Slots: []models.CommissionSlot{
			{Slot: "0-500", Amount: 25, Position: 0},
			{Slot: "501-1000", Amount: 60, Position: 1},
		},
	}

	assert.Equal(t, 25.0, CommissionForAmount(rc, 499))
	assert.Equal(t, 60.0, CommissionForAmount(rc, 750))
}

func TestCommissionForAmount_SkipsMalformedSlots(t *testing.T) {
	rc := percentageCommission(
		models.CommissionSlot{Slot: "garbage", Amount: 50, Position: 0},
		models.CommissionSlot{Slot: "0-1000", Amount: 10, Position: 1},
	)

	assert.Equal(t, 30.0, CommissionForAmount(rc, 300))
}

func TestTipShare(t *testing.T) {
	assert.Equal(t, 33.33, TipShare(100, 3)) // remainder not reconciled
	assert.Equal(t, 50.0, TipShare(100, 2))
	assert.Equal(t, 100.0, TipShare(100, 1))
	assert.Equal(t, 0.0, TipShare(100, 0))
	assert.Equal(t, 0.0, TipShare(0, 3))
}
