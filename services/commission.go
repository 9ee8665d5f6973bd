// services/commission.go
package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
)

// ParseSlotRange parses a "min-max" slot string into its inclusive bounds.
func ParseSlotRange(slot string) (min, max float64, err error) {
	parts := strings.SplitN(strings.TrimSpace(slot), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid commission slot %q", slot)
	}
	min, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid commission slot %q: %w", slot, err)
	}
	max, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid commission slot %q: %w", slot, err)
	}
	return min, max, nil
}

// CommissionForAmount looks up the commission for one service amount in a
// bucketed slot table. Slots are tried in Position order and the first slot
// whose [min,max] range contains the amount wins; both bounds are inclusive.
// Amounts that match no slot (and slots that fail to parse) earn nothing.
func CommissionForAmount(rc *models.RevenueCommission, amount float64) float64 {
	if rc == nil {
		return 0
	}
	slots := make([]models.CommissionSlot, len(rc.Slots))
	copy(slots, rc.Slots)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Position < slots[j].Position })

	for _, s := range slots {
		min, max, err := ParseSlotRange(s.Slot)
		if err != nil {
			continue
		}
		if amount < min || amount > max {
			continue
		}
		if rc.CommissionType == models.CommissionTypePercentage {
			return Round2(amount * s.Amount / 100)
		}
		return Round2(s.Amount)
	}
	return 0
}

// TipShare splits a payment's tip evenly across the distinct staff who worked
// the appointment. The split is equal, not proportional to service value, and
// the 2-decimal rounding remainder is not reconciled (100/3 pays 33.33 each).
func TipShare(tips float64, distinctStaff int) float64 {
	if distinctStaff <= 0 {
		return 0
	}
	return Round2(tips / float64(distinctStaff))
}
