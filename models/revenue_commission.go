package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Commission types
const (
	CommissionTypePercentage = "Percentage"
	CommissionTypeFlat       = "flat"
)

// RevenueCommission is a bucketed commission table assigned to staff. Slots
// are consulted in Position order; the first slot whose range contains the
// service amount wins.
type RevenueCommission struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	CommissionName string `gorm:"not null"`
	CommissionType string `gorm:"type:varchar(15);not null"` // "Percentage" or "flat"

	Slots []CommissionSlot `gorm:"foreignKey:RevenueCommissionID"`

	gorm.Model
}

// CommissionSlot maps an amount range to a commission value. Slot is the raw
// "min-max" string, e.g. "0-500".
type CommissionSlot struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RevenueCommissionID uuid.UUID `gorm:"type:uuid;index;not null"`

	Slot     string  `gorm:"not null"`
	Amount   float64 `gorm:"type:decimal(10,2);not null"`
	Position int     `gorm:"default:0"`
}

func (r *RevenueCommission) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

func (s *CommissionSlot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
