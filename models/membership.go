package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchMembership is a membership plan sold by a salon. Discount drives the
// membership_discount step of the settlement calculation.
type BranchMembership struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name             string  `gorm:"not null"`
	Description      string
	Discount         float64 `gorm:"type:decimal(10,2);not null"`
	DiscountType     string  `gorm:"type:varchar(10);not null"` // "percentage" or "flat"
	SubscriptionPlan string  `gorm:"not null"`                  // "1-month", "6-months", "1-year", "lifetime"
	MembershipAmount float64 `gorm:"type:decimal(10,2);not null"`
	IsActive         bool    `gorm:"default:true"`

	gorm.Model
}

// CustomerMembership is one purchase of a plan by a customer. A customer can
// accumulate a history of these; the active one with the latest end date is
// the one consulted at settlement time.
type CustomerMembership struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID            uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID         uuid.UUID `gorm:"type:uuid;index;not null"`
	BranchMembershipID uuid.UUID `gorm:"type:uuid;index;not null"`

	StartDate time.Time `gorm:"not null"`
	// Nil for lifetime plans.
	EndDate  *time.Time
	IsActive bool `gorm:"default:true"`

	BranchMembership BranchMembership `gorm:"foreignKey:BranchMembershipID"`

	gorm.Model
}

func (m *BranchMembership) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

func (m *CustomerMembership) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
