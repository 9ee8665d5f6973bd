package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffEarning is the running accumulator for one staff member. The snapshot
// columns are refreshed whenever earnings are queried; EarningStartDate is the
// watermark and only moves forward when a payout is made.
type StaffEarning struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`
	StaffID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	TotalBooking      int     `gorm:"default:0"`
	ServiceAmount     float64 `gorm:"type:decimal(10,2);default:0.0"`
	CommissionEarning float64 `gorm:"type:decimal(10,2);default:0.0"`
	TipEarning        float64 `gorm:"type:decimal(10,2);default:0.0"`
	StaffEarning      float64 `gorm:"type:decimal(10,2);default:0.0"`

	EarningStartDate time.Time `gorm:"not null"`

	gorm.Model
}

// StaffPayout is the immutable record of one payout event.
type StaffPayout struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`
	StaffID uuid.UUID `gorm:"type:uuid;index;not null"`

	CommissionAmount float64 `gorm:"type:decimal(10,2);default:0.0"`
	TipAmount        float64 `gorm:"type:decimal(10,2);default:0.0"`
	SalaryAmount     float64 `gorm:"type:decimal(10,2);default:0.0"`
	TotalPay         float64 `gorm:"type:decimal(10,2);not null"`

	PaymentMethod string `gorm:"type:varchar(10);not null"`
	Description   string
	PayoutDate    time.Time `gorm:"not null"`

	CreatedAt time.Time
}

func (e *StaffEarning) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}

func (p *StaffPayout) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
