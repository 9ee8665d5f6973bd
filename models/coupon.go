package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coupon struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name           string `gorm:"not null"`
	Code           string `gorm:"not null;uniqueIndex:idx_salon_code,priority:2"`
	Description    string
	DiscountType   string  `gorm:"type:varchar(10);not null"` // "percent" or "flat"
	DiscountAmount float64 `gorm:"type:decimal(10,2);not null"`
	UseLimit       int     `gorm:"default:0"` // 0 means unlimited
	UseCount       int     `gorm:"default:0"`
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       bool `gorm:"default:true"`

	gorm.Model
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
