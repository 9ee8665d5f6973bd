package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	BranchID *uuid.UUID `gorm:"type:uuid;index"`

	Name   string `gorm:"not null"`
	Email  string
	Phone  string `gorm:"not null"`
	Gender string `gorm:"type:varchar(10)"`
	Image  string

	// Fixed monthly salary, added on top of commission at payout time.
	Salary float64 `gorm:"type:decimal(10,2);default:0.0"`

	RevenueCommissionID *uuid.UUID         `gorm:"type:uuid;index"`
	RevenueCommission   *RevenueCommission `gorm:"foreignKey:RevenueCommissionID"`

	IsActive bool `gorm:"default:true"`

	gorm.Model
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
