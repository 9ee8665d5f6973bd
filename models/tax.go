package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tax struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title    string  `gorm:"not null"`
	Type     string  `gorm:"type:varchar(10);not null"` // "percent" or "flat"
	Value    float64 `gorm:"type:decimal(10,2);not null"`
	IsActive bool    `gorm:"default:true"`

	gorm.Model
}

func (t *Tax) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
