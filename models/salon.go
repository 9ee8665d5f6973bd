package models

import (
	"github.com/google/uuid"
)

type Salon struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"not null"`
	Address      string
	Phone        string
	Image        string
	WorkingHours JSONB `gorm:"type:jsonb;default:'{}'"`
	IsActive     bool  `gorm:"default:true"`

	Users     []User     `gorm:"foreignKey:SalonID"`
	Branches  []Branch   `gorm:"foreignKey:SalonID"`
	Customers []Customer `gorm:"foreignKey:SalonID"`
	Services  []Service  `gorm:"foreignKey:SalonID"`
	Staff     []Staff    `gorm:"foreignKey:SalonID"`
}
