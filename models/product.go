package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Description string
	Brand       string
	Category    string  `gorm:"default:'General'"`
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Stock       int     `gorm:"default:0"`
	Image       string
	IsActive    bool `gorm:"default:true"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID"`

	gorm.Model
}

// ProductVariant carries its own price; when an appointment references a
// variant, the variant price wins over the product base price.
type ProductVariant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"not null"` // e.g. "250ml", "Large"
	Price     float64   `gorm:"type:decimal(10,2);not null"`
	Stock     int       `gorm:"default:0"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
