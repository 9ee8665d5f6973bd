package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchPackage bundles services at a package price.
type BranchPackage struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string  `gorm:"not null"`
	Description  string
	PackagePrice float64 `gorm:"type:decimal(10,2);not null"`
	DurationDays int     `gorm:"default:30"`
	IsActive     bool    `gorm:"default:true"`

	Services []BranchPackageService `gorm:"foreignKey:BranchPackageID"`

	gorm.Model
}

type BranchPackageService struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BranchPackageID uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity        int       `gorm:"default:1"`
}

type CustomerPackage struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID         uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index;not null"`
	BranchPackageID uuid.UUID `gorm:"type:uuid;index;not null"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	IsActive  bool      `gorm:"default:true"`

	BranchPackage BranchPackage `gorm:"foreignKey:BranchPackageID"`

	gorm.Model
}

func (p *BranchPackage) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

func (s *BranchPackageService) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

func (p *CustomerPackage) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
