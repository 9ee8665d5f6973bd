package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment lifecycle statuses
const (
	AppointmentStatusUpcoming  = "upcoming"
	AppointmentStatusCheckedIn = "checked-in"
	AppointmentStatusCheckOut  = "check-out"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment payment statuses
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

type Appointment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID         uuid.UUID  `gorm:"type:uuid;index;not null"`
	BranchID        *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID  `gorm:"type:uuid;index"`

	AppointmentDate time.Time `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);default:'upcoming'"`
	PaymentStatus   string    `gorm:"type:varchar(10);default:'Pending'"`
	Notes           string

	// Sum of service and product line amounts at booking time. Diverges from
	// GrandTotal once discounts and tax are applied at settlement.
	TotalPayment float64 `gorm:"type:decimal(10,2);default:0.0"`
	GrandTotal   float64 `gorm:"type:decimal(10,2);default:0.0"`

	Services []AppointmentService `gorm:"foreignKey:AppointmentID"`
	Products []AppointmentProduct `gorm:"foreignKey:AppointmentID"`

	Customer Customer `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

// AppointmentService is a price snapshot taken when the appointment is created
// or updated, not a live lookup. Paid and CommissionEarned are written by the
// payout flow; a line marked paid is never attributed to a later payout.
type AppointmentService struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID     uuid.UUID `gorm:"type:uuid;index;not null"`
	StaffID       uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceName      string  `gorm:"not null"`
	ServiceAmount    float64 `gorm:"type:decimal(10,2);not null"`
	Paid             bool    `gorm:"default:false;index"`
	CommissionEarned float64 `gorm:"type:decimal(10,2);default:0.0"`

	CreatedAt time.Time
}

type AppointmentProduct struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AppointmentID uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	VariantID     *uuid.UUID `gorm:"type:uuid;index"`

	ProductName string  `gorm:"not null"`
	Quantity    int     `gorm:"default:1"`
	UnitPrice   float64 `gorm:"type:decimal(10,2);not null"`
	TotalPrice  float64 `gorm:"type:decimal(10,2);not null"`

	CreatedAt time.Time
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
