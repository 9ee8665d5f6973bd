package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment methods
const (
	PaymentMethodCash  = "Cash"
	PaymentMethodCard  = "Card"
	PaymentMethodUPI   = "UPI"
	PaymentMethodSplit = "Split"
)

// SplitEntry is one leg of a split payment.
type SplitEntry struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// PaymentSplitList is stored as a jsonb column, same pattern as JSONB.
type PaymentSplitList []SplitEntry

func (l PaymentSplitList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *PaymentSplitList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &l)
}

// Payment is one settlement transaction against an appointment. It is
// immutable once created except for InvoiceFilename, which the invoice
// renderer fills in after the fact.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SalonID       uuid.UUID `gorm:"type:uuid;index;not null"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceAmount      float64 `gorm:"type:decimal(10,2);default:0.0"`
	ProductAmount      float64 `gorm:"type:decimal(10,2);default:0.0"`
	AdditionalCharges  float64 `gorm:"type:decimal(10,2);default:0.0"`
	MembershipDiscount float64 `gorm:"type:decimal(10,2);default:0.0"`
	CouponDiscount     float64 `gorm:"type:decimal(10,2);default:0.0"`
	AdditionalDiscount float64 `gorm:"type:decimal(10,2);default:0.0"`
	// "percentage" or "fixed" — records how AdditionalDiscount was derived
	AdditionalDiscountType string  `gorm:"type:varchar(10)"`
	SubTotal               float64 `gorm:"type:decimal(10,2);default:0.0"`
	TaxAmount              float64 `gorm:"type:decimal(10,2);default:0.0"`
	Tips                   float64 `gorm:"type:decimal(10,2);default:0.0"`
	FinalTotal             float64 `gorm:"type:decimal(10,2);not null"`

	PaymentMethod   string           `gorm:"type:varchar(10);not null"`
	PaymentSplit    PaymentSplitList `gorm:"type:jsonb;default:'[]'"`
	InvoiceFilename string

	CouponID *uuid.UUID `gorm:"type:uuid;index"`
	TaxID    *uuid.UUID `gorm:"type:uuid;index"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID"`

	CreatedAt time.Time
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
