// services/invoice_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
)

// InvoiceService renders settlement PDFs. Rendering runs after the payment is
// committed and never rolls it back: a failed invoice is logged and the
// payment stands.
type InvoiceService struct {
	db  *gorm.DB
	dir string
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	dir := os.Getenv("INVOICE_DIR")
	if dir == "" {
		dir = "invoices"
	}
	return &InvoiceService{db: db, dir: dir}
}

// Generate renders the invoice for a payment and records the filename on the
// payment row (its only mutable field). Safe to call from a goroutine.
func (s *InvoiceService) Generate(payment models.Payment, appointment models.Appointment, customerName string) {
	filename, err := s.render(payment, appointment, customerName)
	if err != nil {
		log.Printf("payment %s saved but invoice generation failed: %v", payment.ID, err)
		return
	}

	if err := s.db.Model(&models.Payment{}).Where("id = ?", payment.ID).
		Update("invoice_filename", filename).Error; err != nil {
		log.Printf("payment %s: failed to record invoice filename: %v", payment.ID, err)
	}
}

func (s *InvoiceService) render(payment models.Payment, appointment models.Appointment, customerName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Invoice")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Payment: %s", payment.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", customerName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", payment.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(120, 7, "Item")
	pdf.Cell(0, 7, "Amount")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range appointment.Services {
		pdf.Cell(120, 6, line.ServiceName)
		pdf.Cell(0, 6, fmt.Sprintf("%.2f", line.ServiceAmount))
		pdf.Ln(6)
	}
	for _, line := range appointment.Products {
		pdf.Cell(120, 6, fmt.Sprintf("%s x%d", line.ProductName, line.Quantity))
		pdf.Cell(0, 6, fmt.Sprintf("%.2f", line.TotalPrice))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	rows := []struct {
		label  string
		amount float64
	}{
		{"Additional charges", payment.AdditionalCharges},
		{"Membership discount", -payment.MembershipDiscount},
		{"Coupon discount", -payment.CouponDiscount},
		{"Additional discount", -payment.AdditionalDiscount},
		{"Sub total", payment.SubTotal},
		{"Tax", payment.TaxAmount},
		{"Tips", payment.Tips},
		{"Total", payment.FinalTotal},
	}
	for _, r := range rows {
		pdf.Cell(120, 6, r.label)
		pdf.Cell(0, 6, fmt.Sprintf("%.2f", r.amount))
		pdf.Ln(6)
	}

	filename := payment.ID.String() + ".pdf"
	if err := pdf.OutputFileAndClose(filepath.Join(s.dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}
