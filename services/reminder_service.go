// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler sends appointment reminders every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendAppointmentReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendAppointmentReminders messages every customer with an upcoming
// appointment tomorrow.
func (s *ReminderService) SendAppointmentReminders() {
	log.Println("Starting appointment reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.Preload("Customer").
		Where("status = ? AND appointment_date >= ? AND appointment_date < ?",
			models.AppointmentStatusUpcoming, dayStart, dayEnd).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch upcoming appointments: %v", err)
		return
	}

	for _, appt := range appointments {
		s.sendReminder(appt)
	}

	log.Println("Appointment reminder processing completed")
}

func (s *ReminderService) sendReminder(appt models.Appointment) {
	customer := appt.Customer
	if customer.Phone == "" {
		return
	}

	message := fmt.Sprintf("Hi %s, this is a reminder for your appointment tomorrow at %s. See you soon!",
		customer.Name, appt.AppointmentDate.Format("3:04 PM"))

	// WhatsApp for E.164 numbers, SMS otherwise
	channel := "sms"
	to := customer.Phone
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	}

	reminderLog := models.ReminderLog{
		SalonID:       appt.SalonID,
		CustomerID:    customer.ID,
		AppointmentID: appt.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
	}
}
