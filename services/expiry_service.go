// services/expiry_service.go
package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/iFloriana/backend-ifloriana-sub000/models"
)

// ExpiryService deactivates customer memberships and packages whose end date
// has passed. Lifetime memberships have a nil end date and are never swept.
type ExpiryService struct {
	db *gorm.DB
}

func NewExpiryService(db *gorm.DB) *ExpiryService {
	return &ExpiryService{db: db}
}

// StartScheduler runs the sweep every day just after midnight.
func (s *ExpiryService) StartScheduler() {
	c := cron.New()

	c.AddFunc("5 0 * * *", func() {
		s.Sweep()
	})

	c.Start()
	log.Println("Expiry scheduler started")
}

func (s *ExpiryService) Sweep() {
	now := time.Now()

	res := s.db.Model(&models.CustomerMembership{}).
		Where("is_active = true AND end_date IS NOT NULL AND end_date < ?", now).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("Membership expiry sweep failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("Expired %d customer memberships", res.RowsAffected)
	}

	res = s.db.Model(&models.CustomerPackage{}).
		Where("is_active = true AND end_date < ?", now).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("Package expiry sweep failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("Expired %d customer packages", res.RowsAffected)
	}
}
