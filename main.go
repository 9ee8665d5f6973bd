package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/models"
	"github.com/iFloriana/backend-ifloriana-sub000/routes"
	"github.com/iFloriana/backend-ifloriana-sub000/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.Branch{},
		&models.Customer{},
		&models.Staff{},
		&models.Service{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AppointmentProduct{},
		&models.Payment{},
		&models.Coupon{},
		&models.Tax{},
		&models.BranchMembership{},
		&models.CustomerMembership{},
		&models.BranchPackage{},
		&models.BranchPackageService{},
		&models.CustomerPackage{},
		&models.RevenueCommission{},
		&models.CommissionSlot{},
		&models.StaffEarning{},
		&models.StaffPayout{},
		&models.PasswordResetToken{},
		&models.ReminderLog{},
	)
}

func main() {
	services.NewReminderService(config.DB).StartScheduler()
	services.NewExpiryService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
