package routes

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/iFloriana/backend-ifloriana-sub000/config"
	"github.com/iFloriana/backend-ifloriana-sub000/controllers"
	"github.com/iFloriana/backend-ifloriana-sub000/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://app.ifloriana.com",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	invoiceDir := os.Getenv("INVOICE_DIR")
	if invoiceDir == "" {
		invoiceDir = "invoices"
	}
	r.Static("/invoices", invoiceDir)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("")
	api.Use(utils.AuthMiddleware())
	{
		salon := api.Group("/salon")
		{
			salon.GET("", controllers.GetSalon)
			salon.PUT("", controllers.UpdateSalon)
		}

		branches := api.Group("/branches")
		{
			branches.POST("", controllers.CreateBranch)
			branches.GET("", controllers.GetBranches)
			branches.GET("/:id", controllers.GetBranch)
			branches.PUT("/:id", controllers.UpdateBranch)
			branches.DELETE("/:id", controllers.DeleteBranch)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		products := api.Group("/products")
		{
			products.POST("", controllers.CreateProduct)
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		staff := api.Group("/staff")
		{
			staff.POST("", controllers.CreateStaff)
			staff.GET("", controllers.GetStaffList)
			staff.GET("/:id", controllers.GetStaff)
			staff.PUT("/:id", controllers.UpdateStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}

		coupons := api.Group("/coupons")
		{
			coupons.POST("", controllers.CreateCoupon)
			coupons.GET("", controllers.GetCoupons)
			coupons.GET("/:id", controllers.GetCoupon)
			coupons.PUT("/:id", controllers.UpdateCoupon)
			coupons.DELETE("/:id", controllers.DeleteCoupon)
		}

		taxes := api.Group("/taxes")
		{
			taxes.POST("", controllers.CreateTax)
			taxes.GET("", controllers.GetTaxes)
			taxes.PUT("/:id", controllers.UpdateTax)
			taxes.DELETE("/:id", controllers.DeleteTax)
		}

		memberships := api.Group("/memberships")
		{
			memberships.POST("", controllers.CreateBranchMembership)
			memberships.GET("", controllers.GetBranchMemberships)
			memberships.PUT("/:id", controllers.UpdateBranchMembership)
			memberships.DELETE("/:id", controllers.DeleteBranchMembership)
			memberships.POST("/purchase", controllers.PurchaseMembership)
		}

		packages := api.Group("/packages")
		{
			packages.POST("", controllers.CreateBranchPackage)
			packages.GET("", controllers.GetBranchPackages)
			packages.DELETE("/:id", controllers.DeleteBranchPackage)
			packages.POST("/purchase", controllers.PurchasePackage)
		}

		commissions := api.Group("/revenue-commissions")
		{
			commissions.POST("", controllers.CreateRevenueCommission)
			commissions.GET("", controllers.GetRevenueCommissions)
			commissions.PUT("/:id", controllers.UpdateRevenueCommission)
			commissions.DELETE("/:id", controllers.DeleteRevenueCommission)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		payments := api.Group("/payments")
		{
			payments.POST("", controllers.CreatePayment)
			payments.GET("", controllers.GetPayments)
			payments.GET("/:id", controllers.GetPayment)
		}

		earnings := api.Group("/staff-earning")
		{
			earnings.GET("", controllers.GetStaffEarnings)
			earnings.GET("/:staff_id", controllers.GetStaffEarning)
			earnings.POST("/pay/:staff_id", controllers.PayStaff)
		}
		api.GET("/staff-payouts", controllers.GetStaffPayouts)

		api.GET("/daily-booking", controllers.GetDailyBooking)
		api.GET("/overall-summary", controllers.GetOverallSummary)
	}

	return r
}
