// main.go - Entry point for the Summer Camp backend server

package main

import (
	"log"

	"summer-camp-backend/config"
	"summer-camp-backend/database"
	"summer-camp-backend/handlers"
	"summer-camp-backend/middleware"
	"summer-camp-backend/models"
	"summer-camp-backend/payment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// STEP 1: Load configuration and establish connections
	godotenv.Load()
	cfg := config.Load()

	if err := database.Connect(cfg.DBPath); err != nil {
		log.Fatal("DB connection error: ", err)
	}
	payment.Init(cfg.StripeKey)

	// STEP 2: Create Gin router and configure routes
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Summer Camp server is running")
	})

	// Public routes (no authentication required)
	r.POST("/jwt", handlers.IssueToken)
	r.POST("/users", handlers.CreateUser)
	r.GET("/instructors", handlers.GetInstructors)
	r.GET("/classes", handlers.GetClasses)
	r.POST("/classes", handlers.CreateClass)
	r.GET("/approvedClasses", handlers.GetApprovedClasses)
	r.GET("/popularClasses", handlers.GetPopularClasses)
	r.POST("/carts", handlers.AddToCart)
	r.DELETE("/selectedClasses/:id", handlers.DeleteCartItem)

	// Protected routes (require a valid token)
	r.GET("/users/admin/:email", middleware.RequireToken(), handlers.CheckAdmin)
	r.GET("/users/instructor/:email", middleware.RequireToken(), handlers.CheckInstructor)
	r.GET("/carts", middleware.RequireToken(), handlers.GetCart)
	r.POST("/create-payment-intent", middleware.RequireToken(), handlers.CreatePaymentIntent)
	r.POST("/payments", middleware.RequireToken(), handlers.CreatePayment)
	r.GET("/enrolled", middleware.RequireToken(), handlers.GetEnrolled)

	// Admin routes (token plus admin role)
	admin := r.Group("/", middleware.RequireToken(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", handlers.GetUsers)
		admin.PATCH("/users/admin/:id", handlers.MakeAdmin)
		admin.PATCH("/users/instructor/:id", handlers.MakeInstructor)
		admin.PATCH("/classes/approve/:id", handlers.ApproveClass)
		admin.PATCH("/classes/deny/:id", handlers.DenyClass)
		admin.PATCH("/classes/feedback/:id", handlers.FeedbackClass)
	}

	// Instructor maintenance of their own listings
	r.PUT("/classes/:id", handlers.UpdateClass)
	r.DELETE("/classes/:id", handlers.DeleteClass)

	// STEP 3: Start the web server
	r.Run(":" + cfg.Port)
}
