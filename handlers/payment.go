// payment.go - Handles payment intents, checkout and enrollments

package handlers

import (
	"log"
	"math"
	"net/http"

	"summer-camp-backend/database"
	"summer-camp-backend/middleware"
	"summer-camp-backend/models"
	"summer-camp-backend/payment"

	"github.com/gin-gonic/gin"
)

type PaymentIntentInput struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type PaymentInput struct {
	Email         string  `json:"email" binding:"required,email"`
	CartID        uint    `json:"cartId" binding:"required"`
	ClassID       uint    `json:"classId"`
	ClassName     string  `json:"className"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
}

// CreatePaymentIntent asks the payment provider for a client secret over
// the given price. The price arrives in dollars and Stripe wants cents.
func CreatePaymentIntent(c *gin.Context) {
	var input PaymentIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	clientSecret, err := payment.CreateIntent(int64(math.Round(input.Price * 100)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// CreatePayment records a checkout. The payment row is inserted first and
// the cart row deleted second; the two writes are independent. If the
// delete fails or matches nothing the payment still stands and the caller
// sees a zero deletedCount.
func CreatePayment(c *gin.Context) {
	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	pay := models.Payment{
		Email:         input.Email,
		CartID:        input.CartID,
		ClassID:       input.ClassID,
		ClassName:     input.ClassName,
		Amount:        input.Amount,
		TransactionID: input.TransactionID,
	}
	if err := database.DB.Create(&pay).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}

	result := database.DB.Delete(&models.CartItem{}, "id = ?", input.CartID)
	if result.Error != nil {
		// The payment is already stored; report the failed cleanup and move on.
		log.Printf("cart cleanup failed for cart %d: %v", input.CartID, result.Error)
	}
	c.JSON(http.StatusOK, gin.H{
		"insertResult": pay,
		"deleteResult": gin.H{"deletedCount": result.RowsAffected},
	})
}

// GetEnrolled lists the payments owned by the email in the query, newest
// first. Same ownership behavior as GetCart.
func GetEnrolled(c *gin.Context) {
	email, ok := middleware.OwnerEmail(c)
	if !ok {
		return
	}

	payments := make([]models.Payment, 0)
	if email == "" {
		c.JSON(http.StatusOK, payments)
		return
	}
	if err := database.DB.Where("email = ?", email).Order("created_at desc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}
