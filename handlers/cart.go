// cart.go - Handles the shopping cart for selected classes

package handlers

import (
	"net/http"

	"summer-camp-backend/database"
	"summer-camp-backend/middleware"
	"summer-camp-backend/models"

	"github.com/gin-gonic/gin"
)

type CartInput struct {
	Email      string  `json:"email" binding:"required,email"`
	ClassID    uint    `json:"classId" binding:"required"`
	ClassName  string  `json:"className"`
	ClassImage string  `json:"classImage"`
	Price      float64 `json:"price"`
}

// AddToCart inserts a selected class into the caller's cart.
func AddToCart(c *gin.Context) {
	var input CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	item := models.CartItem{
		Email:      input.Email,
		ClassID:    input.ClassID,
		ClassName:  input.ClassName,
		ClassImage: input.ClassImage,
		Price:      input.Price,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetCart lists the cart rows owned by the email in the query. The
// ownership gate rejects a mismatch with the token; a missing email
// degrades to an empty list.
func GetCart(c *gin.Context) {
	email, ok := middleware.OwnerEmail(c)
	if !ok {
		return
	}

	items := make([]models.CartItem, 0)
	if email == "" {
		c.JSON(http.StatusOK, items)
		return
	}
	if err := database.DB.Where("email = ?", email).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// DeleteCartItem removes a selected class from the cart.
func DeleteCartItem(c *gin.Context) {
	result := database.DB.Delete(&models.CartItem{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": result.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.RowsAffected})
}
