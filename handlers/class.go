// class.go - Handles class listings, creation and admin moderation

package handlers

import (
	"net/http"

	"summer-camp-backend/database"
	"summer-camp-backend/models"

	"github.com/gin-gonic/gin"
)

type ClassInput struct {
	ClassName       string  `json:"className" binding:"required"`
	ClassImage      string  `json:"classImage"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" binding:"required,email"`
	Seats           int     `json:"seats" binding:"min=0"`
	Price           float64 `json:"price" binding:"min=0"`
}

type FeedbackInput struct {
	Feedback string `json:"feedback" binding:"required"`
}

// GetClasses lists classes, optionally filtered by instructor email.
// Without the filter every class is returned.
func GetClasses(c *gin.Context) {
	query := database.DB
	if instructorEmail := c.Query("instructorEmail"); instructorEmail != "" {
		query = query.Where("instructor_email = ?", instructorEmail)
	}

	classes := make([]models.Class, 0)
	if err := query.Find(&classes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// CreateClass inserts a new class in the pending state.
func CreateClass(c *gin.Context) {
	var input ClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	class := models.Class{
		ClassName:       input.ClassName,
		ClassImage:      input.ClassImage,
		InstructorName:  input.InstructorName,
		InstructorEmail: input.InstructorEmail,
		Seats:           input.Seats,
		Price:           input.Price,
		Status:          models.StatusPending,
	}
	if err := database.DB.Create(&class).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, class)
}

// ApproveClass moves the class with the given id to approved.
func ApproveClass(c *gin.Context) {
	setClassStatus(c, models.StatusApproved)
}

// DenyClass moves the class with the given id to denied.
func DenyClass(c *gin.Context) {
	setClassStatus(c, models.StatusDenied)
}

func setClassStatus(c *gin.Context, status string) {
	result := database.DB.Model(&models.Class{}).Where("id = ?", c.Param("id")).Update("status", status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": result.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.RowsAffected})
}

// FeedbackClass attaches admin feedback to a class. Feedback is
// independent of the approval status.
func FeedbackClass(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	result := database.DB.Model(&models.Class{}).Where("id = ?", c.Param("id")).Update("feedback", input.Feedback)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": result.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.RowsAffected})
}

// UpdateClass replaces the mutable field group of a class (name, image,
// seats, price). Status and feedback only change through the admin routes.
func UpdateClass(c *gin.Context) {
	var input ClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	result := database.DB.Model(&models.Class{}).Where("id = ?", c.Param("id")).Updates(map[string]interface{}{
		"class_name":  input.ClassName,
		"class_image": input.ClassImage,
		"seats":       input.Seats,
		"price":       input.Price,
	})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": result.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.RowsAffected})
}

// DeleteClass removes a class.
func DeleteClass(c *gin.Context) {
	result := database.DB.Delete(&models.Class{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": result.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.RowsAffected})
}

// GetApprovedClasses lists classes an admin has approved.
func GetApprovedClasses(c *gin.Context) {
	classes := make([]models.Class, 0)
	if err := database.DB.Where("status = ?", models.StatusApproved).Find(&classes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetPopularClasses lists the six classes with the most seats. Ties come
// back in whatever order the database picks.
func GetPopularClasses(c *gin.Context) {
	classes := make([]models.Class, 0)
	if err := database.DB.Order("seats desc").Limit(6).Find(&classes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}
