// user.go - Handles user registration, role management and token issuance

package handlers

import (
	"net/http"
	"time"

	"summer-camp-backend/config"
	"summer-camp-backend/database"
	"summer-camp-backend/middleware"
	"summer-camp-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type TokenInput struct {
	Email string `json:"email" binding:"required,email"`
}

type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// IssueToken signs a short-lived access token for the given email.
// Issuance and verification share the secret from config; the expiry is
// only enforced when the token is verified.
func IssueToken(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	cfg := config.Load()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": input.Email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// CreateUser registers a user. Registration is idempotent on email:
// re-registering reports "user already exists" and leaves the stored
// record (including its role) untouched.
func CreateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	var existing models.User
	err := database.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}

	user := models.User{Name: input.Name, Email: input.Email}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUsers returns every registered user. Admin only.
func GetUsers(c *gin.Context) {
	users := make([]models.User, 0)
	if err := database.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetInstructors returns users holding the instructor role.
func GetInstructors(c *gin.Context) {
	instructors := make([]models.User, 0)
	if err := database.DB.Where("role = ?", models.RoleInstructor).Find(&instructors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, instructors)
}

// MakeAdmin promotes the user with the given id to admin.
func MakeAdmin(c *gin.Context) {
	setUserRole(c, models.RoleAdmin)
}

// MakeInstructor promotes the user with the given id to instructor.
func MakeInstructor(c *gin.Context) {
	setUserRole(c, models.RoleInstructor)
}

// setUserRole replaces the role of the user with the given id. A missing
// id is not an error: the caller sees a zero modifiedCount.
func setUserRole(c *gin.Context, role string) {
	result := database.DB.Model(&models.User{}).Where("id = ?", c.Param("id")).Update("role", role)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": result.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.RowsAffected})
}

// CheckAdmin reports whether the email in the path holds the admin role.
// A token for a different email answers false rather than rejecting.
func CheckAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin": hasRole(c, models.RoleAdmin)})
}

// CheckInstructor reports whether the email in the path holds the
// instructor role, with the same degrade-to-false behavior as CheckAdmin.
func CheckInstructor(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"instructor": hasRole(c, models.RoleInstructor)})
}

func hasRole(c *gin.Context, role string) bool {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		return false
	}
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return false
	}
	return user.Role == role
}
