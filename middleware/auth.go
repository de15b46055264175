// auth.go - Bearer token verification and role checks
//
// Every protected route runs RequireToken first; role-gated routes chain
// RequireRole after it. The role check reads the role from the database,
// never from anything the client sends.

package middleware

import (
	"net/http"
	"strings"

	"summer-camp-backend/config"
	"summer-camp-backend/database"
	"summer-camp-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// EmailKey is the context key holding the authenticated email.
const EmailKey = "email"

// RequireToken verifies the Authorization header and stores the claimed
// email in the request context for the gates and handlers behind it.
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract the bearer token from the Authorization header
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		// STEP 2: Parse and validate the token (signature and expiry)
		cfg := config.Load()
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		// STEP 3: Attach the claimed identity to the context
		email, ok := claims[EmailKey].(string)
		if !ok || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}
		c.Set(EmailKey, email)
		c.Next()
	}
}

// RequireRole looks up the authenticated user and requires the given role.
// Must be chained after RequireToken.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		var user models.User
		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// OwnerEmail applies the ownership gate for list routes scoped by ?email=.
// A missing parameter yields an empty result ("" with ok=true); a parameter
// that does not match the token aborts with 403 and ok=false.
func OwnerEmail(c *gin.Context) (string, bool) {
	email := c.Query(EmailKey)
	if email == "" {
		return "", true
	}
	if email != c.GetString(EmailKey) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
		return "", false
	}
	return email, true
}
