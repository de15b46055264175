// helpers_test.go - Shared setup for handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"summer-camp-backend/config"
	"summer-camp-backend/database"
	"summer-camp-backend/middleware"
	"summer-camp-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// setupTestDB removes any existing test DB and creates a new one, so every
// test runs against an isolated store instead of shared global state.
func setupTestDB(t *testing.T) {
	t.Helper()
	_ = os.Remove("test.db")
	if err := database.Connect("test.db"); err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove("test.db") })
}

// setupRouter mirrors the route table from main.go.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/jwt", IssueToken)
	r.POST("/users", CreateUser)
	r.GET("/instructors", GetInstructors)
	r.GET("/classes", GetClasses)
	r.POST("/classes", CreateClass)
	r.GET("/approvedClasses", GetApprovedClasses)
	r.GET("/popularClasses", GetPopularClasses)
	r.POST("/carts", AddToCart)
	r.DELETE("/selectedClasses/:id", DeleteCartItem)

	r.GET("/users/admin/:email", middleware.RequireToken(), CheckAdmin)
	r.GET("/users/instructor/:email", middleware.RequireToken(), CheckInstructor)
	r.GET("/carts", middleware.RequireToken(), GetCart)
	r.POST("/create-payment-intent", middleware.RequireToken(), CreatePaymentIntent)
	r.POST("/payments", middleware.RequireToken(), CreatePayment)
	r.GET("/enrolled", middleware.RequireToken(), GetEnrolled)

	admin := r.Group("/", middleware.RequireToken(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", GetUsers)
		admin.PATCH("/users/admin/:id", MakeAdmin)
		admin.PATCH("/users/instructor/:id", MakeInstructor)
		admin.PATCH("/classes/approve/:id", ApproveClass)
		admin.PATCH("/classes/deny/:id", DenyClass)
		admin.PATCH("/classes/feedback/:id", FeedbackClass)
	}

	r.PUT("/classes/:id", UpdateClass)
	r.DELETE("/classes/:id", DeleteClass)

	return r
}

// createUser stores a user directly and returns it.
func createUser(t *testing.T, email, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Role: role}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// signToken issues a token for email the same way POST /jwt does.
func signToken(t *testing.T, email string) string {
	t.Helper()
	cfg := config.Load()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// doRequest serves a JSON request against the router and records the response.
func doRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}
