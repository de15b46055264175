// payment_test.go - Tests for payment intents, checkout and enrollments

package handlers

import (
	"encoding/json"
	"testing"

	"summer-camp-backend/database"
	"summer-camp-backend/models"
	"summer-camp-backend/payment"

	"github.com/stretchr/testify/assert"
)

// TestCreatePaymentIntent stubs the provider call and checks the client
// secret comes back with the price converted to cents.
func TestCreatePaymentIntent(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	orig := payment.CreateIntent
	defer func() { payment.CreateIntent = orig }()
	var gotAmount int64
	payment.CreateIntent = func(amountCents int64) (string, error) {
		gotAmount = amountCents
		return "pi_test_secret", nil
	}

	token := signToken(t, "dana@test.com")

	w := doRequest(router, "POST", "/create-payment-intent", map[string]float64{"price": 49.99}, token)
	assert.Equal(t, 200, w.Code)
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "pi_test_secret", resp["clientSecret"])
	assert.Equal(t, int64(4999), gotAmount)

	// No token, no intent
	w = doRequest(router, "POST", "/create-payment-intent", map[string]float64{"price": 49.99}, "")
	assert.Equal(t, 401, w.Code)
}

// TestCheckout verifies both postconditions independently: a payment row
// exists for the cart id, and the cart row is gone.
func TestCheckout(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	item := createCartItem(t, "dana@test.com", 3)
	token := signToken(t, "dana@test.com")

	body := map[string]interface{}{
		"email":         "dana@test.com",
		"cartId":        item.ID,
		"classId":       item.ClassID,
		"className":     item.ClassName,
		"amount":        item.Price,
		"transactionId": "pi_abc123",
	}
	w := doRequest(router, "POST", "/payments", body, token)
	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	deleteResult := resp["deleteResult"].(map[string]interface{})
	assert.Equal(t, float64(1), deleteResult["deletedCount"])

	var pay models.Payment
	err := database.DB.Where("cart_id = ?", item.ID).First(&pay).Error
	assert.NoError(t, err)
	assert.Equal(t, "pi_abc123", pay.TransactionID)

	var cartCount int64
	database.DB.Model(&models.CartItem{}).Where("id = ?", item.ID).Count(&cartCount)
	assert.Equal(t, int64(0), cartCount)
}

// TestCheckoutKeepsPaymentOnFailedCleanup submits a payment whose cart row
// does not exist. The cleanup matches nothing, but the payment must stand:
// the sequence favors payment retention over cart cleanliness.
func TestCheckoutKeepsPaymentOnFailedCleanup(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	token := signToken(t, "dana@test.com")

	body := map[string]interface{}{
		"email":         "dana@test.com",
		"cartId":        99999,
		"amount":        50.0,
		"transactionId": "pi_orphan",
	}
	w := doRequest(router, "POST", "/payments", body, token)
	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	deleteResult := resp["deleteResult"].(map[string]interface{})
	assert.Equal(t, float64(0), deleteResult["deletedCount"])

	var pay models.Payment
	err := database.DB.Where("cart_id = ?", 99999).First(&pay).Error
	assert.NoError(t, err)
}

// TestEnrolledOwnership mirrors the cart ownership behavior on the
// enrollment listing.
func TestEnrolledOwnership(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	database.DB.Create(&models.Payment{Email: "dana@test.com", CartID: 1, Amount: 50})
	database.DB.Create(&models.Payment{Email: "eve@test.com", CartID: 2, Amount: 60})

	w := doRequest(router, "GET", "/enrolled?email=dana@test.com", nil, "")
	assert.Equal(t, 401, w.Code)

	w = doRequest(router, "GET", "/enrolled?email=dana@test.com", nil, signToken(t, "eve@test.com"))
	assert.Equal(t, 403, w.Code)

	w = doRequest(router, "GET", "/enrolled", nil, signToken(t, "dana@test.com"))
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = doRequest(router, "GET", "/enrolled?email=dana@test.com", nil, signToken(t, "dana@test.com"))
	assert.Equal(t, 200, w.Code)
	var payments []models.Payment
	json.Unmarshal(w.Body.Bytes(), &payments)
	assert.Len(t, payments, 1)
	assert.Equal(t, "dana@test.com", payments[0].Email)
}
