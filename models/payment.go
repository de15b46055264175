// payment.go - Defines the Payment model for the database

package models

import "time"

// Payment records a completed checkout. It replaces the cart item named
// by CartID; the two writes are independent, so an orphaned cart row may
// survive a failed cleanup but the payment never disappears.
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Email         string    `json:"email" gorm:"index;not null"` // Owner, checked against the token at read time
	CartID        uint      `json:"cartId"`
	ClassID       uint      `json:"classId"`
	ClassName     string    `json:"className"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}
