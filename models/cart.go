// cart.go - Defines the CartItem model for the database

package models

// CartItem is a class a student selected but has not paid for yet.
// It carries a snapshot of the class so the cart survives later edits,
// and it is owned by exactly one email.
type CartItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Email      string  `json:"email" gorm:"index;not null"` // Owner, checked against the token at read time
	ClassID    uint    `json:"classId"`
	ClassName  string  `json:"className"`
	ClassImage string  `json:"classImage"`
	Price      float64 `json:"price"`
}
