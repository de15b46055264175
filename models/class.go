// class.go - Defines the Class model for the database

package models

// Approval states a class moves through. New classes start as pending
// and an admin moves them to approved or denied.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

type Class struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	ClassName       string  `json:"className" gorm:"not null"`
	ClassImage      string  `json:"classImage"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index;not null"`
	Seats           int     `json:"seats" gorm:"check:seats >= 0"`
	Price           float64 `json:"price"`
	Status          string  `json:"status" gorm:"default:'pending'"`
	Feedback        string  `json:"feedback"` // Optional admin note, independent of status
}
