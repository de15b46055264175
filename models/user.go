// user.go - Defines the User model for the database

package models

// Roles a user can hold. A freshly registered user has no role.
const (
	RoleAdmin      = "Admin"
	RoleInstructor = "Instructor"
)

type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name"`
	Email string `json:"email" gorm:"unique;not null"` // Unique key, registration is idempotent on it
	Role  string `json:"role"`
}
