// database.go - Handles database connection and setup

package database

import (
	"summer-camp-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the global database handle, initialized once at startup.
// gorm.DB is safe for concurrent use by all request handlers.
var DB *gorm.DB

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate all models (create tables if needed)
	return DB.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.CartItem{},
		&models.Payment{},
	)
}
