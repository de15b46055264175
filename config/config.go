// config.go - Handles configuration for the project

package config

import (
	"os"
)

type Config struct { // Config struct holds all configuration values
	DBPath    string // Path to the SQLite database file
	JWTSecret string // Secret key for signing and verifying access tokens
	StripeKey string // Stripe secret key for payment intents
	Port      string // HTTP port for the web server
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		DBPath:    getEnv("DB_PATH", "summer-camp.db"),
		JWTSecret: getEnv("JWT_SECRET", "supersecret"),
		StripeKey: getEnv("STRIPE_SECRET_KEY", ""),
		Port:      getEnv("PORT", "5000"),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
