package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// MongoDB
	MongoURI      string
	MongoDatabase string
	// Firebase authentication
	FirebaseProjectID string
	AuthMode          string // "firebase" (Admin SDK) or "jwks" (stateless securetoken JWKS)
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "3000"),
		Environment:       getEnv("ENVIRONMENT", "dev"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:5173"),
		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGODB_DATABASE", "fixitronDB"),
		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
		AuthMode:          getEnv("AUTH_MODE", "firebase"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
