package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port       string
	APIBaseURL string // base URL of the exam service REST API

	SessionDBName string // sqlite file backing the session store
	SessionHours  int    // session lifetime in hours
	CookieName    string

	APITimeoutSeconds int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:       getEnv("PORT", "8080"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:5000/api"),

		SessionDBName: getEnv("SESSION_DB_NAME", "sessions.db"),
		SessionHours:  getEnvInt("SESSION_HOURS", 24),
		CookieName:    getEnv("SESSION_COOKIE_NAME", "examdesk_session"),

		APITimeoutSeconds: getEnvInt("API_TIMEOUT_SECONDS", 30),
	}

	if AppConfig.APIBaseURL == "http://localhost:5000/api" {
		log.Println("Warning: Using default API_BASE_URL. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
