package testutils

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"wordwatch/config"
	"wordwatch/models"
)

// LoadTestConfig loads configuration for tests from environment variables
func LoadTestConfig() (*config.AppConfig, error) {
	// Try to load environment variables from various possible locations
	_ = godotenv.Load("../.env.test") // From package directories
	_ = godotenv.Load(".env.test")    // From root directory
	_ = godotenv.Load()               // Default .env file

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
	}, nil
}

// NewTestServerID returns a unique server scope so concurrent test runs
// never observe each other's watches
func NewTestServerID() string {
	return "test-server-" + uuid.New().String()
}

// NewTestUserID returns a unique user identifier
func NewTestUserID() string {
	return "test-user-" + uuid.New().String()
}

// NewTestProfile builds a profile snapshot for a fresh test user
func NewTestProfile(t *testing.T) *models.UserProfile {
	t.Helper()
	userID := NewTestUserID()
	return &models.UserProfile{
		ID:            userID,
		DisplayName:   "Test User " + userID[len(userID)-6:],
		Discriminator: "0001",
		AvatarURL:     "https://cdn.example.com/avatars/" + userID + ".png",
	}
}
