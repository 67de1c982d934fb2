package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// HomeBaseAddress is the fixed origin for travel time calculations
func HomeBaseAddress() string {
	return GetEnv("HOME_BASE_ADDRESS", "523 Hastings Way, Jonesboro, GA 30238")
}

// DriveRootFolder is the top-level OneDrive namespace for project folders
func DriveRootFolder() string {
	return GetEnv("DRIVE_ROOT_FOLDER", "_SurveyDisco")
}

// DriveTemplatePath is the drive path of the template file copied into
// freshly created project folders. Empty disables template seeding.
func DriveTemplatePath() string {
	return GetEnv("DRIVE_TEMPLATE_PATH", "")
}

// FrontendURL is where the OAuth callback redirects back to
func FrontendURL() string {
	return GetEnv("FRONTEND_URL", "http://localhost:3000")
}
