package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAPIBaseURL     = "MEALMAKER_API_BASE_URL"
	EnvAPIKey         = "MEALMAKER_API_KEY"
	EnvRequestTimeout = "MEALMAKER_REQUEST_TIMEOUT_SEC"
)

// Env holds startup overrides read from the environment
type Env struct {
	APIBaseURL            string
	APIKey                string
	RequestTimeoutSeconds int
}

// LoadEnv loads an optional .env file and reads overrides from the environment
func LoadEnv(files ...string) Env {
	// A missing .env file is not an error
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load env file: %v", err)
	}

	return Env{
		APIBaseURL:            getEnv(EnvAPIBaseURL),
		APIKey:                getEnv(EnvAPIKey),
		RequestTimeoutSeconds: getEnvInt(EnvRequestTimeout),
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getEnvInt(key string) int {
	value := getEnv(key)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, value, err)
		return 0
	}
	return n
}
