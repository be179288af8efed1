// Package config loads service configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// Env names the deployment environment (development, production, ...).
	Env string

	// OpenWeatherAPIKey is the fixed credential for the pollution provider.
	OpenWeatherAPIKey string

	// OpenWeatherBaseURL overrides the provider base URL, mainly for tests.
	OpenWeatherBaseURL string

	// StaticDir is the directory holding the frontend documents.
	StaticDir string

	// OTelEnabled turns on OTLP trace and metric export.
	OTelEnabled bool

	// OTLPEndpoint is the OTLP gRPC collector endpoint.
	OTLPEndpoint string
}

// Load reads configuration from the environment, consulting a .env file when
// one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getenvDefault("APP_PORT", "8080"),
		Env:                getenvDefault("APP_ENV", "development"),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: os.Getenv("OPENWEATHER_BASE_URL"),
		StaticDir:          getenvDefault("STATIC_DIR", "./web"),
		OTelEnabled:        os.Getenv("OTEL_ENABLED") == "true",
		OTLPEndpoint:       getenvDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
