package configs

import (
	"os"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	API      APIConfig
	Version  VersionConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// APIConfig holds the base path and per-resource paths of the HTTP surface
type APIConfig struct {
	BasePath         string
	CounterpartyPath string
	CryptoPath       string
	TransferPath     string
}

// VersionConfig holds API version negotiation settings
type VersionConfig struct {
	HeaderName string
	Default    string
	Supported  []string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		API: APIConfig{
			BasePath:         getEnv("API_BASE_PATH", "/api/v1"),
			CounterpartyPath: getEnv("API_COUNTERPARTY_PATH", "/counterparty-risk-profiles"),
			CryptoPath:       getEnv("API_CRYPTO_PATH", "/cryptocurrencies"),
			TransferPath:     getEnv("API_TRANSFER_PATH", "/transferencias"),
		},
		Version: VersionConfig{
			HeaderName: getEnv("API_VERSION_HEADER", "X-API-Version"),
			Default:    getEnv("API_VERSION_DEFAULT", "1"),
			Supported:  strings.Split(getEnv("API_VERSION_SUPPORTED", "1"), ","),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
