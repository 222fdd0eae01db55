package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	OdooURL        string
	OdooDB         string
	OdooUsername   string
	OdooPassword   string
	Port           string
	DefaultCountry string
	LogLevel       string
	LogFormat      string
}

// Load reads .env when present and populates AppEnv. The ERP connection
// settings have no sensible defaults, so missing ones are fatal.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		OdooURL:        requireEnv("ODOO_URL"),
		OdooDB:         requireEnv("ODOO_DB"),
		OdooUsername:   requireEnv("ODOO_USERNAME"),
		OdooPassword:   requireEnv("ODOO_PASSWORD"),
		Port:           getEnvOrDefault("PORT", "8080"),
		DefaultCountry: getEnvOrDefault("DEFAULT_COUNTRY", "France"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "json"),
	}
}

func requireEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		log.Fatalf("ENV %s is required", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
