package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	GinMode    string
	LogLevel   string
	CORSOrigin string
}

// Load reads .env when present and builds the config from the
// environment with sane defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Config{
		Port:       getenv("PORT", "8080"),
		GinMode:    getenv("GIN_MODE", "debug"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		CORSOrigin: getenv("CORS_ORIGIN", "*"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
