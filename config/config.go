package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	DBSource string
}

// JWTSecret signs admin tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "digital_menu_super_secret_2024"))

// TokenTTL bounds admin token validity
const TokenTTL = 24 * time.Hour

// Load reads .env (when present) and resolves the runtime configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "digital_menu_super_secret_2024"))

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  os.Getenv("GIN_MODE"),
		DBSource: getEnv("DB_SOURCE", "digital_menu.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
