package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string

	// SessionTTL is the absolute lifetime of a login session.
	SessionTTL time.Duration

	// PasswordMinLength is a policy hook. Zero disables the check,
	// matching the historical behavior of the registration form.
	PasswordMinLength int

	// CookieSecure should only be disabled for plain-HTTP local development.
	CookieSecure bool
}

func Load() Config {

	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getEnv("APP_PORT", "8080"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		SessionTTL:        getDuration("SESSION_TTL", 24*time.Hour),
		PasswordMinLength: getInt("PASSWORD_MIN_LENGTH", 0),
		CookieSecure:      getBool("COOKIE_SECURE", true),
	}

	return cfg

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
