package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs, resolved once at startup.
// Components receive their values from here explicitly; nothing reads the
// environment again after Load returns.
type Config struct {
	Port       int
	CORSOrigin string

	JWTSecret string
	TokenTTL  time.Duration

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBTimezone     string
	DBMaxOpenConns int
	DBMaxIdleConns int

	SeedAdmin bool
}

// Load reads configuration from the environment (and .env, if present).
// It fails when JWT_SECRET is absent so the process never serves a single
// request with an unsigned-token configuration.
func Load() (*Config, error) {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return &Config{
		Port:       getEnvInt("PORT", 3000),
		CORSOrigin: getEnv("CORS_ORIGIN", ""),

		JWTSecret: secret,
		TokenTTL:  time.Duration(getEnvInt("JWT_TTL_HOURS", 168)) * time.Hour,

		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "password"),
		DBName:         getEnv("DB_NAME", "dormhub"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBTimezone:     getEnv("DB_TIMEZONE", "UTC"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		SeedAdmin: getEnvBool("SEED_ADMIN", true),
	}, nil
}

// DSN builds the postgres data source name from the DB_* settings.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimezone,
	)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring non-numeric %s=%q", key, v)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("ignoring non-boolean %s=%q", key, v)
	}
	return defaultValue
}
