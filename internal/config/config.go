package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	DBDSN             string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	// BookingWindowDays is how far ahead a booking date may lie.
	BookingWindowDays int

	// PhotoDir is the base directory for facility photo storage.
	PhotoDir string

	// ExpirySweepSpec is the cron spec for the pending-booking expiry sweep.
	ExpirySweepSpec string

	// SendGrid settings. Email delivery is disabled when the key is empty.
	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string

	// AuthRateLimit is requests/second allowed per IP on login/register.
	AuthRateLimit float64
	AuthRateBurst int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	ttlStr := getEnv("JWT_ACCESS_TOKEN_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// How many days ahead a booking may be placed (default: 14)
	cfg.BookingWindowDays, err = getEnvAsInt("BOOKING_WINDOW_DAYS", 14)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_WINDOW_DAYS: %w", err)
	}

	cfg.PhotoDir = getEnv("PHOTO_DIR", "./data/photos")

	// Expiry sweep schedule (default: every 10 minutes)
	cfg.ExpirySweepSpec = getEnv("EXPIRY_SWEEP_SPEC", "*/10 * * * *")

	cfg.SendGridAPIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.EmailFrom = getEnv("EMAIL_FROM", "noreply@campuskit.local")
	cfg.EmailFromName = getEnv("EMAIL_FROM_NAME", "Campus Facility Booking")

	cfg.AuthRateLimit, err = getEnvAsFloat("AUTH_RATE_LIMIT", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT: %w", err)
	}
	cfg.AuthRateBurst, err = getEnvAsInt("AUTH_RATE_BURST", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_BURST: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsFloat retrieves an environment variable as a float64.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}

	return val, nil
}
