package confs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting the server uses.
type Config struct {
	Port string

	// Either DBURL or the discrete fields below.
	DBURL      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// LINE Notify credential; empty means alerts are logged and skipped.
	LineNotifyToken string
	LineNotifyURL   string

	// Display timezone for /logs, /latest and /table timestamps.
	LogTimezone string
	LogLimit    int
}

const (
	defaultPort          = "3000"
	defaultLogLimit      = 50
	defaultLineNotifyURL = "https://notify-api.line.me/api/notify"
)

// LoadConfig loads environment variables from a .env file if present
// and builds the typed configuration with defaults applied.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		Port:            envOr("PORT", defaultPort),
		DBURL:           os.Getenv("DB_URL"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSSLMode:       os.Getenv("DB_SSLMODE"),
		LineNotifyToken: os.Getenv("LINE_NOTIFY_TOKEN"),
		LineNotifyURL:   envOr("LINE_NOTIFY_URL", defaultLineNotifyURL),
		LogTimezone:     envOr("LOG_TIMEZONE", "UTC"),
		LogLimit:        defaultLogLimit,
	}

	if raw := os.Getenv("LOG_LIMIT"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.LogLimit = v
		} else {
			log.Printf("warning: ignoring invalid LOG_LIMIT %q", raw)
		}
	}

	return cfg, nil
}

// Location resolves the configured display timezone, falling back to UTC
// when the name is unknown on this host.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.LogTimezone)
	if err != nil {
		log.Printf("warning: unknown LOG_TIMEZONE %q, using UTC", c.LogTimezone)
		return time.UTC
	}
	return loc
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
