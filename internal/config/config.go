package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Env string

	// Remote service
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Local state (session + token entries)
	StateDir string

	// Logging
	LogLevel string
	LogFile  string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	stateDir := getEnv("STATE_DIR", "")
	if stateDir == "" {
		stateDir = defaultStateDir()
	}

	logFile := getEnv("LOG_FILE", "")
	if logFile == "" {
		logFile = filepath.Join(stateDir, "comunitur.log")
	}

	return &Config{
		Env: getEnv("ENV", "development"),

		// Remote service
		APIBaseURL:  getEnv("COMUNITUR_API_URL", "https://api.comunitur.ec/api/v1"),
		HTTPTimeout: parseDuration(getEnv("HTTP_TIMEOUT", "15s"), 15*time.Second),

		// Local state
		StateDir: stateDir,

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  logFile,
	}
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".comunitur"
	}
	return filepath.Join(base, "comunitur")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
