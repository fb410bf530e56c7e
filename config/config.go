package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	LogLevel    string // debug, info, warn or error
	DBUrl       string // optional; empty means the JSON file store is used
	DataFile    string // path of the JSON file store
	JWTSecret   string
	FrontendURL string
	// Redis Configuration (rate limiting; in-memory fallback when empty)
	RedisURL      string
	RedisPassword string
	// Scraping Configuration
	ScrapeIntervalHours int  // background refresh interval, 0 disables the cron
	ScrapeLiveSources   bool // run network scrapers in addition to the curated fallback
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		DataFile:    getEnv("DATA_FILE", "data/db.json"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		ScrapeIntervalHours: getEnvInt("SCRAPE_INTERVAL_HOURS", 6),
		ScrapeLiveSources:   getEnvBool("SCRAPE_LIVE_SOURCES", true),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Favorites endpoints will reject all tokens.")
	}
	if cfg.DBUrl == "" {
		log.Printf("DATABASE_URL not set. Using JSON file store at %s", cfg.DataFile)
	}
	if cfg.RedisURL == "" {
		log.Println("REDIS_URL not configured. Rate limiting will use the in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
