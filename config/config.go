package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT      string
	DB_DRIVER string
	DB_URL    string

	ADMIN_PASSWORD             string
	JWT_SECRET                 string
	ADMIN_TOKEN_TTL            time.Duration
	ADMIN_ACCEPT_LEGACY_TOKENS bool

	CORS_ORIGINS       []string
	CORS_ORIGIN_SUFFIX string
	CORS_STRICT        bool

	IDENTITY_HEADERS      []string
	REQUIRE_KNOWN_ARTWORK bool
	METRICS_ENABLED       bool
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_DRIVER = strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	DB_URL = mustEnv("DB_URL")

	ADMIN_PASSWORD = mustEnv("ADMIN_PASSWORD")
	JWT_SECRET = getEnv("JWT_SECRET", "")
	ADMIN_TOKEN_TTL = getDuration("ADMIN_TOKEN_TTL", 24*time.Hour)
	ADMIN_ACCEPT_LEGACY_TOKENS = getBool("ADMIN_ACCEPT_LEGACY_TOKENS", false)

	CORS_ORIGINS = getList("CORS_ORIGINS", []string{"http://localhost:3000"})
	CORS_ORIGIN_SUFFIX = getEnv("CORS_ORIGIN_SUFFIX", "")
	CORS_STRICT = getBool("CORS_STRICT", false)

	IDENTITY_HEADERS = getList("IDENTITY_HEADERS", []string{"CF-Connecting-IP"})
	REQUIRE_KNOWN_ARTWORK = getBool("REQUIRE_KNOWN_ARTWORK", false)
	METRICS_ENABLED = getBool("METRICS_ENABLED", true)
}

// LoadDatabaseEnv is the subset needed by commands that only touch storage.
func LoadDatabaseEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	DB_DRIVER = strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	DB_URL = mustEnv("DB_URL")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d <= 0 {
		log.Printf("Invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

// getList splits a comma separated value, dropping blanks.
func getList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
