package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-backed setting. It is built once in main
// and handed to each component's constructor, nothing reads os.Getenv later.
type Config struct {
	Env       string // development | production | test
	Port      string
	APIPrefix string

	PostgresURL string

	RedisAddr     string
	RedisPassword string

	JWTSecret      string
	JWTExpires     time.Duration
	RefreshExpires time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	AppBaseURL   string

	RateLimit  int
	RateWindow time.Duration

	PublicDir string
}

// Load reads .env when present and builds the configuration with defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:       getEnv("ENV", "development"),
		Port:      getEnv("PORT", "9000"),
		APIPrefix: getEnv("API_PREFIX", "/api"),

		PostgresURL: os.Getenv("POSTGRES_URL"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpires:     getDuration("JWT_EXPIRES_IN", time.Hour),
		RefreshExpires: getDuration("REFRESH_EXPIRES_IN", 30*24*time.Hour),

		SMTPHost:     os.Getenv("EMAIL_HOST"),
		SMTPPort:     getInt("EMAIL_PORT", 587),
		SMTPUsername: os.Getenv("EMAIL_USERNAME"),
		SMTPPassword: os.Getenv("EMAIL_PASSWORD"),
		MailFrom:     getEnv("EMAIL_FROM", "Soko <no-reply@soko.app>"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:9000"),

		RateLimit:  getInt("RATE_LIMIT", 200),
		RateWindow: getDuration("RATE_WINDOW", time.Hour),

		PublicDir: getEnv("PUBLIC_DIR", "./public"),
	}
}

// IsProduction reports whether errors should be rendered in terse mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
