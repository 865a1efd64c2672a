package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process level configuration. Everything comes from the
// environment so main stays lean; a .env file is loaded by the entrypoint
// before FromEnv runs.
type Server struct {
	Addr        string
	DatabaseURL string
	Redis       Redis
	Kafka       Kafka
	JWT         JWT

	SessionTTL time.Duration

	// LocalesDir holds the translation manifest plus one YAML catalog per
	// locale. DefaultLocale is the fallback catalog and the shape reference.
	LocalesDir    string
	DefaultLocale string

	// Signin rate limiting, per client IP.
	SigninRatePerMin int
	SigninBurst      int
}

// Redis captures connection settings for the session store. An empty URL
// means Redis is not configured and memory stores are used instead.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka captures the user-event stream settings. Empty brokers disable
// publishing entirely.
type Kafka struct {
	Brokers []string
	Topic   string
}

// JWT captures access token signing settings.
type JWT struct {
	SigningKey string
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:             envOr("API_ADDR", ":3000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		LocalesDir:       envOr("LOCALES_DIR", "locales"),
		DefaultLocale:    envOr("DEFAULT_LOCALE", "en"),
		SessionTTL:       envDurationOr("SESSION_TTL", 30*24*time.Hour),
		SigninRatePerMin: envIntOr("SIGNIN_RATE_PER_MIN", 10),
		SigninBurst:      envIntOr("SIGNIN_BURST", 5),
	}

	cfg.Redis = Redis{
		URL:          os.Getenv("REDIS_URL"),
		PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
		MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
		DialTimeout:  envDurationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:  envDurationOr("REDIS_READ_TIMEOUT", 3*time.Second),
		WriteTimeout: envDurationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka = Kafka{
			Brokers: splitComma(brokers),
			Topic:   envOr("KAFKA_USER_EVENTS_TOPIC", "user-events"),
		}
	}

	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		// Development default, must be overridden in production.
		signingKey = "dev-secret-key-change-in-production"
	}
	cfg.JWT = JWT{
		SigningKey: signingKey,
		Issuer:     envOr("JWT_ISSUER", "freecodecamp-api"),
		Audience:   envOr("JWT_AUDIENCE", "freecodecamp-client"),
		AccessTTL:  envDurationOr("JWT_ACCESS_TTL", 24*time.Hour),
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
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

func envDurationOr(key string, fallback time.Duration) time.Duration {
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

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
