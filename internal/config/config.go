package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	Port            string
	Origin          string // CORS
	SessionSecret   string
	SessionTTL      time.Duration
	LoginDelay      time.Duration
	SessionStore    string // memory | redis
	RedisAddr       string
	RedisPass       string
	RateLimitPerMin int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(k)); err == nil {
		return d
	}
	return def
}

func envInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil && n > 0 {
		return n
	}
	return def
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	appEnv := env("APP_ENV", "dev")
	delay := time.Duration(0)
	if appEnv == "dev" {
		delay = time.Second
	}
	return Config{
		Env:             appEnv,
		Port:            env("API_PORT", "8080"),
		Origin:          env("CORS_ORIGIN", "http://localhost:5173"),
		SessionSecret:   env("SESSION_SECRET", "dev-portal-secret"),
		SessionTTL:      envDuration("SESSION_TTL", 24*time.Hour),
		LoginDelay:      envDuration("LOGIN_DELAY", delay),
		SessionStore:    env("SESSION_STORE", "memory"),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASS", ""),
		RateLimitPerMin: envInt("RATE_LIMIT_PER_MIN", 200),
	}
}
