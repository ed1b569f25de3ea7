package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/randomtoy/ndprime/internal/domain"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	HTTPAddr       string
	LogLevel       slog.Level
	CacheBackend   string
	RedisAddr      string
	RedisTTL       time.Duration
	SearchTimeout  time.Duration
	MaxDigits      int
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		CacheBackend:   strings.ToLower(envOr("CACHE_BACKEND", CacheMemory)),
		RedisAddr:      envOr("REDIS_ADDR", "localhost:6379"),
		SearchTimeout:  30 * time.Second,
		MaxDigits:      domain.MaxDigits,
		RateLimitRPS:   20,
		RateLimitBurst: 5,
	}

	var err error
	if c.RedisTTL, err = durationEnv("REDIS_TTL", 0); err != nil {
		return Config{}, err
	}
	if c.SearchTimeout, err = durationEnv("SEARCH_TIMEOUT", c.SearchTimeout); err != nil {
		return Config{}, err
	}
	if c.MaxDigits, err = intEnv("MAX_DIGITS", c.MaxDigits); err != nil {
		return Config{}, err
	}
	if c.RateLimitBurst, err = intEnv("RATE_LIMIT_BURST", c.RateLimitBurst); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		c.RateLimitRPS = rps
	}

	level, err := ParseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	switch c.CacheBackend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return Config{}, fmt.Errorf("invalid CACHE_BACKEND %q", c.CacheBackend)
	}

	if c.MaxDigits < 1 {
		return Config{}, fmt.Errorf("MAX_DIGITS must be positive, got %d", c.MaxDigits)
	}
	if c.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, v)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

// ParseLogLevel maps a LOG_LEVEL value to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
