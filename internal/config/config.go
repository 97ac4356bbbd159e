package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/randomtoy/astro-go/internal/domain"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	HTTPAddr        string
	LogLevel        slog.Level
	Env             string
	CalcMode        domain.CalcMode
	OuterPlanets    bool
	WeightedBalance bool
	CacheBackend    string
	CacheTTL        time.Duration
	CacheMaxEntries int
	RedisAddr       string
	RedisDB         int
	RateLimitRPS    float64
	RateLimitBurst  int
	MetricsEnabled  bool
}

// Production reports whether internal error detail must be hidden.
func (c Config) Production() bool {
	return c.Env == EnvProduction
}

// Bodies returns the tracked bodies for this configuration.
func (c Config) Bodies() []domain.Body {
	if c.OuterPlanets {
		return domain.AllBodies
	}
	return domain.ClassicalBodies
}

// Weights returns the balance weight table, nil meaning uniform.
func (c Config) Weights() domain.Weights {
	if c.WeightedBalance {
		return domain.WeightedBalance()
	}
	return nil
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		Env:             envOr("APP_ENV", EnvDevelopment),
		CacheBackend:    envOr("CACHE_BACKEND", CacheMemory),
		CacheTTL:        time.Hour,
		CacheMaxEntries: 1024,
		RedisAddr:       envOr("REDIS_ADDR", "localhost:6379"),
		RateLimitRPS:    10,
		RateLimitBurst:  20,
	}

	var err error

	if c.CalcMode, err = domain.ParseCalcMode(envOr("CALC_MODE", string(domain.ModeDrift))); err != nil {
		return Config{}, fmt.Errorf("invalid CALC_MODE: %w", err)
	}

	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return Config{}, fmt.Errorf("invalid APP_ENV %q", c.Env)
	}

	switch c.CacheBackend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return Config{}, fmt.Errorf("invalid CACHE_BACKEND %q", c.CacheBackend)
	}

	switch w := envOr("BALANCE_WEIGHTS", "uniform"); w {
	case "uniform":
	case "weighted":
		c.WeightedBalance = true
	default:
		return Config{}, fmt.Errorf("invalid BALANCE_WEIGHTS %q", w)
	}

	if c.OuterPlanets, err = parseBool("OUTER_PLANETS", true); err != nil {
		return Config{}, err
	}
	if c.MetricsEnabled, err = parseBool("METRICS_ENABLED", true); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid CACHE_TTL %q", v)
		}
		c.CacheTTL = d
	}

	if c.CacheMaxEntries, err = parseInt("CACHE_MAX_ENTRIES", c.CacheMaxEntries); err != nil {
		return Config{}, err
	}
	if c.RedisDB, err = parseInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if c.RateLimitBurst, err = parseInt("RATE_LIMIT_BURST", c.RateLimitBurst); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		c.RateLimitRPS = rps
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func parseLogLevel(s string) (slog.Level, error) {
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
