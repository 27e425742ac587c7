// Package config provides runtime configuration for the tracker.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the knobs the console app reads at startup. The defaults
// reproduce the classic behavior: dollar prices, top three sellers and a
// seeded catalog.
type Config struct {
	Currency   string
	TopSellers int
	Seed       bool
	LogLevel   slog.Level
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func levelenv(key string, def slog.Level) slog.Level {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return def
	}
	return lvl
}

// Load reads a .env file when present, then the environment, falling back
// to defaults.
func Load() Config {
	_ = godotenv.Load()
	top := atoienv("BOOKSTORE_TOP_SELLERS", 3)
	if top < 1 {
		top = 3
	}
	return Config{
		Currency:   getenv("BOOKSTORE_CURRENCY", "$"),
		TopSellers: top,
		Seed:       boolenv("BOOKSTORE_SEED", true),
		LogLevel:   levelenv("BOOKSTORE_LOG_LEVEL", slog.LevelInfo),
	}
}
