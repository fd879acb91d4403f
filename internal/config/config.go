package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                 string // dev, prod
	LogLevel            string // zerolog level name
	BookingWindowMonths int    // how far out appointments may be booked
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:                 getEnv("APP_ENV", "dev"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		BookingWindowMonths: getInt("BOOKING_WINDOW_MONTHS", 6),
	}

	if cfg.BookingWindowMonths <= 0 {
		return Config{}, fmt.Errorf("BOOKING_WINDOW_MONTHS must be > 0, got %d", cfg.BookingWindowMonths)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		fmt.Fprintf(os.Stderr, "invalid integer for %s=%q, using default %d\n", key, v, def)
	}
	return def
}
