package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration for a single-lot deployment.
// Values come from the environment; main loads .env first via godotenv.
type Config struct {
	DatabaseURL string
	Port        string

	LotName     string
	LotCapacity int

	RateCentsPerHour           int
	RateCentsPerHourCar        int
	RateCentsPerHourMotorcycle int
	RateCentsPerHourTruck      int
	MinChargeMinutes           int

	SessionIdleTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        getEnv("PORT", "8080"),
		LotName:     getEnv("LOT_NAME", "RapidPark-A"),
	}

	var err error
	if cfg.LotCapacity, err = getEnvInt("LOT_CAPACITY", 50); err != nil {
		return nil, err
	}
	if cfg.LotCapacity <= 0 {
		return nil, fmt.Errorf("LOT_CAPACITY must be positive, got %d", cfg.LotCapacity)
	}

	if cfg.RateCentsPerHour, err = getEnvInt("RATE_CENTS_PER_HOUR", 400); err != nil {
		return nil, err
	}
	if cfg.RateCentsPerHourCar, err = getEnvInt("RATE_CENTS_PER_HOUR_CAR", cfg.RateCentsPerHour); err != nil {
		return nil, err
	}
	if cfg.RateCentsPerHourMotorcycle, err = getEnvInt("RATE_CENTS_PER_HOUR_MOTORCYCLE", 300); err != nil {
		return nil, err
	}
	if cfg.RateCentsPerHourTruck, err = getEnvInt("RATE_CENTS_PER_HOUR_TRUCK", 600); err != nil {
		return nil, err
	}
	if cfg.MinChargeMinutes, err = getEnvInt("MIN_CHARGE_MINUTES", 60); err != nil {
		return nil, err
	}

	idleMinutes, err := getEnvInt("SESSION_IDLE_TIMEOUT_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.SessionIdleTimeout = time.Duration(idleMinutes) * time.Minute

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
