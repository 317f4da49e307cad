// Package config loads the command-line tools' configuration from
// environment variables (optionally seeded from a .env file).
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the payway-go binaries need.
type Config struct {
	App    AppConfig
	PayWay PayWayConfig
}

type AppConfig struct {
	Environment string // development, staging, production
	Port        string // mock gateway listen port
}

type PayWayConfig struct {
	BaseURL    string // PayWay API base URL
	MerchantID string // Merchant profile ID
	APIKey     string // Secret key for the request hash
}

// Load reads config from environment variables. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8090"),
		},
		PayWay: PayWayConfig{
			BaseURL:    getEnv("PAYWAY_BASE_URL", "https://checkout-sandbox.payway.com.kh"),
			MerchantID: getEnv("PAYWAY_MERCHANT_ID", ""),
			APIKey:     getEnv("PAYWAY_API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the binaries cannot run with.
func (c *Config) Validate() error {
	if c.PayWay.MerchantID == "" {
		return fmt.Errorf("PAYWAY_MERCHANT_ID must be set")
	}
	if c.PayWay.APIKey == "" {
		return fmt.Errorf("PAYWAY_API_KEY must be set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
