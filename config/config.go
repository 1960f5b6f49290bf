package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// AdminAccountID is the single administrative identity allowed to
	// change distribution parameters and pause the engine
	AdminAccountID int64

	// TreasuryAccountID is the account that funds interest payouts
	TreasuryAccountID int64

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if admin := os.Getenv("ADMIN_ACCOUNT_ID"); admin != "" {
		parsed, err := strconv.ParseInt(admin, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_ACCOUNT_ID: %w", err)
		}
		config.AdminAccountID = parsed
	}

	if treasury := os.Getenv("TREASURY_ACCOUNT_ID"); treasury != "" {
		parsed, err := strconv.ParseInt(treasury, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TREASURY_ACCOUNT_ID: %w", err)
		}
		config.TreasuryAccountID = parsed
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.AdminAccountID == 0 {
			return nil, fmt.Errorf("ADMIN_ACCOUNT_ID is required")
		}
		if config.TreasuryAccountID == 0 {
			return nil, fmt.Errorf("TREASURY_ACCOUNT_ID is required")
		}
	}

	return config, nil
}
