// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds the application configuration loaded from environment
// variables. The two secrets are immutable process-wide state: loaded once
// here and injected into constructors, never read ad hoc.
type Config struct {
	PasswordHash  string
	SigningSecret string
	DBPath        string
	ListenAddr    string
	StoreTimeout  time.Duration
}

// Load reads configuration from environment variables and returns a
// validated Config. SNIPVAULT_PASSWORD_HASH and SNIPVAULT_SIGNING_SECRET are
// required; startup must fail immediately when either is absent. Optional
// variables with defaults: SNIPVAULT_DB_PATH (snipvault.db),
// SNIPVAULT_LISTEN_ADDR (127.0.0.1:8080), SNIPVAULT_STORE_TIMEOUT (5s).
func Load() (*Config, error) {
	passwordHash := os.Getenv("SNIPVAULT_PASSWORD_HASH")
	if passwordHash == "" {
		return nil, errors.New("SNIPVAULT_PASSWORD_HASH is required")
	}

	signingSecret := os.Getenv("SNIPVAULT_SIGNING_SECRET")
	if signingSecret == "" {
		return nil, errors.New("SNIPVAULT_SIGNING_SECRET is required")
	}

	dbPath := "snipvault.db"
	if v, ok := os.LookupEnv("SNIPVAULT_DB_PATH"); ok {
		dbPath = v
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("SNIPVAULT_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	storeTimeout := 5 * time.Second
	if v, ok := os.LookupEnv("SNIPVAULT_STORE_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SNIPVAULT_STORE_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("SNIPVAULT_STORE_TIMEOUT must be positive, got %q", v)
		}
		storeTimeout = parsed
	}

	return &Config{
		PasswordHash:  passwordHash,
		SigningSecret: signingSecret,
		DBPath:        dbPath,
		ListenAddr:    listenAddr,
		StoreTimeout:  storeTimeout,
	}, nil
}
