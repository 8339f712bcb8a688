// Package config loads environment-based configuration for synclink.
package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-based configuration for synclink.
type Config struct {
	// Base URL of the pairing relay service.
	RelayURL string `env:"SYNC_RELAY_URL" envDefault:"https://relay.synclink.dev"`

	// Base URL embedded in pairing URLs shown to peers. The peer opens
	// this URL (or scans it as a QR) to join.
	PairingURL string `env:"SYNC_PAIRING_URL" envDefault:"https://synclink.dev/pair"`

	// Device identity this client registers as. DeviceName defaults to the
	// system hostname.
	DeviceName string `env:"DEVICE_NAME"`
	DeviceType string `env:"DEVICE_TYPE" envDefault:"desktop"`

	// Poll timing for the remote pairing services.
	PollInterval time.Duration `env:"SYNC_POLL_INTERVAL" envDefault:"2s"`
	PollTimeout  time.Duration `env:"SYNC_POLL_TIMEOUT" envDefault:"10m"`

	// UseKeyring selects the OS keyring for the secret store instead of
	// the file database. Headless machines usually have no keyring.
	UseKeyring bool `env:"SYNC_USE_KEYRING" envDefault:"false"`

	// StorePath overrides the file secret store location. Ignored when the
	// keyring is in use. Empty means ~/.synclink/secrets.db.
	StorePath string `env:"SYNC_STORE_PATH"`

	// Environment controls log format
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// warnInsecureEnvFile checks whether the .env file (if present) has
// overly permissive permissions. On Unix systems, group or world
// readable files risk exposing credentials to other users.
func warnInsecureEnvFile() {
	if runtime.GOOS == "windows" {
		return
	}

	info, err := os.Stat(".env")
	if err != nil {
		return // file does not exist, nothing to check
	}

	mode := info.Mode().Perm()
	if mode&0o077 != 0 {
		log.Printf("WARNING: .env file has insecure permissions %04o; recommended 0600", mode)
	}
}

// Load reads configuration from environment variables.
// It first attempts to load a .env file if present, then parses env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	warnInsecureEnvFile()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DeviceName == "" {
		hostname, err := os.Hostname()
		if err != nil || hostname == "" {
			hostname = "synclink"
		}

		cfg.DeviceName = hostname
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if cfg.StorePath != "" {
		absPath, err := filepath.Abs(cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("resolving store path: %w", err)
		}

		cfg.StorePath = absPath
	}

	return cfg, nil
}

func (c *Config) validate() error {
	for name, raw := range map[string]string{
		"SYNC_RELAY_URL":   c.RelayURL,
		"SYNC_PAIRING_URL": c.PairingURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("SYNC_POLL_INTERVAL must be positive")
	}

	if c.PollTimeout <= c.PollInterval {
		return fmt.Errorf("SYNC_POLL_TIMEOUT must be longer than SYNC_POLL_INTERVAL")
	}

	return nil
}

// IsProduction returns true when the environment is set to production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
