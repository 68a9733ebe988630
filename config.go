package gosnowconn

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names consumed by ConfigFromEnv. Each is looked up
// by its exact name first, then by its lower-cased form.
const (
	EnvUser       = "SNOW_USER"
	EnvAccount    = "SNOW_ACCOUNT"
	EnvPassword   = "SNOW_PWD"
	EnvPrivateKey = "SNOW_PRIVATE_KEY"
	EnvWarehouse  = "SNOW_WAREHOUSE"
	EnvDatabase   = "SNOW_DATABASE"
	EnvSchema     = "SNOW_SCHEMA"
	EnvRole       = "SNOW_ROLE"
)

// Config is a set of Snowflake connection parameters. An empty string means
// the field is absent; absent optionals are never forwarded to the driver.
type Config struct {
	User          string // Username (required)
	Account       string // Account identifier (required)
	Password      string // Password (used only when PrivateKeyPEM is absent)
	PrivateKeyPEM string // Unencrypted PEM private key; wins over Password
	Warehouse     string // Warehouse (optional)
	Database      string // Database (optional)
	Schema        string // Schema (optional)
	Role          string // Role (optional)
}

func (cfg *Config) normalize() error {
	if cfg.User == "" || cfg.Account == "" {
		return configError(ErrCodeMissingCredentials, "missing %v or %v environment variables", EnvUser, EnvAccount)
	}

	if cfg.Password == "" && cfg.PrivateKeyPEM == "" {
		return configError(ErrCodeNoAuthSecret, "provide %v or %v for authentication", EnvPassword, EnvPrivateKey)
	}

	return nil
}

// envValue looks name up in the process environment, falling back to the
// lower-cased name. The exact-case form wins when both are set.
func envValue(name string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return os.Getenv(strings.ToLower(name))
}

// ConfigFromEnv resolves the SNOW_* variables into a Config. When neither
// required variable is present in the environment it first attempts a
// best-effort load of a local .env file; a missing .env is not an error.
// The returned Config is validated: user and account must be present, along
// with at least one authentication secret.
func ConfigFromEnv() (*Config, error) {
	if envValue(EnvUser) == "" && envValue(EnvAccount) == "" {
		if err := godotenv.Load(); err == nil {
			logger.Debugln("loaded credentials from .env")
		}
	}

	cfg := &Config{
		User:          envValue(EnvUser),
		Account:       envValue(EnvAccount),
		Password:      envValue(EnvPassword),
		PrivateKeyPEM: envValue(EnvPrivateKey),
		Warehouse:     envValue(EnvWarehouse),
		Database:      envValue(EnvDatabase),
		Schema:        envValue(EnvSchema),
		Role:          envValue(EnvRole),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
