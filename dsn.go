package gosnowconn

import (
	sf "github.com/snowflakedb/gosnowflake"
)

// driverConfig maps a Config onto the driver's own configuration struct.
// Optional fields are copied only when present. A private key always wins
// over a password: when both are set the password is not forwarded.
func (cfg *Config) driverConfig() (*sf.Config, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	sfcfg := &sf.Config{
		User:    cfg.User,
		Account: cfg.Account,
	}

	if cfg.Warehouse != "" {
		sfcfg.Warehouse = cfg.Warehouse
	}
	if cfg.Database != "" {
		sfcfg.Database = cfg.Database
	}
	if cfg.Schema != "" {
		sfcfg.Schema = cfg.Schema
	}
	if cfg.Role != "" {
		sfcfg.Role = cfg.Role
	}

	if cfg.PrivateKeyPEM != "" {
		key, err := parsePrivateKey(cfg.PrivateKeyPEM)
		if err != nil {
			return nil, err
		}
		sfcfg.PrivateKey = key
		sfcfg.Authenticator = sf.AuthTypeJwt
		return sfcfg, nil
	}

	sfcfg.Password = cfg.Password
	return sfcfg, nil
}

// DSN renders cfg as a driver connection string for callers that open the
// database themselves.
func DSN(cfg *Config) (string, error) {
	sfcfg, err := cfg.driverConfig()
	if err != nil {
		return "", err
	}
	return sf.DSN(sfcfg)
}
