package gosnowconn

import (
	"context"
	"database/sql"

	sf "github.com/snowflakedb/gosnowflake"
)

const driverName = "snowflake"

func driverRegistered() bool {
	for _, name := range sql.Drivers() {
		if name == driverName {
			return true
		}
	}
	return false
}

// Connect resolves credentials from the environment, opens a database handle
// and verifies it with a ping. Ownership of the handle transfers to the
// caller, who must close it. Network and authentication failures from the
// driver are propagated unmodified; the handle is closed before returning
// them.
func Connect(ctx context.Context) (*sql.DB, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenDB builds a database handle from an explicit Config. The handle is
// lazy: no network traffic happens until first use.
func OpenDB(cfg *Config) (*sql.DB, error) {
	if !driverRegistered() {
		return nil, configError(ErrCodeDriverNotRegistered, "driver %q is not registered with database/sql", driverName)
	}
	sfcfg, err := cfg.driverConfig()
	if err != nil {
		return nil, err
	}
	logger.Debugf("OpenDB: user=%v account=%v", sfcfg.User, sfcfg.Account)
	connector := sf.NewConnector(sf.SnowflakeDriver{}, *sfcfg)
	return sql.OpenDB(connector), nil
}
