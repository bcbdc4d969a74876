// Package db provides the key-value persistence used by the cart.
package db

import (
	"context"
	"fmt"
)

// Store is a flat string key-value store. Get reports false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Open returns the store for driver. dsn is a file path for sqlite, a
// connection string for postgres and a redis:// URL for redis.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
		gdb, err := OpenGorm(driver, dsn)
		if err != nil {
			return nil, err
		}
		store, err := NewGormStore(gdb)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverRedis:
		store, err := OpenRedis(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
