package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/truckplate-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Options selects and configures a backend
type Options struct {
	Driver   string
	Database database.DatabaseConfig
	RedisURL string
	Prefix   string
}

// Open builds the KV for opts.Driver, namespaced with opts.Prefix.
// The returned close function releases the backend.
func Open(ctx context.Context, opts Options) (KV, func() error, error) {
	driver := strings.ToLower(opts.Driver)
	log.WithFields(logrus.Fields{
		"driver": driver,
		"prefix": opts.Prefix,
	}).Info("Opening key-value storage")

	noop := func() error { return nil }

	switch driver {
	case DriverMemory, "":
		return WithPrefix(NewMemoryStore(), opts.Prefix), noop, nil

	case DriverSQLite, DriverPostgres, "postgresql":
		dbCfg := opts.Database
		dbCfg.Driver = driver
		db, err := database.InitDatabase(ctx, dbCfg)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return WithPrefix(store, opts.Prefix), closeFn, nil

	case DriverRedis:
		store, err := NewRedisStoreFromURL(ctx, opts.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return WithPrefix(store, opts.Prefix), store.Close, nil
	}

	return nil, nil, fmt.Errorf("unsupported storage driver: %s (supported: memory, sqlite, postgres, redis)", opts.Driver)
}
