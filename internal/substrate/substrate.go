// Package substrate selects and constructs the durable key-value backend the
// entity store persists into. Driver implementations live in subpackages;
// everything above this package depends only on domain.Substrate.
package substrate

import (
	"context"
	"fmt"

	"fabcore/internal/substrate/fs"
	"fabcore/internal/substrate/memory"
	"fabcore/internal/substrate/postgres"
	"fabcore/internal/substrate/s3"
	"fabcore/internal/substrate/sqlite"
	"fabcore/pkg/domain"
)

// Driver identifies a concrete substrate implementation.
type Driver string

const (
	// DriverMemory is in-memory only (tests / ephemeral).
	DriverMemory Driver = "memory"
	// DriverFS is one file per key under a root directory.
	DriverFS Driver = "fs"
	// DriverSQLite is an embedded sqlite file.
	DriverSQLite Driver = "sqlite"
	// DriverPostgres is a PostgreSQL server.
	DriverPostgres Driver = "postgres"
	// DriverS3 is an S3 / MinIO compatible object store.
	DriverS3 Driver = "s3"
)

// Options carries driver selection plus per-driver settings.
type Options struct {
	Driver Driver

	// FSRoot is the root directory for the fs driver.
	FSRoot string
	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string
	// PostgresDSN is the connection string for the postgres driver.
	PostgresDSN string
	// S3 holds object-store settings for the s3 driver.
	S3 s3.Config
}

// Open constructs the configured substrate. Defaults to sqlite when the
// driver is unset.
func Open(ctx context.Context, opts Options) (domain.Substrate, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverMemory:
		return memory.New(), nil
	case DriverFS:
		return fs.New(opts.FSRoot)
	case DriverSQLite:
		return sqlite.New(opts.SQLitePath)
	case DriverPostgres:
		return postgres.New(ctx, opts.PostgresDSN)
	case DriverS3:
		return s3.New(ctx, opts.S3)
	default:
		return nil, fmt.Errorf("unknown substrate driver %s", driver)
	}
}
