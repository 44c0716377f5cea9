// Package storage is the durable key-value service that owns cart state.
package storage

import (
	"context"
	"errors"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// KV stores opaque string values under string keys. Set overwrites; Delete of
// a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
