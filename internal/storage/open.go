package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open connects the configured backend and prepares its schema. The returned
// close func releases the connection pool; it is a no-op for memory.
func Open(ctx context.Context, driver, dsn string) (KV, func() error, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemStore(), func() error { return nil }, nil

	case DriverSQLite:
		if dsn == "" {
			dsn = "storefront.db"
		}
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, nil, err
		}
		// One writer; SQLite serializes anyway and this avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		return initSQL(ctx, NewSQLiteStore(db))

	case DriverPostgres:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, err
		}
		return initSQL(ctx, NewPostgresStore(db))

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func initSQL(ctx context.Context, s *SQLStore) (KV, func() error, error) {
	if err := s.Init(ctx); err != nil {
		_ = s.Close()
		return nil, nil, fmt.Errorf("init kv schema: %w", err)
	}
	return s, s.Close, nil
}
