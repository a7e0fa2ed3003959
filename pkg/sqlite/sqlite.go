package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const DriverName = "sqlite3"

// MemoryDSN is a private in-memory database with foreign keys on.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Open opens a SQLite database and pings it. SQLite allows a single writer,
// so the pool is capped at one connection; this also keeps an in-memory
// database alive and shared for the lifetime of the handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" || dsn == ":memory:" {
		dsn = MemoryDSN
	}
	if !strings.Contains(dsn, "busy_timeout") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return db, nil
}
