package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects with one of the supported drivers ("sqlite" or "pgx") and
// returns the dialect queries must be rebound for. The driver package itself
// is registered by the caller's blank import.
func Open(driver, dsn string) (*sql.DB, Dialect, error) {
	dialect, err := DialectForDriver(driver)
	if err != nil {
		return nil, 0, fmt.Errorf("openDB: %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, 0, fmt.Errorf("openDB: open %s database: %w", driver, err)
	}

	switch dialect {
	case Postgres:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	case SQLite:
		// SQLite serializes writers; one connection avoids SQLITE_BUSY under
		// the concurrent summary pass.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, 0, fmt.Errorf("openDB: verify %s connection: %w", driver, err)
	}

	return db, dialect, nil
}
