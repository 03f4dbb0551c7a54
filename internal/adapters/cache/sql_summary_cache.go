package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	platformdb "water-distribution-service/internal/platform/db"
	"water-distribution-service/internal/platform/obs"
	"water-distribution-service/internal/ports"
)

// SQLSummaryCache is a SQL-backed cache for summary passes.
// Entries older than TTL are treated as misses; a zero TTL never expires.
type SQLSummaryCache struct {
	DB      *sql.DB
	Dialect platformdb.Dialect
	TTL     time.Duration
	// now is replaced in tests.
	now func() time.Time
}

func NewSQLSummaryCache(db *sql.DB, dialect platformdb.Dialect, ttl time.Duration) *SQLSummaryCache {
	return &SQLSummaryCache{DB: db, Dialect: dialect, TTL: ttl, now: time.Now}
}

// Create the cache table. Valid for both SQLite and Postgres.
func (s *SQLSummaryCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("summary cache: db is nil")
	}

	_, err := s.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS summary_cache (
		cache_key TEXT PRIMARY KEY,
		rows_json TEXT NOT NULL,
		computed_at BIGINT NOT NULL
	);
	`)
	if err != nil {
		return fmt.Errorf("summary cache: create table: %w", err)
	}
	return nil
}

// Purge drops every cached summary, e.g. after reference data was reseeded.
func (s *SQLSummaryCache) Purge(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("summary cache: db is nil")
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM summary_cache;`); err != nil {
		return fmt.Errorf("summary cache: purge: %w", err)
	}
	return nil
}

// Fetch cached rows for a summary key.
func (s *SQLSummaryCache) Get(ctx context.Context, key ports.SummaryKey) (_ []ports.SummaryRow, _ bool, err error) {
	defer obs.Time(ctx, "summary.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("summary cache: db is nil")
	}

	var (
		payload    string
		computedAt int64
	)
	err = s.DB.QueryRowContext(ctx, s.Dialect.Rebind(`
	SELECT rows_json, computed_at
	FROM summary_cache
	WHERE cache_key = ?;
	`), keyString(key)).Scan(&payload, &computedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get summary cache: query summary_cache table: %w", err)
	}

	if s.TTL > 0 && s.clock().Sub(time.Unix(computedAt, 0)) > s.TTL {
		return nil, false, nil
	}

	var rows []ports.SummaryRow
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		return nil, false, fmt.Errorf("get summary cache: decode rows: %w", err)
	}
	return rows, true, nil
}

// Store rows for a summary key, replacing any previous entry.
func (s *SQLSummaryCache) Put(ctx context.Context, key ports.SummaryKey, rows []ports.SummaryRow) error {
	if s.DB == nil {
		return errors.New("summary cache: db is nil")
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("insert summary cache: encode rows: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, s.Dialect.Rebind(`
	INSERT INTO summary_cache (cache_key, rows_json, computed_at)
	VALUES (?, ?, ?)
	ON CONFLICT (cache_key) DO UPDATE
	SET rows_json = EXCLUDED.rows_json,
		computed_at = EXCLUDED.computed_at;
	`), keyString(key), string(payload), s.clock().Unix())
	if err != nil {
		return fmt.Errorf("insert summary cache key=%q: %w", keyString(key), err)
	}

	return nil
}

func (s *SQLSummaryCache) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
