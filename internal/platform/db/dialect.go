package db

import (
	"fmt"
	"strings"
)

// Dialect selects SQL placeholder syntax. The schema itself is shared
// between SQLite and Postgres.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// DialectForDriver maps a database/sql driver name to its dialect.
func DialectForDriver(driver string) (Dialect, error) {
	switch driver {
	case "sqlite":
		return SQLite, nil
	case "pgx", "postgres":
		return Postgres, nil
	}
	return 0, fmt.Errorf("unsupported sql driver %q", driver)
}

// Rebind rewrites '?' placeholders for dialects that use numbered ones.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(q string) string {
	if d != Postgres {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
