package db

import "testing"

func TestDialectRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE x = ? AND y = ?;"

	if got := SQLite.Rebind(q); got != q {
		t.Fatalf("sqlite rebind = %q", got)
	}
	if got := Postgres.Rebind(q); got != "SELECT a FROM t WHERE x = $1 AND y = $2;" {
		t.Fatalf("postgres rebind = %q", got)
	}

	if d, err := DialectForDriver("pgx"); err != nil || d != Postgres {
		t.Fatalf("DialectForDriver(pgx) = %v, %v", d, err)
	}
	if _, err := DialectForDriver("mysql"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestDialectForDriver(t *testing.T) {
	cases := []struct {
		driver string
		want   Dialect
		ok     bool
	}{
		{"sqlite", SQLite, true},
		{"pgx", Postgres, true},
		{"postgres", Postgres, true},
		{"mysql", 0, false},
	}
	for _, tc := range cases {
		got, err := DialectForDriver(tc.driver)
		if tc.ok != (err == nil) {
			t.Fatalf("driver %q: err = %v", tc.driver, err)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("driver %q: dialect = %v, want %v", tc.driver, got, tc.want)
		}
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, _, err := Open("mysql", "x"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
