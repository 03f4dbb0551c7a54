package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	"water-distribution-service/internal/domain"
)

func TestGet(t *testing.T) {
	t.Setenv("WDS_TEST_KEY", "  value ")
	if got := Get("WDS_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("Get = %q, want value", got)
	}

	t.Setenv("WDS_TEST_KEY", "   ")
	if got := Get("WDS_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("blank value should fall back, got %q", got)
	}
}

func TestIntAndDuration(t *testing.T) {
	t.Setenv("WDS_WORKERS", "8")
	if got := Int("WDS_WORKERS", 4); got != 8 {
		t.Fatalf("Int = %d, want 8", got)
	}
	for _, raw := range []string{"zero", "0", "-2"} {
		t.Setenv("WDS_WORKERS", raw)
		if got := Int("WDS_WORKERS", 4); got != 4 {
			t.Fatalf("Int(%q) = %d, want fallback 4", raw, got)
		}
	}

	t.Setenv("WDS_TTL", "90s")
	if got := Duration("WDS_TTL", time.Minute); got != 90*time.Second {
		t.Fatalf("Duration = %s, want 90s", got)
	}
	t.Setenv("WDS_TTL", "0s")
	if got := Duration("WDS_TTL", time.Minute); got != 0 {
		t.Fatalf("zero duration should be kept, got %s", got)
	}
	t.Setenv("WDS_TTL", "soon")
	if got := Duration("WDS_TTL", time.Minute); got != time.Minute {
		t.Fatalf("bad duration should fall back, got %s", got)
	}
}

func TestServerDriver(t *testing.T) {
	s := Server{DBPath: "data/app.db"}
	if d, dsn := s.Driver(); d != "sqlite" || dsn != "data/app.db" {
		t.Fatalf("Driver = %s %s", d, dsn)
	}

	s.DatabaseURL = "postgres://localhost/water"
	if d, dsn := s.Driver(); d != "pgx" || dsn != s.DatabaseURL {
		t.Fatalf("Driver = %s %s", d, dsn)
	}
}

func TestLoadTankerCatalogDefault(t *testing.T) {
	c, err := LoadTankerCatalog("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := c.Names(); len(names) != 2 || names[0] != "19 m³" || names[1] != "34 m³" {
		t.Fatalf("default names = %v", names)
	}
}

func TestLoadTankerCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tankers.yaml")
	data := `tankers:
  - name: "10 m³"
    capacity: 10
    fixed_cost: 200
    cost_per_km: 4
    consumption_per_km: 0.3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := LoadTankerCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tk, err := c.Lookup("10 m³")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if tk.Capacity != 10 || tk.FixedCost != 200 || tk.CostPerKm != 4 || tk.ConsumptionPerKm != 0.3 {
		t.Fatalf("unexpected tanker %+v", tk)
	}
}

func TestParseTankerCatalogRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no tankers", "tankers: []\n"},
		{"zero capacity", "tankers:\n  - name: a\n    capacity: 0\n"},
		{"negative cost", "tankers:\n  - name: a\n    capacity: 5\n    fixed_cost: -1\n"},
		{"duplicate", "tankers:\n  - name: a\n    capacity: 5\n  - name: a\n    capacity: 6\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTankerCatalog([]byte(tc.data))
			if !errors.Is(err, domain.ErrInvalidTankerType) {
				t.Fatalf("expected ErrInvalidTankerType, got %v", err)
			}
		})
	}
}

func TestParseTankerCatalogUnknownField(t *testing.T) {
	_, err := ParseTankerCatalog([]byte("tankers:\n  - name: a\n    capacity: 5\n    colour: red\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadTankerCatalogMissingFile(t *testing.T) {
	if _, err := LoadTankerCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
