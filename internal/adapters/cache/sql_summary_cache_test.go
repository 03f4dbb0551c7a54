package cache

import (
	"context"
	"database/sql"
	"testing"
	"time"
	"water-distribution-service/internal/domain"
	platformdb "water-distribution-service/internal/platform/db"
	"water-distribution-service/internal/ports"

	_ "modernc.org/sqlite"
)

func newTestSQLCache(t *testing.T, ttl time.Duration) *SQLSummaryCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	c := NewSQLSummaryCache(db, platformdb.SQLite, ttl)
	if err := c.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return c
}

func TestSQLSummaryCacheRoundTrip(t *testing.T) {
	c := newTestSQLCache(t, time.Hour)
	ctx := context.Background()
	key := ports.SummaryKey{Level: domain.AreaDistrict, ScenarioPct: 80, Tanker: "34 m³"}

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}

	first := []ports.SummaryRow{{Name: "LIMA", Demand: 100, TotalCost: 5000, TotalTrips: 3}}
	second := []ports.SummaryRow{{Name: "LIMA", Demand: 100, TotalCost: 4000, TotalTrips: 3}}
	if err := c.Put(ctx, key, first); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Put(ctx, key, second); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0] != second[0] {
		t.Fatalf("got %+v, want %+v", got, second)
	}
}

func TestSQLSummaryCacheTTL(t *testing.T) {
	c := newTestSQLCache(t, 10*time.Minute)
	ctx := context.Background()
	key := ports.SummaryKey{Level: domain.AreaSector, ScenarioPct: 100, Tanker: "19 m³"}

	now := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return now }
	if err := c.Put(ctx, key, []ports.SummaryRow{{Name: "A"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	now = now.Add(9 * time.Minute)
	if _, ok, _ := c.Get(ctx, key); !ok {
		t.Fatal("entry inside TTL should hit")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Fatal("entry past TTL should miss")
	}
}

func TestSQLSummaryCachePurge(t *testing.T) {
	c := newTestSQLCache(t, 0)
	ctx := context.Background()
	key := ports.SummaryKey{Level: domain.AreaSector, ScenarioPct: 30, Tanker: "19 m³"}

	if err := c.Put(ctx, key, []ports.SummaryRow{{Name: "A"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Purge(ctx); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Fatal("purged entry should miss")
	}
}

func TestSQLSummaryCacheNilDB(t *testing.T) {
	c := &SQLSummaryCache{}
	if _, _, err := c.Get(context.Background(), ports.SummaryKey{}); err == nil {
		t.Fatal("expected error for nil db")
	}
	if err := c.Put(context.Background(), ports.SummaryKey{}, nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}
