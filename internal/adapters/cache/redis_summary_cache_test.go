package cache

import (
	"context"
	"testing"
	"time"
	"water-distribution-service/internal/domain"
	"water-distribution-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisSummaryCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewRedisSummaryCache(context.Background(), "redis://"+mr.Addr(), "", ttl)
	if err != nil {
		t.Fatalf("new redis cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisSummaryCacheRoundTrip(t *testing.T) {
	c, _ := newTestRedisCache(t, time.Minute)
	ctx := context.Background()
	key := ports.SummaryKey{Level: domain.AreaSector, ScenarioPct: 50, Tanker: "19 m³"}

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected miss on empty cache, ok=%v err=%v", ok, err)
	}

	rows := []ports.SummaryRow{{Name: "A", Demand: 10, TotalCost: 700, TotalTrips: 2, TotalFuel: 1, UnmetDemand: 0}}
	if err := c.Put(ctx, key, rows); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0] != rows[0] {
		t.Fatalf("got %+v, want %+v", got, rows)
	}

	other := key
	other.ScenarioPct = 51
	if _, ok, _ := c.Get(ctx, other); ok {
		t.Fatal("different scenario must not share an entry")
	}
}

func TestRedisSummaryCacheExpires(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)
	ctx := context.Background()
	key := ports.SummaryKey{Level: domain.AreaDistrict, ScenarioPct: 100, Tanker: "34 m³"}

	if err := c.Put(ctx, key, []ports.SummaryRow{{Name: "B"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected expired entry, ok=%v err=%v", ok, err)
	}
}

func TestRedisSummaryCacheBadPayload(t *testing.T) {
	c, mr := newTestRedisCache(t, 0)
	key := ports.SummaryKey{Level: domain.AreaSector, ScenarioPct: 10, Tanker: "19 m³"}

	if err := mr.Set(keyString(key), "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := c.Get(context.Background(), key); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewRedisSummaryCacheBadURL(t *testing.T) {
	if _, err := NewRedisSummaryCache(context.Background(), "http://nope", "", time.Minute); err == nil {
		t.Fatal("expected url parse error")
	}
}

func TestRedisSummaryCacheNamespaceSeparatesDatasets(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	key := ports.SummaryKey{Level: domain.AreaSector, ScenarioPct: 20, Tanker: "19 m³"}

	before, err := NewRedisSummaryCache(ctx, "redis://"+mr.Addr(), "dataset-a", time.Hour)
	if err != nil {
		t.Fatalf("new redis cache: %v", err)
	}
	defer before.Close()
	if err := before.Put(ctx, key, []ports.SummaryRow{{Name: "OLD", TotalCost: 1}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Same Redis, reseeded with different data.
	after, err := NewRedisSummaryCache(ctx, "redis://"+mr.Addr(), "dataset-b", time.Hour)
	if err != nil {
		t.Fatalf("new redis cache: %v", err)
	}
	defer after.Close()
	if _, ok, err := after.Get(ctx, key); err != nil || ok {
		t.Fatalf("entry from another dataset must miss, ok=%v err=%v", ok, err)
	}

	if _, ok, _ := before.Get(ctx, key); !ok {
		t.Fatal("entry should still hit under its own namespace")
	}
	if !mr.Exists("dataset-a:" + keyString(key)) {
		t.Fatalf("expected namespaced key, have %v", mr.Keys())
	}
}
