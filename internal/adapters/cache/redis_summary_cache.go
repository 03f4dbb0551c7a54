package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"water-distribution-service/internal/platform/obs"
	"water-distribution-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisSummaryCache stores summary rows as JSON strings with a Redis TTL.
// Entries outlive the process, so Namespace should identify the reference
// dataset; a reseed with different data then misses instead of serving stale rows.
type RedisSummaryCache struct {
	Client    *redis.Client
	TTL       time.Duration
	Namespace string
}

// NewRedisSummaryCache connects using a redis:// URL and verifies the server
// answers before returning.
func NewRedisSummaryCache(ctx context.Context, url, namespace string, ttl time.Duration) (*RedisSummaryCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis summary cache: parse url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis summary cache: ping: %w", err)
	}

	return &RedisSummaryCache{Client: client, TTL: ttl, Namespace: namespace}, nil
}

func (r *RedisSummaryCache) Get(ctx context.Context, key ports.SummaryKey) (_ []ports.SummaryRow, _ bool, err error) {
	defer obs.Time(ctx, "summary.redis.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("redis summary cache: client is nil")
	}

	payload, err := r.Client.Get(ctx, namespacedKey(r.Namespace, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get redis summary key=%q: %w", namespacedKey(r.Namespace, key), err)
	}

	var rows []ports.SummaryRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, false, fmt.Errorf("get redis summary: decode rows: %w", err)
	}
	return rows, true, nil
}

// Put replaces the entry. A zero TTL keeps it until evicted.
func (r *RedisSummaryCache) Put(ctx context.Context, key ports.SummaryKey, rows []ports.SummaryRow) error {
	if r.Client == nil {
		return errors.New("redis summary cache: client is nil")
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("put redis summary: encode rows: %w", err)
	}

	if err := r.Client.Set(ctx, namespacedKey(r.Namespace, key), payload, r.TTL).Err(); err != nil {
		return fmt.Errorf("put redis summary key=%q: %w", namespacedKey(r.Namespace, key), err)
	}
	return nil
}

func (r *RedisSummaryCache) Close() error {
	if r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
