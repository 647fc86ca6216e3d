package sync

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hbenomar/macstore-backend/internal/store"
)

const cacheKey = "storefront:snapshot"

// cachedGateway keeps the latest snapshot in redis in front of a durable
// gateway. The cache is an accelerator only; redis failures degrade silently
// to the inner gateway.
type cachedGateway struct {
	inner Gateway
	rdb   *redis.Client
	ttl   time.Duration
}

// WithRedisCache wraps inner with a read-through/write-through redis cache.
func WithRedisCache(inner Gateway, rdb *redis.Client) Gateway {
	return &cachedGateway{inner: inner, rdb: rdb, ttl: time.Hour}
}

func (g *cachedGateway) Fetch(ctx context.Context) (*store.Snapshot, error) {
	if raw, err := g.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		snap := store.Empty()
		if err := json.Unmarshal(raw, snap); err == nil {
			return snap, nil
		}
		log.Printf("sync: dropping undecodable cached snapshot")
	}

	snap, err := g.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	g.cache(ctx, snap)
	return snap, nil
}

func (g *cachedGateway) Push(ctx context.Context, snap *store.Snapshot) error {
	// The durable copy wins; the cache is refreshed afterwards.
	if err := g.inner.Push(ctx, snap); err != nil {
		return err
	}
	g.cache(ctx, snap)
	return nil
}

func (g *cachedGateway) cache(ctx context.Context, snap *store.Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := g.rdb.Set(ctx, cacheKey, raw, g.ttl).Err(); err != nil {
		log.Printf("sync: snapshot cache write failed: %v", err)
	}
}
