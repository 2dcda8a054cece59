package health

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/openmusic/openmusic-api/internal/core/ports"
	infraDB "github.com/openmusic/openmusic-api/internal/infrastructure/db"
)

const cacheProbeKey = "health:probe"

type dbHealthChecker struct{ db *infraDB.Database }

func (d *dbHealthChecker) Name() string                    { return "database" }
func (d *dbHealthChecker) Check(ctx context.Context) error { return d.db.DB.PingContext(ctx) }

type redisHealthChecker struct{ client redis.Cmdable }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// cacheHealthChecker writes and reads back a probe entry through the likes cache.
type cacheHealthChecker struct{ cache ports.Cache }

func (c *cacheHealthChecker) Name() string { return "cache:" + c.cache.Name() }

func (c *cacheHealthChecker) Check(ctx context.Context) error {
	if err := c.cache.Set(ctx, cacheProbeKey, "ok", 10*time.Second); err != nil {
		return fmt.Errorf("cache write: %w", err)
	}
	v, ok, err := c.cache.Get(ctx, cacheProbeKey)
	if err != nil {
		return fmt.Errorf("cache read: %w", err)
	}
	if !ok || v != "ok" {
		return fmt.Errorf("cache probe not readable")
	}
	return nil
}

// NewDBHealthChecker creates a health checker for the database.
func NewDBHealthChecker(db *infraDB.Database) ports.HealthChecker { return &dbHealthChecker{db: db} }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client redis.Cmdable) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

// NewCacheHealthChecker probes any ports.Cache backend.
func NewCacheHealthChecker(cache ports.Cache) ports.HealthChecker {
	return &cacheHealthChecker{cache: cache}
}
