package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openmusic/openmusic-api/internal/core/domain/album"
	"github.com/openmusic/openmusic-api/internal/core/domain/like"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	s, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return &v, true
}

func albumKey(id string) string { return "album:id:" + id }

// CachingAlbumRepository decorates an AlbumRepository with cache-aside on GetByID.
// Concurrent misses for the same album share one database read.
// Deleting an album also drops its like counter, since the likes cascade with it.
// Cache failures are logged and never fail the call.
type CachingAlbumRepository struct {
	inner  ports.AlbumRepository
	cache  ports.Cache
	ttl    time.Duration
	logger *logrus.Logger
	sf     singleflight.Group
}

func NewCachingAlbumRepository(inner ports.AlbumRepository, cache ports.Cache, ttl time.Duration, logger *logrus.Logger) ports.AlbumRepository {
	return &CachingAlbumRepository{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachingAlbumRepository) warn(err error, msg, key string) {
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{"key": key, "backend": c.cache.Name()}).WithError(err).Warn(msg)
	}
}

func (c *CachingAlbumRepository) store(ctx context.Context, a *album.Album) {
	if c.cache == nil {
		return
	}
	key := albumKey(a.ID)
	b, err := json.Marshal(a)
	if err != nil {
		c.warn(err, "cache: failed to encode album", key)
		return
	}
	if err := c.cache.Set(ctx, key, string(b), c.ttl); err != nil {
		c.warn(err, "cache: failed to store album", key)
	}
}

func (c *CachingAlbumRepository) evict(ctx context.Context, keys ...string) {
	if c.cache == nil {
		return
	}
	for _, key := range keys {
		if err := c.cache.Delete(ctx, key); err != nil {
			c.warn(err, "cache: failed to invalidate", key)
		}
	}
}

func (c *CachingAlbumRepository) Create(ctx context.Context, a *album.Album) error {
	if err := c.inner.Create(ctx, a); err != nil {
		return err
	}
	c.store(ctx, a)
	return nil
}

func (c *CachingAlbumRepository) GetByID(ctx context.Context, id string) (*album.Album, error) {
	key := albumKey(id)
	if v, ok := cacheGet[album.Album](c.cache, ctx, key); ok {
		return v, nil
	}
	flightCtx := context.WithoutCancel(ctx)
	res, err, _ := c.sf.Do(key, func() (any, error) {
		a, err := c.inner.GetByID(flightCtx, id)
		if err != nil {
			return nil, err
		}
		c.store(flightCtx, a)
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	a, ok := res.(*album.Album)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	// callers may mutate the album; hand each one its own copy
	cp := *a
	return &cp, nil
}

func (c *CachingAlbumRepository) Update(ctx context.Context, a *album.Album) error {
	if err := c.inner.Update(ctx, a); err != nil {
		return err
	}
	c.evict(ctx, albumKey(a.ID))
	return nil
}

func (c *CachingAlbumRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, albumKey(id), like.CounterKey(id))
	return nil
}

// Simple validation to ensure decorators implement interfaces at compile time
var _ ports.AlbumRepository = (*CachingAlbumRepository)(nil)
