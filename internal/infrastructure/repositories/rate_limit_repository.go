package repositories

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimitRedisRepository keeps fixed-window request counters in Redis.
// Each window gets its own key, which lives for two windows.
type RateLimitRedisRepository struct {
	r   redis.Cmdable
	now func() time.Time
}

func NewRateLimitRedisRepository(r redis.Cmdable) *RateLimitRedisRepository {
	return &RateLimitRedisRepository{r: r, now: time.Now}
}

func windowKey(key string, windowStart time.Time) string {
	return key + ":" + strconv.FormatInt(windowStart.Unix(), 10)
}

// IncrementWindow counts one request against key in the current window.
func (repo *RateLimitRedisRepository) IncrementWindow(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	windowStart := repo.now().Truncate(window)
	k := windowKey(key, windowStart)

	pipe := repo.r.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, 2*window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, windowStart, err
	}
	return int(incr.Val()), windowStart, nil
}
