package ports

import (
	"context"
	"time"
)

// RateLimitRepository stores fixed-window counters. Implementations must be concurrency-safe.
type RateLimitRepository interface {
	// IncrementWindow atomically counts one request for key in the window containing now.
	// Returns the updated count and the window start time.
	IncrementWindow(ctx context.Context, key string, window time.Duration) (count int, windowStart time.Time, err error)
}

// RateLimiterService limits requests per subject, such as "ip:10.0.0.1" or "user:dicoding".
type RateLimiterService interface {
	// Allow consumes one request unit for the subject and reports whether it is permitted.
	// remaining: number of additional requests allowed in current window after this one (>=0)
	// limit: configured max requests per window
	// reset: time when the current window resets (Unix semantics for headers)
	Allow(ctx context.Context, subject string) (allowed bool, remaining int, limit int, reset time.Time, err error)
}
