package ports

import (
	"context"
	"time"
)

// Cache defines a minimal key-value cache contract over string values.
// Implementations should degrade gracefully (returning an error without crashing callers)
// so that application logic can fall back to the primary datastore.
type Cache interface {
	// Get returns the value for key. found=false with a nil error is a miss
	// (absent or expired); a non-nil error is a backend failure.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value for key. ttl <= 0 means the backend default TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
	// Name identifies the backend in logs.
	Name() string
}
