package services

import (
	"context"
	"time"

	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// RateLimiterService applies one fixed-window policy to every subject.
type RateLimiterService struct {
	repo      ports.RateLimitRepository
	limit     int
	window    time.Duration
	keyPrefix string
	logger    *logrus.Logger
}

// RateLimiterConfig groups configuration parameters for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	KeyPrefix         string
}

func NewRateLimiterService(repo ports.RateLimitRepository, cfg *RateLimiterConfig, logger *logrus.Logger) *RateLimiterService {
	// Apply defaults
	limit := 30
	w := time.Minute
	kp := "ratelimit:auth"
	if cfg != nil {
		if cfg.RequestsPerWindow > 0 {
			limit = cfg.RequestsPerWindow
		}
		if cfg.Window > 0 {
			w = cfg.Window
		}
		if cfg.KeyPrefix != "" {
			kp = cfg.KeyPrefix
		}
	}
	return &RateLimiterService{repo: repo, limit: limit, window: w, keyPrefix: kp, logger: logger}
}

// Allow counts the request under keyPrefix:subject. Store failures allow the request.
func (s *RateLimiterService) Allow(ctx context.Context, subject string) (bool, int, int, time.Time, error) {
	count, windowStart, err := s.repo.IncrementWindow(ctx, s.keyPrefix+":"+subject, s.window)
	reset := windowStart.Add(s.window)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"subject": subject}).WithError(err).Error("rate limiter: failed to increment window")
		}
		// fail open
		return true, s.limit, s.limit, reset, err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"subject": subject, "count": count, "limit": s.limit}).Debug("rate limiter window state")
	}
	if count > s.limit {
		return false, 0, s.limit, reset, nil
	}
	return true, s.limit - count, s.limit, reset, nil
}
