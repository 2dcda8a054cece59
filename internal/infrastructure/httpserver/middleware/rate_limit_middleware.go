package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/openmusic/openmusic-api/internal/core/ports"
)

// maxPeekBody bounds how much of a login body is read to find the username.
const maxPeekBody = 4 << 10

type RateLimitMiddleware struct {
	rateLimiter ports.RateLimiterService
	logger      *logrus.Logger
}

func NewRateLimitMiddleware(rateLimiter ports.RateLimiterService, logger *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{rateLimiter: rateLimiter, logger: logger}
}

type windowState struct {
	remaining int
	limit     int
	reset     time.Time
}

// Handler limits each client IP and, for logins, each username named in the body.
// A username is limited across all IPs, so one account cannot be brute-forced from many hosts.
// The X-RateLimit-* headers report the tightest subject.
func (r *RateLimitMiddleware) Handler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// No limiter configured (memory cache backend)
			if r.rateLimiter == nil {
				return next(c)
			}

			subjects := []string{"ip:" + c.RealIP()}
			if username := loginUsername(c.Request()); username != "" {
				subjects = append(subjects, "user:"+username)
			}

			var tightest *windowState
			blocked := false
			for _, subject := range subjects {
				allowed, remaining, limit, reset, err := r.rateLimiter.Allow(c.Request().Context(), subject)
				if err != nil {
					if r.logger != nil {
						r.logger.WithError(err).WithField("subject", subject).Warn("rate limiter error; allowing request (fail-open)")
					}
					continue
				}
				if !allowed {
					blocked = true
				}
				if tightest == nil || remaining < tightest.remaining {
					tightest = &windowState{remaining: remaining, limit: limit, reset: reset}
				}
			}

			if tightest != nil {
				h := c.Response().Header()
				h.Set("X-RateLimit-Limit", strconv.Itoa(tightest.limit))
				h.Set("X-RateLimit-Remaining", strconv.Itoa(tightest.remaining))
				h.Set("X-RateLimit-Reset", strconv.FormatInt(tightest.reset.Unix(), 10))
			}

			if blocked {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

// loginUsername reads the username from a JSON POST body and restores the body for the handler.
func loginUsername(req *http.Request) string {
	if req.Method != http.MethodPost || req.Body == nil {
		return ""
	}
	head, err := io.ReadAll(io.LimitReader(req.Body, maxPeekBody))
	req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(head), req.Body))
	if err != nil {
		return ""
	}

	var payload struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(head, &payload); err != nil {
		return ""
	}
	return payload.Username
}
