package httpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const (
	healthCheckTimeout = 2 * time.Second
	serviceName        = "openmusic-api"
)

type dependencyHealth struct {
	State     string `json:"state"`
	LatencyMs int64  `json:"latencyMs"`
}

type healthReport struct {
	State        string                      `json:"state"`
	Service      string                      `json:"service"`
	CacheBackend string                      `json:"cacheBackend,omitempty"`
	Timestamp    string                      `json:"timestamp"`
	Dependencies map[string]dependencyHealth `json:"dependencies"`
}

// healthCheck probes every dependency in parallel. Any failure answers 503 with status "fail".
func (s *Server) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	report := healthReport{
		State:        "healthy",
		Service:      serviceName,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Dependencies: make(map[string]dependencyHealth, len(s.healthCheckers)),
	}
	if s.cache != nil {
		report.CacheBackend = s.cache.Name()
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, hc := range s.healthCheckers {
		if hc == nil {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			err := hc.Check(ctx)
			dep := dependencyHealth{State: "healthy", LatencyMs: time.Since(start).Milliseconds()}
			if err != nil {
				dep.State = "unhealthy"
				if s.logger != nil {
					s.logger.WithError(err).WithField("dependency", hc.Name()).Warn("health check failed")
				}
			}

			mu.Lock()
			defer mu.Unlock()
			report.Dependencies[hc.Name()] = dep
			if err != nil {
				report.State = "degraded"
			}
			return nil
		})
	}
	_ = g.Wait()

	if report.State != "healthy" {
		return respondStatus(c, http.StatusServiceUnavailable, statusFail, report)
	}
	return respondData(c, http.StatusOK, report)
}
