package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/openmusic/openmusic-api/configs"
	"github.com/openmusic/openmusic-api/internal/application/services"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/openmusic/openmusic-api/internal/infrastructure/db"
	"github.com/openmusic/openmusic-api/internal/infrastructure/health"
	"github.com/openmusic/openmusic-api/internal/infrastructure/httpserver"
	"github.com/openmusic/openmusic-api/internal/infrastructure/memcache"
	"github.com/openmusic/openmusic-api/internal/infrastructure/redis"
	"github.com/openmusic/openmusic-api/internal/infrastructure/repositories"
	"github.com/openmusic/openmusic-api/internal/infrastructure/tokenize"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting OpenMusic API...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabaseWithConfig(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	if err := database.Migrate(cfg.Server.MigrationsPath); err != nil {
		logger.Fatal("Failed to run migrations:", err)
	}

	hcSlice := []ports.HealthChecker{health.NewDBHealthChecker(database)}

	// Cache backend; the rate limiter needs Redis and is off with the memory backend
	var cache ports.Cache
	var rateLimiterService ports.RateLimiterService
	switch cfg.Cache.Backend {
	case config.CacheBackendMemory:
		cache = memcache.NewMemoryCache(cfg.Cache.DefaultTTL, cfg.Cache.MaxSize)
		logger.Warn("Using in-process memory cache; rate limiting disabled")
	default:
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")

		cache = redis.NewRedisCache(redisClient, cfg.Cache.KeyPrefix, cfg.Cache.DefaultTTL)
		rateLimiterService = services.NewRateLimiterService(
			repositories.NewRateLimitRedisRepository(redisClient),
			&services.RateLimiterConfig{
				RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
				Window:            cfg.RateLimit.Window,
				KeyPrefix:         cfg.RateLimit.KeyPrefix,
			},
			logger,
		)
		hcSlice = append(hcSlice, health.NewRedisHealthChecker(redisClient))
	}

	hcSlice = append(hcSlice, health.NewCacheHealthChecker(cache))

	// Repositories; album reads go through the cache
	userRepo := repositories.NewUserRepository(database, logger)
	albumRepo := repositories.NewCachingAlbumRepository(repositories.NewAlbumRepository(database), cache, cfg.Cache.DefaultTTL, logger)
	songRepo := repositories.NewSongRepository(database)
	playlistRepo := repositories.NewPlaylistRepository(database)
	likeRepo := repositories.NewAlbumLikeRepository(database, logger)

	tokenManager, err := tokenize.NewTokenManager(&cfg.JWT)
	if err != nil {
		logger.Fatal("Invalid token configuration:", err)
	}

	userService := services.NewUserService(userRepo, logger)
	authService := services.NewAuthService(userService, tokenManager, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	deps := httpserver.ServerDeps{
		UserService:        userService,
		AuthService:        authService,
		AlbumService:       services.NewAlbumService(albumRepo, songRepo, logger),
		AlbumLikeService:   services.NewAlbumLikeService(likeRepo, albumRepo, cache, logger),
		SongService:        services.NewSongService(songRepo, logger),
		PlaylistService:    services.NewPlaylistService(playlistRepo, songRepo, logger),
		RateLimiterService: rateLimiterService,
		HealthCheckers:     hcSlice,
		Cache:              cache,
	}

	server := httpserver.NewServer(serverConfig, cfg.JWT.AccessTokenKey, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.WithFields(logrus.Fields{"host": cfg.Server.Host, "port": cfg.Server.Port, "cache": cache.Name()}).Info("Server started")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
