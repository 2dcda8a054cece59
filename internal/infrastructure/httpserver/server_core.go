package httpserver

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/openmusic/openmusic-api/internal/core/ports"
	customMiddleware "github.com/openmusic/openmusic-api/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
}

// ServerDeps lists the services behind the routes. RateLimiterService may be nil.
type ServerDeps struct {
	UserService        ports.UserService
	AuthService        ports.AuthService
	AlbumService       ports.AlbumService
	AlbumLikeService   ports.AlbumLikeService
	SongService        ports.SongService
	PlaylistService    ports.PlaylistService
	RateLimiterService ports.RateLimiterService
	HealthCheckers     []ports.HealthChecker
	// Cache is the likes cache; only its backend name is reported by /health.
	Cache ports.Cache
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	userService    ports.UserService
	authSvc        ports.AuthService
	albumSvc       ports.AlbumService
	likeSvc        ports.AlbumLikeService
	songSvc        ports.SongService
	playlistSvc    ports.PlaylistService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
	cache          ports.Cache
}

func NewServer(serverConfig *ServerConfig, accessTokenKey string, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		userService:    deps.UserService,
		authSvc:        deps.AuthService,
		albumSvc:       deps.AlbumService,
		likeSvc:        deps.AlbumLikeService,
		songSvc:        deps.SongService,
		playlistSvc:    deps.PlaylistService,
		healthCheckers: deps.HealthCheckers,
		cache:          deps.Cache,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.RateLimiterService,
			logger,
			accessTokenKey,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}
	e.HTTPErrorHandler = server.handleError

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
