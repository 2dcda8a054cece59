package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/openmusic/openmusic-api/internal/core/domain/auth"
	"github.com/openmusic/openmusic-api/internal/infrastructure/httpserver/helpers"
	"github.com/openmusic/openmusic-api/internal/infrastructure/tokenize"
)

// JWTMiddleware verifies access tokens; refresh tokens are signed with another key and fail here.
type JWTMiddleware struct {
	accessKey []byte
	logger    *logrus.Logger
}

func NewJWTMiddleware(accessTokenKey string, logger *logrus.Logger) *JWTMiddleware {
	return &JWTMiddleware{accessKey: []byte(accessTokenKey), logger: logger}
}

// RequireJWT creates middleware that validates JWT tokens and sets user context
func (m *JWTMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := helpers.GetJWTTokenFromContext(c)
			if err != nil {
				return err
			}

			claims, err := tokenize.ParseClaims(tokenString, m.accessKey)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("JWT validation failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired access token")
			}

			userID, ok := auth.TokenPayload(claims).UserID()
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token has no user id")
			}
			helpers.SetUserID(c, userID)

			if m.logger != nil {
				m.logger.WithFields(logrus.Fields{"user_id": userID}).Debug("jwt validated and user context set")
			}
			return next(c)
		}
	}
}
