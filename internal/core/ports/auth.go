package ports

import (
	"context"

	"github.com/openmusic/openmusic-api/internal/core/domain/auth"
)

// TokenManager issues access/refresh tokens and verifies refresh tokens.
// Access tokens are verified by the HTTP JWT middleware.
type TokenManager interface {
	GenerateAccessToken(payload auth.TokenPayload) (string, error)
	GenerateRefreshToken(payload auth.TokenPayload) (string, error)
	VerifyRefreshToken(token string) (auth.TokenPayload, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}
