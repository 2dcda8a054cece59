package services

import (
	"context"
	"fmt"

	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/auth"
	"github.com/openmusic/openmusic-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type AuthService struct {
	users  ports.UserService
	tokens ports.TokenManager
	logger *logrus.Logger
}

func NewAuthService(users ports.UserService, tokens ports.TokenManager, logger *logrus.Logger) ports.AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error) {
	userID, err := s.users.VerifyCredential(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	payload := auth.NewUserPayload(userID)
	accessToken, err := s.tokens.GenerateAccessToken(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": userID}).Info("user logged in")
	}
	return &auth.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshAccessToken issues a new access token carrying the refresh token's payload.
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	payload, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	if _, ok := payload.UserID(); !ok {
		return "", fmt.Errorf("%w: refresh token has no user id", apperrors.ErrInvalidToken)
	}

	accessToken, err := s.tokens.GenerateAccessToken(payload)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}
