package tokenize

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	config "github.com/openmusic/openmusic-api/configs"
	"github.com/openmusic/openmusic-api/internal/core/apperrors"
	"github.com/openmusic/openmusic-api/internal/core/domain/auth"
	"github.com/openmusic/openmusic-api/internal/core/ports"
)

// TokenManager signs access and refresh tokens with separate HS256 secrets.
type TokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessAge  time.Duration
	refreshAge time.Duration
	now        func() time.Time
}

var _ ports.TokenManager = (*TokenManager)(nil)

func NewTokenManager(cfg *config.JWTConfig) (*TokenManager, error) {
	if cfg == nil {
		return nil, errors.New("jwt config is required")
	}
	if cfg.AccessTokenKey == "" || cfg.RefreshTokenKey == "" {
		return nil, errors.New("access and refresh token keys must be set")
	}
	if cfg.AccessTokenKey == cfg.RefreshTokenKey {
		return nil, errors.New("access and refresh token keys must differ")
	}
	if cfg.AccessTokenAge <= 0 || cfg.RefreshTokenAge <= 0 {
		return nil, errors.New("token ages must be positive")
	}
	return &TokenManager{
		accessKey:  []byte(cfg.AccessTokenKey),
		refreshKey: []byte(cfg.RefreshTokenKey),
		accessAge:  cfg.AccessTokenAge,
		refreshAge: cfg.RefreshTokenAge,
		now:        time.Now,
	}, nil
}

func (m *TokenManager) GenerateAccessToken(payload auth.TokenPayload) (string, error) {
	return m.sign(payload, m.accessKey, m.accessAge)
}

func (m *TokenManager) GenerateRefreshToken(payload auth.TokenPayload) (string, error) {
	return m.sign(payload, m.refreshKey, m.refreshAge)
}

// VerifyRefreshToken returns the payload without the reserved iat/exp claims.
func (m *TokenManager) VerifyRefreshToken(token string) (auth.TokenPayload, error) {
	claims, err := ParseClaims(token, m.refreshKey)
	if err != nil {
		return nil, err
	}
	payload := make(auth.TokenPayload, len(claims))
	for k, v := range claims {
		if k == auth.ClaimIssuedAt || k == auth.ClaimExpiresAt {
			continue
		}
		payload[k] = v
	}
	return payload, nil
}

func (m *TokenManager) sign(payload auth.TokenPayload, key []byte, age time.Duration) (string, error) {
	now := m.now()
	claims := make(jwt.MapClaims, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	claims[auth.ClaimIssuedAt] = now.Unix()
	claims[auth.ClaimExpiresAt] = now.Add(age).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseClaims verifies an HS256 token against key and requires exp.
// Every failure is reported as apperrors.ErrInvalidToken.
func ParseClaims(token string, key []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
