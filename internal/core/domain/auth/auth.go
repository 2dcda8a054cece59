package auth

// LoginRequest represents the POST /authentications body
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the PUT /authentications body
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthTokens is the access/refresh pair issued on login
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenPayload is the caller-supplied claims map signed into a token.
// The token manager adds and strips the reserved claims below.
// Values come back from verification as decoded JSON, so numbers are float64.
type TokenPayload map[string]any

// Reserved claim names owned by the token manager.
const (
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
)

// ClaimUserID is the claim carrying the authenticated user id.
const ClaimUserID = "id"

// NewUserPayload builds the payload issued for a logged-in user.
func NewUserPayload(userID string) TokenPayload {
	return TokenPayload{ClaimUserID: userID}
}

// UserID returns the user id claim, if present.
func (p TokenPayload) UserID() (string, bool) {
	id, ok := p[ClaimUserID].(string)
	return id, ok && id != ""
}

// TokenType represents the class of a token
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)
