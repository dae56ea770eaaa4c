package adapters

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finbook/backend/internal/application/adapter"
	"github.com/finbook/backend/internal/domain/entity"
)

// customClaims represents the claims embedded in issued bearer tokens.
type customClaims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface using HMAC
// signed JWTs.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, expiry time.Duration) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GenerateToken issues a signed bearer token carrying the user's identity.
func (s *tokenService) GenerateToken(user *entity.User) (string, error) {
	now := time.Now().UTC()
	claims := customClaims{
		Username: user.Username,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a bearer token and returns the embedded identity.
func (s *tokenService) ValidateToken(tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &customClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &adapter.TokenClaims{
		UserID:    claims.Subject,
		Username:  claims.Username,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
