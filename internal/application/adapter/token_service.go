package adapter

import (
	"time"

	"github.com/finbook/backend/internal/domain/entity"
)

// TokenClaims represents the identity embedded in a bearer token.
type TokenClaims struct {
	UserID    string
	Username  string
	Name      string
	ExpiresAt time.Time
}

// TokenService defines the external token issuer/verifier primitive: it
// produces an opaque bearer token with expiry for a user identity and
// recovers the identity from a presented token.
type TokenService interface {
	// GenerateToken issues a signed bearer token for the user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken verifies a token and returns the embedded identity, or
	// an error for invalid or expired tokens.
	ValidateToken(token string) (*TokenClaims, error)
}
