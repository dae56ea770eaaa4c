// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/application/adapter"
	domainerror "github.com/finbook/backend/internal/domain/error"
	"github.com/finbook/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UsernameKey is the context key for the authenticated user's username.
	UsernameKey ContextKey = "username"
)

// AuthMiddleware provides bearer-token authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate returns a Gin handler that enforces bearer-token
// authentication and stores the caller's identity in the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  domainerror.ErrCodeMissingToken,
			})
			c.Abort()
			return
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  domainerror.ErrCodeInvalidToken,
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  domainerror.ErrCodeInvalidToken,
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UsernameKey), claims.Username)

		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user's id from the Gin
// context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(string(UserIDKey))
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}
