package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook/backend/internal/domain/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	user := &entity.User{ID: "usr_abc", Name: "Alice", Username: "alice"}

	token, err := service.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "usr_abc", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice", claims.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	service := NewTokenService("test-secret", -time.Minute)
	user := &entity.User{ID: "usr_abc", Username: "alice"}

	token, err := service.GenerateToken(user)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(&entity.User{ID: "usr_abc", Username: "alice"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, service.VerifyPassword(hash, "s3cret-password"))
	assert.Error(t, service.VerifyPassword(hash, "wrong-password"))
}
