// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"github.com/finbook/backend/internal/domain/valueobject"
)

// User represents a registered account. Usernames are stored normalized to
// lowercase and are unique across all users.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// NewUser creates a new User entity with a generated id. The username is
// normalized with NormalizeUsername before being stored.
func NewUser(name, username, passwordHash string) *User {
	return &User{
		ID:           valueobject.NewID("usr"),
		Name:         name,
		Username:     NormalizeUsername(username),
		PasswordHash: passwordHash,
	}
}

// NormalizeUsername trims surrounding whitespace and lowercases a username.
// All username lookups and uniqueness checks operate on the normalized form.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
