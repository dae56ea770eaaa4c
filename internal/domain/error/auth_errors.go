package error

import "errors"

// Authentication and user domain errors.
var (
	// ErrInvalidCredentials is returned for any failed login. It never
	// reveals whether the username exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for missing, malformed or expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering with a username that is
	// already in use.
	ErrUsernameTaken = errors.New("username already in use")
)

// Auth and user error codes.
const (
	ErrCodeInvalidCredentials = "AUTH-010001"
	ErrCodeMissingToken       = "AUTH-010002"
	ErrCodeInvalidToken       = "AUTH-010003"
	ErrCodeRateLimited        = "AUTH-010004"
	ErrCodeUserNotFound       = "USR-010001"
	ErrCodeUsernameTaken      = "USR-010002"
	ErrCodeMissingUserFields  = "USR-010003"
	ErrCodeWeakPassword       = "USR-010004"
)

// NewInvalidCredentials creates the generic authentication failure.
func NewInvalidCredentials() *DomainError {
	return New(KindAuthentication, ErrCodeInvalidCredentials, "invalid credentials", ErrInvalidCredentials)
}

// NewInvalidToken creates the authentication failure for bad tokens.
func NewInvalidToken() *DomainError {
	return New(KindAuthentication, ErrCodeInvalidToken, "invalid or expired token", ErrInvalidToken)
}

// NewUserNotFound creates the not-found error for users.
func NewUserNotFound() *DomainError {
	return New(KindNotFound, ErrCodeUserNotFound, "user not found", ErrUserNotFound)
}

// NewUsernameTaken creates the conflict error for duplicate usernames.
func NewUsernameTaken() *DomainError {
	return New(KindConflict, ErrCodeUsernameTaken, "username already in use", ErrUsernameTaken)
}
