package adapter

// PasswordService defines the external password-hashing primitive.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	// It returns an error when they do not match.
	VerifyPassword(hashedPassword, password string) error
}
