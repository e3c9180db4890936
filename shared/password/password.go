package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor applied to every hash.
const DefaultCost = bcrypt.DefaultCost

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

// Hash derives a bcrypt hash from the plaintext password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

// Verify reports whether the plaintext password produced the stored hash.
// A mismatch surfaces as ErrInvalidPassword so callers can keep login
// failures indistinguishable from unknown accounts.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
