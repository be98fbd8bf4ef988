package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor for stored account passwords.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives the bcrypt hash stored on a user account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the
// stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
