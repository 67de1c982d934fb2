package utils

import (
	"crypto/subtle"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// CheckAdminSecret verifies the caller-supplied admin secret. When
// ADMIN_PASSWORD_HASH is configured the candidate is checked against the
// bcrypt hash; otherwise it falls back to a constant-time comparison with
// the plaintext ADMIN_PASSWORD.
func CheckAdminSecret(candidate string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "delete123"
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(candidate)) == 1
}
