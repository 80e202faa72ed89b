// Package auth holds the credential primitives: bcrypt password hashing
// and the signed session-token codec. Both are pure leaves — no I/O, no
// shared mutable state, safe for concurrent use.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// HashPassword derives a salted bcrypt hash from a plaintext password.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// A mismatch is a normal (false, nil); a structurally invalid stored hash
// is (false, domain.ErrCorruptCredential) so callers can surface it as a
// server-side fault instead of a bad password.
func VerifyPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, domain.ErrCorruptCredential
}
