package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Fixed application-wide salt and pepper baked into the binary. The digest is
// deliberately deterministic: equal passwords always produce equal digests,
// across users. Inherited behavior of the system this replaces; do not swap
// in a per-user random salt without changing the login comparison too.
const (
	passwordSalt   = "bebrik"
	passwordPepper = "kekosik"
)

// PasswordHasher computes a storable digest from a plaintext password.
type PasswordHasher interface {
	// Hash returns the digest for the given password. Pure and
	// deterministic: the same input always yields the same output.
	Hash(password string) string
}

// DigestHasher implements PasswordHasher as hex-encoded SHA-256 of
// salt || password || pepper.
type DigestHasher struct{}

// NewDigestHasher creates a new DigestHasher.
func NewDigestHasher() *DigestHasher {
	return &DigestHasher{}
}

// Ensure DigestHasher implements PasswordHasher interface
var _ PasswordHasher = (*DigestHasher)(nil)

// Hash implements the PasswordHasher interface.
func (h *DigestHasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(passwordSalt + password + passwordPepper))
	return hex.EncodeToString(sum[:])
}

// DigestsEqual compares two digests in constant time. Login compares digests
// for equality; the constant-time comparison avoids leaking prefix matches.
func DigestsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
