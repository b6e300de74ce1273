// Package auth provides the session token codec and the credential hasher.
// Both are keyed or seeded by process-wide constants: a single shared HMAC
// secret for tokens and a fixed salt/pepper pair for password digests.
package auth

import "context"

// Claims is the payload embedded in a session token. The token is
// self-contained: identity is reconstructed from these claims on every
// request with no server-side session storage.
type Claims struct {
	// Username is the authenticated user's identity key.
	Username string
}

// TokenCodec encodes and decodes signed, tamper-evident session tokens.
type TokenCodec interface {
	// Encode produces a signed, self-contained token carrying the claims.
	Encode(ctx context.Context, claims Claims) (string, error)

	// Decode verifies the token's signature and returns the embedded claims.
	// Returns ErrInvalidSession if the signature is invalid, the token is
	// malformed, or it has expired.
	Decode(ctx context.Context, token string) (*Claims, error)
}
