package mocks

import (
	"context"

	"github.com/taskwell/taskwell-api/internal/service/auth"
)

// MockTokenCodec implements auth.TokenCodec for testing. The default
// implementation uses a trivially reversible encoding so middleware tests can
// inspect tokens without real signing.
type MockTokenCodec struct {
	EncodeFn func(ctx context.Context, claims auth.Claims) (string, error)
	DecodeFn func(ctx context.Context, token string) (*auth.Claims, error)
}

// Ensure MockTokenCodec implements auth.TokenCodec interface
var _ auth.TokenCodec = (*MockTokenCodec)(nil)

const mockTokenPrefix = "token-for:"

// Encode implements the TokenCodec interface.
func (m *MockTokenCodec) Encode(ctx context.Context, claims auth.Claims) (string, error) {
	if m.EncodeFn != nil {
		return m.EncodeFn(ctx, claims)
	}
	return mockTokenPrefix + claims.Username, nil
}

// Decode implements the TokenCodec interface.
func (m *MockTokenCodec) Decode(ctx context.Context, token string) (*auth.Claims, error) {
	if m.DecodeFn != nil {
		return m.DecodeFn(ctx, token)
	}
	if len(token) <= len(mockTokenPrefix) || token[:len(mockTokenPrefix)] != mockTokenPrefix {
		return nil, auth.ErrInvalidSession
	}
	return &auth.Claims{Username: token[len(mockTokenPrefix):]}, nil
}
