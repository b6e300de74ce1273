package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
)

// hmacTokenCodec implements TokenCodec using HMAC-SHA256 signed JWTs.
type hmacTokenCodec struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
}

// sessionClaims defines the JWT claims layout for session tokens.
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenCodec implements TokenCodec interface
var _ TokenCodec = (*hmacTokenCodec)(nil)

// NewTokenCodec creates a session token codec using HMAC-SHA256 signing with
// the process-wide shared secret from the auth configuration.
func NewTokenCodec(cfg config.AuthConfig) (TokenCodec, error) {
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}

	return &hmacTokenCodec{
		signingKey:    []byte(cfg.SessionSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
	}, nil
}

// NewTokenCodecWithTime creates a codec with an injected clock. Used by tests
// to exercise expiry deterministically.
func NewTokenCodecWithTime(
	cfg config.AuthConfig,
	timeFunc func() time.Time,
) (TokenCodec, error) {
	codec, err := NewTokenCodec(cfg)
	if err != nil {
		return nil, err
	}
	codec.(*hmacTokenCodec).timeFunc = timeFunc
	return codec, nil
}

// Encode creates a signed session token embedding the claims plus issue and
// expiry timestamps. Every authenticated response re-encodes, so the validity
// window slides with use.
func (c *hmacTokenCodec) Encode(ctx context.Context, claims Claims) (string, error) {
	log := logger.FromContext(ctx)
	now := c.timeFunc()

	tokenClaims := sessionClaims{
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)
	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"username", claims.Username,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Decode verifies the token signature and expiry and extracts the claims.
// Every failure collapses into ErrInvalidSession: callers must not be able
// to tell a forged token from an expired one.
func (c *hmacTokenCodec) Decode(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := c.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return c.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		log.Debug("session token validation failed",
			"error", err)
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		log.Debug("session token validation failed: invalid claims")
		return nil, ErrInvalidSession
	}

	return &Claims{Username: claims.Username}, nil
}
