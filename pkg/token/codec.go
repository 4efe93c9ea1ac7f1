// Package token signs and verifies the compact bearer credentials issued
// at login. Tokens are self-contained: subject, role claim, issued-at and
// expiry, HMAC-signed with a process-wide key.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed structure,
// signature mismatch, and expiry. Callers degrade to anonymous on it.
var ErrInvalidToken = errors.New("invalid token")

// MinKeyLength is the minimum accepted HMAC key size in bytes.
const MinKeyLength = 32

// Claims is the signed payload: the account identifier rides in the
// registered subject, the role in a private claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies tokens with a single HS256 key loaded once at
// startup. A Codec is immutable and safe for concurrent use.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec validates the key material and validity duration.
func NewCodec(key []byte, ttl time.Duration) (*Codec, error) {
	if len(key) == 0 {
		return nil, errors.New("signing key is required")
	}
	if len(key) < MinKeyLength {
		return nil, fmt.Errorf("signing key too short: %d bytes, need %d", len(key), MinKeyLength)
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &Codec{key: key, ttl: ttl, now: time.Now}, nil
}

// TTL returns the configured validity duration.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token asserting accountID with the given role, valid from
// now until now plus the configured duration.
func (c *Codec) Issue(accountID, role string) (string, error) {
	now := c.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks structure, signature and expiry, and returns the embedded
// claims. Every failure mode collapses into ErrInvalidToken; the codec
// never distinguishes a forged token from an expired one for callers.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
