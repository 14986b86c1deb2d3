package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the validity of a token when no TTL is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Issuer signs and verifies session tokens. The subject of a token
// is the ID of the user it was issued for.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer returns an Issuer using HS256 with secret.
func NewIssuer(secret string, ttl time.Duration) Issuer {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}

	return Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the user.
func (i Issuer) Issue(user uuid.UUID) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token and returns the user
// it was issued for.
func (i Issuer) Verify(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}

	user, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}

	return user, nil
}
