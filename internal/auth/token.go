package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blackjackd/internal/apperrors"
)

// ErrUnauthorized is returned for any missing, malformed, or expired token.
var ErrUnauthorized = apperrors.New(apperrors.CodeUnauthorized, "missing or invalid authentication token")

// Claims is the JWT payload binding a token to a user.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Tokens issues and verifies HS256-signed bearer tokens.
type Tokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

const defaultTokenTTL = 24 * time.Hour

// NewTokens creates a token issuer with the given signing key and TTL.
func NewTokens(key []byte, ttl time.Duration) (*Tokens, error) {
	if len(key) == 0 {
		return nil, errors.New("signing key is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Tokens{key: key, ttl: ttl, now: time.Now}, nil
}

// TTL reports the lifetime applied to issued tokens.
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token for user, returning the token and its expiry.
func (t *Tokens) Issue(user User) (string, time.Time, error) {
	now := t.now().UTC()
	expiresAt := now.Add(t.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID.String(),
		Email:  user.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a bearer token, returning its claims.
func (t *Tokens) Verify(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrUnauthorized
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Claims{}, apperrors.Wrap(apperrors.CodeUnauthorized, "missing or invalid authentication token", err)
	}
	if claims.UserID == "" || claims.Email == "" {
		return Claims{}, ErrUnauthorized
	}
	return claims, nil
}
