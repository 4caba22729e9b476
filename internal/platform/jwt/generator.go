// Package jwtauth issues and verifies the signed auth tokens delivered
// through the `token` cookie.
package jwtauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed token.
const CookieName = "token"

// TokenTTL is the lifetime of an issued token.
const TokenTTL = 24 * time.Hour

// Generator defines the interface for auth token generation.
type Generator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID, role string) (string, error)
}

type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a token generator with the provided secret and expiration.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{secret: []byte(secret), expiration: expiration}
}

// GenerateToken creates a signed HS256 token with standard claims.
// The jti claim identifies the token for later revocation.
func (g *generator) GenerateToken(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(g.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Claims is the decoded subset of a verified token used by the middleware
// and by logout.
type Claims struct {
	UserID    string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// ParseToken verifies the signature and expiry of a token string and
// returns its decoded claims. Only HMAC-signed tokens are accepted.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	out := &Claims{}
	if sub, ok := claims["sub"].(string); ok {
		out.UserID = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if jti, ok := claims["jti"].(string); ok {
		out.TokenID = jti
	}
	if exp, ok := claims["exp"].(float64); ok { // JWT numbers decode as float64
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if out.UserID == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return out, nil
}
