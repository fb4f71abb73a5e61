// Package jwt signs and verifies the portal's session cookie. The
// cookie carries nothing but a session ID; all session data lives in
// the session store. This is unrelated to the backend bearer token,
// which the portal never inspects.
package jwt

import (
	"errors"
	"time"

	"clinic-portal/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

type CookieSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewCookieSigner(cfg config.SessionConfig) *CookieSigner {
	return &CookieSigner{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// Sign wraps a session ID in a signed cookie value.
func (s *CookieSigner) Sign(sessionID string) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the session ID carried by a cookie value, or
// ErrInvalidCookie for anything tampered with, expired, or malformed.
func (s *CookieSigner) Verify(cookieValue string) (string, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidCookie
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidCookie
	}

	return claims.SessionID, nil
}

func (s *CookieSigner) TTL() time.Duration {
	return s.ttl
}
