// Package jwtmw provides JWT issuance, verification and the gin
// authentication middleware.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager issues and verifies HS256-signed access and refresh tokens.
// Both token kinds carry the same claims; only the expiry differs.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a new Manager with the provided secret and the
// lifetimes for access and refresh tokens.
func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken creates a signed short-lived token for the given user.
func (m *Manager) IssueAccessToken(userID uint, email string) (string, error) {
	return m.issue(userID, email, m.accessTTL)
}

// IssueRefreshToken creates a signed long-lived token for the given user.
func (m *Manager) IssueRefreshToken(userID uint, email string) (string, error) {
	return m.issue(userID, email, m.refreshTTL)
}

// issue creates a signed JWT with standard claims.
func (m *Manager) issue(userID uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses a token, validates its signature and expiry, and
// returns the subject and email claims.
func (m *Manager) VerifyToken(tokenStr string) (uint, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("unexpected claims type")
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, "", errors.New("missing sub claim")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return 0, "", errors.New("missing email claim")
	}
	return uint(sub), email, nil
}

// TimeToExpiry reads the exp claim without verifying the signature and
// returns the remaining lifetime. It returns 0 when the claim cannot be
// read, and a negative duration when the token has already expired.
func (m *Manager) TimeToExpiry(tokenStr string) time.Duration {
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return 0
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return time.Until(exp.Time)
}
