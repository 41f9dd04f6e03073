// Package auth signs and checks the session cookie of the web surface.
package auth

import (
	"fmt"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session id as the JWT id and the user identifier as
// the subject.
type Claims struct {
	jwt.RegisteredClaims
}

func (c *Claims) SessionID() string  { return c.ID }
func (c *Claims) Identifier() string { return c.Subject }

// GenerateToken returns an HS256 token for the session valid for validityDuration.
func GenerateToken(sessionID, identifier string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   identifier,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString. Every failure, including expiry, wraps
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
