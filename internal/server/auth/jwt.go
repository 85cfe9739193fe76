// Package auth holds the credential primitives of the vault: password
// hashers and session token generators.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session owner in Subject and a random token id in ID.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for username. A non-positive validity
// produces a token without an exp claim.
func GenerateToken(username string, secretKey []byte, validity time.Duration) (string, error) {
	jti, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			ID:       jti,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// GetUsernameFromToken verifies the signature and expiry of tokenString and
// returns its subject.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
