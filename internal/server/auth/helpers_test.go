package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signExpired(username string, secret []byte) (string, error) {
	past := time.Now().Add(-time.Hour)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   username,
		ID:        "fixed",
		IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(past),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
