package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// TokenGenerator mints session tokens. Validate performs the checks that
// can be done on the token alone; registry membership is checked elsewhere.
type TokenGenerator interface {
	Generate(username string) (string, error)
	Validate(token, username string) error
}

// Token formats accepted by NewTokenGenerator.
const (
	TokenFormatOpaque = "opaque"
	TokenFormatJWT    = "jwt"
)

// opaqueTokenBytes matches the 32 random bytes the vault has always issued.
const opaqueTokenBytes = 32

// NewTokenGenerator returns the generator for format.
func NewTokenGenerator(format string, secretKey []byte, validity time.Duration) (TokenGenerator, error) {
	switch strings.ToLower(format) {
	case "", TokenFormatOpaque:
		return OpaqueTokenGenerator{}, nil
	case TokenFormatJWT:
		if len(secretKey) == 0 {
			return nil, fmt.Errorf("jwt tokens need a secret key")
		}
		return &JWTTokenGenerator{secretKey: secretKey, validity: validity}, nil
	default:
		return nil, fmt.Errorf("unknown token format %q", format)
	}
}

// OpaqueTokenGenerator issues random hex strings.
type OpaqueTokenGenerator struct{}

func (OpaqueTokenGenerator) Generate(string) (string, error) {
	return common.MakeRandHexString(opaqueTokenBytes)
}

func (OpaqueTokenGenerator) Validate(token, _ string) error {
	if token == "" {
		return common.ErrInvalidToken
	}
	return nil
}

// JWTTokenGenerator issues signed JWTs whose subject is the session owner.
type JWTTokenGenerator struct {
	secretKey []byte
	validity  time.Duration
}

// NewJWTTokenGenerator builds a generator signing with secretKey.
func NewJWTTokenGenerator(secretKey []byte, validity time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{secretKey: secretKey, validity: validity}
}

func (g *JWTTokenGenerator) Generate(username string) (string, error) {
	return GenerateToken(username, g.secretKey, g.validity)
}

func (g *JWTTokenGenerator) Validate(token, username string) error {
	subject, err := GetUsernameFromToken(token, g.secretKey)
	if err != nil {
		return err
	}
	if subject != username {
		return common.ErrInvalidToken
	}
	return nil
}
