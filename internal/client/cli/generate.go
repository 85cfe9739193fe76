package cli

import (
	"crypto/rand"
	"math/big"
)

const (
	generatedLength = 16

	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	allChars    = lowerChars + upperChars + digitChars + symbolChars
)

// generateAnswer typed at a password prompt asks for a generated password.
const generateAnswer = "gen"

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// GeneratePassword returns a 16 character password drawn from crypto/rand
// with at least one lowercase letter, uppercase letter, digit and symbol.
func GeneratePassword() (string, error) {
	buf := make([]byte, 0, generatedLength)
	for _, set := range []string{lowerChars, upperChars, digitChars, symbolChars} {
		i, err := randIndex(len(set))
		if err != nil {
			return "", err
		}
		buf = append(buf, set[i])
	}
	for len(buf) < generatedLength {
		i, err := randIndex(len(allChars))
		if err != nil {
			return "", err
		}
		buf = append(buf, allChars[i])
	}

	// Fisher-Yates, so the guaranteed classes are not always up front.
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}
