package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"unicode"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalText(rdr("\n"), "Site", &out)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetOptionalText(rdr("Gmail\n"), "Site", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Gmail", *got)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.Equal(t, "Password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out, "Password")
	assert.Error(t, err)
}

func TestGeneratePassword(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, pw, generatedLength)

		var lower, upper, digit, symbol bool
		for _, r := range pw {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			default:
				assert.True(t, strings.ContainsRune(symbolChars, r), "unexpected char %q", r)
				symbol = true
			}
		}
		assert.True(t, lower && upper && digit && symbol, "missing a character class in %q", pw)
		seen[pw] = struct{}{}
	}
	assert.Len(t, seen, 50)
}
