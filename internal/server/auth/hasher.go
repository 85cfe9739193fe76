package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
	"golang.org/x/crypto/argon2"
)

// Hasher turns a plaintext password into a stored digest and checks a
// candidate password against it.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// Hasher names accepted by NewHasher.
const (
	HasherSHA256   = "sha256"
	HasherArgon2id = "argon2id"
)

// NewHasher returns the hasher registered under name.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", HasherSHA256:
		return SHA256Hasher{}, nil
	case HasherArgon2id:
		return NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("unknown hasher %q", name)
	}
}

// SHA256Hasher is an unsalted single round of SHA-256, hex encoded.
// Equal passwords always produce equal digests.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(digest, password string) bool {
	candidate, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(candidate)) == 1
}

// Argon2idHasher salts every password and encodes the result as
//
//	$argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<key_b64>
type Argon2idHasher struct {
	Time       uint32
	MemoryKiB  uint32
	Threads    uint8
	KeyLength  uint32
	SaltLength int
}

// NewArgon2idHasher uses the parameters the vault derives master keys with.
func NewArgon2idHasher() Argon2idHasher {
	return Argon2idHasher{Time: 1, MemoryKiB: 64 * 1024, Threads: 4, KeyLength: 32, SaltLength: 16}
}

func (h Argon2idHasher) Hash(password string) (string, error) {
	salt := common.GenerateRandByteArray(h.SaltLength)
	key := argon2.IDKey([]byte(password), salt, h.Time, h.MemoryKiB, h.Threads, h.KeyLength)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.MemoryKiB, h.Time, h.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

func (h Argon2idHasher) Verify(digest, password string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return false
	}

	var mem, iter uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iter, &par); err != nil {
		return false
	}
	// refuse parameters far above our own to keep verification cheap
	if mem == 0 || iter == 0 || par == 0 || mem > h.MemoryKiB*2 || iter > h.Time*2 || par > h.Threads*2 {
		return false
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := b64.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false
	}

	key := argon2.IDKey([]byte(password), salt, iter, mem, par, uint32(len(expected)))
	defer common.WipeByteArray(key)

	return subtle.ConstantTimeCompare(key, expected) == 1
}
