// Package cryptox isolates credential hashing behind PasswordHasher so the
// scheme can be swapped without touching the stores.
//
// Two schemes are supported:
//
//	argon2id  salted argon2id KDF, encoded "argon2id$<salt-hex>$<key-hex>"
//	sha256    unsalted hex SHA-256 digest, kept for existing user files
//
// Verify recognises both encodings whatever scheme new hashes use.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SchemeArgon2ID = "argon2id"
	SchemeSHA256   = "sha256"

	saltSize = 16
)

// PasswordHasher turns a secret into a storable string and checks a secret
// against a stored string.
type PasswordHasher interface {
	Hash(secret []byte) (string, error)
	Verify(encoded string, secret []byte) bool
}

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// SHA256Digest returns the hex SHA-256 of secret.
func SHA256Digest(secret []byte) string {
	sum := sha256.Sum256(secret)
	return hex.EncodeToString(sum[:])
}

// NewPasswordHasher returns the hasher for scheme. An empty scheme means argon2id.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeArgon2ID:
		return Argon2Hasher{}, nil
	case SchemeSHA256:
		return SHA256Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

type Argon2Hasher struct{}

func (Argon2Hasher) Hash(secret []byte) (string, error) {
	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveKey(secret, salt)
	return SchemeArgon2ID + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

func (Argon2Hasher) Verify(encoded string, secret []byte) bool {
	return verify(encoded, secret)
}

type SHA256Hasher struct{}

func (SHA256Hasher) Hash(secret []byte) (string, error) {
	return SHA256Digest(secret), nil
}

func (SHA256Hasher) Verify(encoded string, secret []byte) bool {
	return verify(encoded, secret)
}

func verify(encoded string, secret []byte) bool {
	if rest, ok := strings.CutPrefix(encoded, SchemeArgon2ID+"$"); ok {
		saltHex, keyHex, ok := strings.Cut(rest, "$")
		if !ok {
			return false
		}
		salt, err := hex.DecodeString(saltHex)
		if err != nil {
			return false
		}
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return false
		}
		return subtle.ConstantTimeCompare(key, DeriveKey(secret, salt)) == 1
	}

	if len(encoded) != sha256.Size*2 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(encoded)), []byte(SHA256Digest(secret))) == 1
}
