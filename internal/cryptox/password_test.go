package cryptox

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestSHA256Digest_KnownAnswer(t *testing.T) {
	assert.Equal(t, "5b11618c2e44027877d0cd0921ed166b9f176f50587fc91e7534dd2946db77d6", SHA256Digest([]byte("secret1")))
}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	h := Argon2Hasher{}

	enc, err := h.Hash([]byte("secret1"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(enc, "argon2id$"))

	assert.True(t, h.Verify(enc, []byte("secret1")))
	assert.False(t, h.Verify(enc, []byte("secret2")))

	enc2, err := h.Hash([]byte("secret1"))
	require.NoError(t, err)
	assert.NotEqual(t, enc, enc2, "salt must differ between hashes")
}

func TestSHA256Hasher_RoundTrip(t *testing.T) {
	h := SHA256Hasher{}

	enc, err := h.Hash([]byte("secret1"))
	require.NoError(t, err)
	assert.Equal(t, SHA256Digest([]byte("secret1")), enc)

	assert.True(t, h.Verify(enc, []byte("secret1")))
	assert.False(t, h.Verify(enc, []byte("nope")))
}

func TestVerify_AcceptsEitherEncoding(t *testing.T) {
	legacy := SHA256Digest([]byte("secret1"))
	modern, err := Argon2Hasher{}.Hash([]byte("secret1"))
	require.NoError(t, err)

	assert.True(t, Argon2Hasher{}.Verify(legacy, []byte("secret1")))
	assert.True(t, SHA256Hasher{}.Verify(modern, []byte("secret1")))
}

func TestVerify_MalformedEncodings(t *testing.T) {
	h := Argon2Hasher{}
	for _, enc := range []string{
		"",
		"argon2id$",
		"argon2id$zz$00",
		"argon2id$00$zz",
		"argon2id$0011",
		"deadbeef",
	} {
		assert.False(t, h.Verify(enc, []byte("secret1")), "encoding %q", enc)
	}
}

func TestNewPasswordHasher(t *testing.T) {
	h, err := NewPasswordHasher("")
	require.NoError(t, err)
	assert.IsType(t, Argon2Hasher{}, h)

	h, err = NewPasswordHasher("SHA256")
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	_, err = NewPasswordHasher("md5")
	require.Error(t, err)
}
