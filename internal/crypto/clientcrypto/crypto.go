// Package clientcrypto seals small client-side secrets, such as stored refresh
// tokens, under a user passphrase.
//
// Sealed layout: version(1) || salt(16) || nonce(24) || ciphertext+tag.
// The AEAD key is HKDF-SHA256 over an Argon2id key of the passphrase.
package clientcrypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Params
const (
	KeyLen  = 32
	SaltLen = 16

	sealVersion byte = 1

	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 1
)

var hkdfInfo = []byte("im-relay token store v1")

// ErrSealed is returned when a sealed blob cannot be opened.
var ErrSealed = errors.New("sealed data is malformed or the passphrase is wrong")

func Rand(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// DeriveKEK derives a key-encryption key from passphrase and salt using Argon2id.
func DeriveKEK(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, KeyLen)
}

func sealKey(passphrase, salt []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, DeriveKEK(passphrase, salt), salt, hkdfInfo)
	key := make([]byte, KeyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Seal encrypts plaintext under passphrase. aad is authenticated but not stored.
func Seal(passphrase, plaintext, aad []byte) ([]byte, error) {
	salt, err := Rand(SaltLen)
	if err != nil {
		return nil, err
	}
	key, err := sealKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce, err := Rand(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+SaltLen+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, sealVersion)
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, aad), nil
}

// Open decrypts a blob produced by Seal with the same passphrase and aad.
func Open(passphrase, sealed, aad []byte) ([]byte, error) {
	const header = 1 + SaltLen + chacha20poly1305.NonceSizeX
	if len(sealed) < header || sealed[0] != sealVersion {
		return nil, ErrSealed
	}
	salt := sealed[1 : 1+SaltLen]
	nonce := sealed[1+SaltLen : header]
	key, err := sealKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce, sealed[header:], aad)
	if err != nil {
		return nil, ErrSealed
	}
	return pt, nil
}

// IsSealed reports whether b looks like a Seal output.
func IsSealed(b []byte) bool {
	return len(b) > 1+SaltLen+chacha20poly1305.NonceSizeX && b[0] == sealVersion
}
