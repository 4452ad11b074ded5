// Package cryptox collects the cryptographic primitives used by the secure
// store: value digests for the integrity envelope, passphrase based key
// derivation, and AES-GCM sealing for encryption at rest.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/argon2"
)

// KeySize is the length of keys produced by DeriveMasterKey and accepted by
// Seal and Open (AES-256).
const KeySize = 32

const nonceSize = 12

// ErrCiphertextTooShort is returned by Open when the input cannot even hold
// a nonce.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// Digest returns the lowercase hex SHA-256 of s.
func Digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// MakeVerifier returns a SHA-256 fingerprint of masterKey that can be kept
// next to the salt to check a passphrase without storing the key itself.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// DeriveMasterKey derives a KeySize-byte key from password and salt with
// argon2id (1 pass, 64 MiB, 4 lanes).
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// Seal encrypts plaintext with AES-GCM under key and authenticates aad
// alongside it. A fresh random 12-byte nonce is generated per call and
// prepended to the returned ciphertext.
//
// The key must be 16, 24 or 32 bytes long.
func Seal(key, plaintext, aad []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	out := make([]byte, 0, nonceSize+len(plaintext)+aesgcm.Overhead())
	out = append(out, nonce...)
	return aesgcm.Seal(out, nonce, plaintext, aad), nil
}

// Open reverses Seal. It fails if the key or aad differ from the ones used
// for sealing, or if the ciphertext was modified.
func Open(key, sealed, aad []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	return aesgcm.Open(nil, nonce, ciphertext, aad)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
