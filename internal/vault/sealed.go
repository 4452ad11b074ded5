package vault

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/securestore/internal/common"
	"github.com/dmitrijs2005/securestore/internal/cryptox"
)

const (
	saltKey     = "__vault.salt"
	verifierKey = "__vault.verifier"
	saltSize    = 32
)

// Sealed encrypts every value with AES-256-GCM before handing it to the
// wrapped vault. The storage key is bound as associated data, so a ciphertext
// copied under a different key fails to open.
type Sealed struct {
	base Vault
	key  []byte
}

// NewSealed wraps base with a caller-provided 32-byte key.
func NewSealed(base Vault, key []byte) (*Sealed, error) {
	if len(key) != cryptox.KeySize {
		return nil, ErrInvalidKeySize
	}
	return &Sealed{base: base, key: append([]byte(nil), key...)}, nil
}

// Unlock derives the data key from passphrase and the salt kept in base.
//
// On first use (no salt, no verifier) a random salt is generated and both the
// salt and a verifier of the derived key are written, atomically when base
// implements BatchSetter. Afterwards the derived key is checked against the
// stored verifier in constant time; a mismatch yields ErrWrongPassphrase.
func Unlock(ctx context.Context, base Vault, passphrase []byte) (*Sealed, error) {
	salt, err := base.Get(ctx, saltKey)
	if err != nil {
		return nil, fmt.Errorf("read vault salt: %w", err)
	}
	verifier, err := base.Get(ctx, verifierKey)
	if err != nil {
		return nil, fmt.Errorf("read vault verifier: %w", err)
	}

	switch {
	case salt == nil && verifier == nil:
		return initialize(ctx, base, passphrase)
	case salt == nil || verifier == nil:
		return nil, ErrCorruptHeader
	}

	key := cryptox.DeriveMasterKey(passphrase, salt)
	if subtle.ConstantTimeCompare(verifier, cryptox.MakeVerifier(key)) == 0 {
		common.WipeByteArray(key)
		return nil, ErrWrongPassphrase
	}
	return &Sealed{base: base, key: key}, nil
}

func initialize(ctx context.Context, base Vault, passphrase []byte) (*Sealed, error) {
	salt := common.GenerateRandByteArray(saltSize)
	key := cryptox.DeriveMasterKey(passphrase, salt)
	verifier := cryptox.MakeVerifier(key)

	if bs, ok := base.(BatchSetter); ok {
		err := bs.SetMany(ctx, map[string][]byte{saltKey: salt, verifierKey: verifier})
		if err != nil {
			return nil, fmt.Errorf("write vault header: %w", err)
		}
		return &Sealed{base: base, key: key}, nil
	}

	if err := base.Set(ctx, saltKey, salt); err != nil {
		return nil, fmt.Errorf("write vault salt: %w", err)
	}
	if err := base.Set(ctx, verifierKey, verifier); err != nil {
		return nil, fmt.Errorf("write vault verifier: %w", err)
	}
	return &Sealed{base: base, key: key}, nil
}

func (s *Sealed) Get(ctx context.Context, key string) ([]byte, error) {
	if isReserved(key) {
		return nil, ErrReservedKey
	}
	raw, err := s.base.Get(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}
	plain, err := cryptox.Open(s.key, raw, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt %s: %w", ErrIntegrity, key, err)
	}
	return plain, nil
}

func (s *Sealed) Set(ctx context.Context, key string, value []byte) error {
	if isReserved(key) {
		return ErrReservedKey
	}
	sealed, err := cryptox.Seal(s.key, value, []byte(key))
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", key, err)
	}
	return s.base.Set(ctx, key, sealed)
}

func (s *Sealed) Delete(ctx context.Context, key string) error {
	if isReserved(key) {
		return ErrReservedKey
	}
	return s.base.Delete(ctx, key)
}

// Close wipes the in-memory data key and closes the wrapped vault when it
// holds resources.
func (s *Sealed) Close() error {
	common.WipeByteArray(s.key)
	if c, ok := s.base.(Closer); ok {
		return c.Close()
	}
	return nil
}

func isReserved(key string) bool {
	return key == saltKey || key == verifierKey
}
