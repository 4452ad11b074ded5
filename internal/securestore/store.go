package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/securestore/internal/logging"
	"github.com/dmitrijs2005/securestore/internal/vault"
)

// Store is the secure local store. Create it with New; the zero value is not
// usable.
type Store struct {
	vault      vault.Vault
	now        func() time.Time
	log        logging.Logger
	genericTTL time.Duration
	sessionTTL time.Duration
	namespace  string
}

// New returns a Store writing through v.
func New(v vault.Vault, opts ...Option) *Store {
	s := &Store{
		vault:      v,
		now:        time.Now,
		log:        logging.Discard(),
		genericTTL: DefaultGenericTTL,
		sessionTTL: DefaultSessionTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetItem stores value under key inside an integrity envelope stamped with
// the current time, replacing any previous value.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}

	data, err := json.Marshal(newEnvelope(value, s.nowMillis()))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, key, err)
	}

	if err := s.vault.Set(ctx, s.storageKey(key), data); err != nil {
		s.log.Error(ctx, "error storing secure item", "key", key, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, key, err)
	}

	s.log.Debug(ctx, "securely stored item", "key", key)
	return nil
}

// GetItem returns the value stored under key. The second result is false
// when nothing usable is stored: the key is missing, the vault read failed,
// the envelope is malformed or fails an integrity check, or it is older than
// the generic TTL. Except for plain read failures the entry is deleted.
func (s *Store) GetItem(ctx context.Context, key string) (string, bool) {
	if key == "" {
		return "", false
	}

	raw, err := s.vault.Get(ctx, s.storageKey(key))
	if errors.Is(err, vault.ErrIntegrity) {
		s.log.Warn(ctx, "data integrity check failed", "key", key, "error", err)
		s.purge(ctx, key)
		return "", false
	}
	if err != nil {
		s.log.Error(ctx, "error retrieving secure item", "key", key, "error", err)
		return "", false
	}
	if raw == nil {
		return "", false
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		s.log.Warn(ctx, "discarding malformed secure item", "key", key, "error", err)
		s.purge(ctx, key)
		return "", false
	}

	if !env.Valid() {
		s.log.Warn(ctx, "data integrity check failed", "key", key)
		s.purge(ctx, key)
		return "", false
	}

	if s.expired(env.Timestamp, s.genericTTL) {
		s.log.Info(ctx, "stored data expired", "key", key)
		s.purge(ctx, key)
		return "", false
	}

	return env.Value, true
}

// DeleteItem removes key. Deleting a missing key is a no-op; only vault
// failures are returned.
func (s *Store) DeleteItem(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.vault.Delete(ctx, s.storageKey(key)); err != nil {
		s.log.Error(ctx, "error deleting secure item", "key", key, "error", err)
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.log.Debug(ctx, "deleted secure item", "key", key)
	return nil
}

// HasItem reports whether GetItem would return a value, with the same side
// effects.
func (s *Store) HasItem(ctx context.Context, key string) bool {
	_, ok := s.GetItem(ctx, key)
	return ok
}

// purge is DeleteItem for the read path, where failures are only logged.
func (s *Store) purge(ctx context.Context, key string) {
	_ = s.DeleteItem(ctx, key)
}

func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

// expired reports whether a record stamped at ts (epoch millis) is older
// than ttl. Non-positive stamps are always expired.
func (s *Store) expired(ts int64, ttl time.Duration) bool {
	return ts <= 0 || s.nowMillis()-ts > ttl.Milliseconds()
}

func (s *Store) storageKey(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + "." + key
}
