package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// teardownKeys is the fixed set of keys removed on logout. The vault cannot
// enumerate, so anything stored under other keys is left alone.
var teardownKeys = []string{KeyUserSession, KeyPaymentToken, KeyBiometricEnabled, KeyAppSettings}

// ClearAllData removes every well-known key. Each key is attempted
// regardless of earlier failures. When a delete fails, the entry is
// overwritten with an already expired envelope so it still reads as absent;
// only keys that could be neither deleted nor overwritten are reported, as a
// joined error.
func (s *Store) ClearAllData(ctx context.Context) error {
	var errs []error
	for _, key := range teardownKeys {
		err := s.DeleteItem(ctx, key)
		if err == nil {
			continue
		}
		if terr := s.tombstone(ctx, key); terr != nil {
			errs = append(errs, fmt.Errorf("%w (tombstone: %w)", err, terr))
			continue
		}
		s.log.Warn(ctx, "secure item could not be deleted, expired it instead", "key", key)
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		s.log.Error(ctx, "error clearing secure data", "error", err)
		return err
	}

	s.log.Info(ctx, "all secure data cleared")
	return nil
}

// tombstone writes an envelope with a zero timestamp, which every read
// treats as expired.
func (s *Store) tombstone(ctx context.Context, key string) error {
	data, err := json.Marshal(newEnvelope("", 0))
	if err != nil {
		return err
	}
	return s.vault.Set(ctx, s.storageKey(key), data)
}
