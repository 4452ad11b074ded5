package securestore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// StoreAppSettings serializes settings as JSON under app_settings.
func (s *Store) StoreAppSettings(ctx context.Context, settings any) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, KeyAppSettings, err)
	}
	return s.SetItem(ctx, KeyAppSettings, string(data))
}

// GetAppSettings decodes the stored settings into out, which must be a
// pointer. It returns false when nothing is stored or decoding fails; a
// decode failure leaves the entry in place since out may simply be the
// wrong shape.
func (s *Store) GetAppSettings(ctx context.Context, out any) bool {
	raw, ok := s.GetItem(ctx, KeyAppSettings)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Warn(ctx, "error decoding app settings", "error", err)
		return false
	}
	return true
}

// SetBiometricEnabled records whether the app should ask for biometric
// confirmation before restoring a session.
func (s *Store) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	return s.SetItem(ctx, KeyBiometricEnabled, strconv.FormatBool(enabled))
}

// BiometricEnabled reports whether biometric confirmation is switched on.
func (s *Store) BiometricEnabled(ctx context.Context) bool {
	v, ok := s.GetItem(ctx, KeyBiometricEnabled)
	return ok && v == "true"
}
