package securestore

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"time"

	"github.com/dmitrijs2005/securestore/internal/cryptox"
)

const (
	KeyUserSession      = "user_session"
	KeyPaymentToken     = "payment_token"
	KeyBiometricEnabled = "biometric_enabled"
	KeyAppSettings      = "app_settings"
)

const (
	fieldLoginTime = "loginTime"
	fieldSessionID = "sessionId"
	fieldUserID    = "id"
)

// UserSession is the cached login state. Profile carries whatever the
// backend returned for the user; it is persisted flat next to loginTime and
// sessionId.
type UserSession struct {
	Profile   map[string]any
	LoginTime int64
	SessionID string
}

// UserID returns the profile's "id" field as a string, or "" if unset.
func (u *UserSession) UserID() string {
	return identity(u.Profile)
}

// LoginAt returns LoginTime as a time.Time.
func (u *UserSession) LoginAt() time.Time {
	return time.UnixMilli(u.LoginTime)
}

func (u UserSession) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Profile)+2)
	maps.Copy(m, u.Profile)
	m[fieldLoginTime] = u.LoginTime
	m[fieldSessionID] = u.SessionID
	return json.Marshal(m)
}

func (u *UserSession) UnmarshalJSON(b []byte) error {
	var head struct {
		LoginTime *int64 `json:"loginTime"`
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return fmt.Errorf("%w: %w", errMalformedSession, err)
	}
	if head.LoginTime == nil {
		return fmt.Errorf("%w: missing %s", errMalformedSession, fieldLoginTime)
	}

	var profile map[string]any
	if err := json.Unmarshal(b, &profile); err != nil {
		return fmt.Errorf("%w: %w", errMalformedSession, err)
	}
	delete(profile, fieldLoginTime)
	delete(profile, fieldSessionID)

	u.Profile = profile
	u.LoginTime = *head.LoginTime
	u.SessionID = head.SessionID
	return nil
}

// StoreUserSession records a new login. The profile is copied and stamped
// with loginTime = now and sessionId = sha256hex(id + ":" + loginTime),
// overriding any such fields supplied by the caller.
func (s *Store) StoreUserSession(ctx context.Context, profile map[string]any) (*UserSession, error) {
	now := s.nowMillis()

	cp := make(map[string]any, len(profile))
	maps.Copy(cp, profile)
	delete(cp, fieldLoginTime)
	delete(cp, fieldSessionID)

	sess := &UserSession{
		Profile:   cp,
		LoginTime: now,
		SessionID: cryptox.Digest(identity(cp) + ":" + strconv.FormatInt(now, 10)),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWriteFailed, KeyUserSession, err)
	}
	if err := s.SetItem(ctx, KeyUserSession, string(data)); err != nil {
		return nil, err
	}
	return sess, nil
}

// GetUserSession returns the current session, or false when there is none.
// A session older than the session TTL, or one that cannot be decoded, is
// deleted.
func (s *Store) GetUserSession(ctx context.Context) (*UserSession, bool) {
	raw, ok := s.GetItem(ctx, KeyUserSession)
	if !ok {
		return nil, false
	}

	var sess UserSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.log.Warn(ctx, "discarding malformed user session", "error", err)
		s.purge(ctx, KeyUserSession)
		return nil, false
	}

	if s.expired(sess.LoginTime, s.sessionTTL) {
		s.log.Info(ctx, "user session expired")
		s.purge(ctx, KeyUserSession)
		return nil, false
	}

	return &sess, true
}

// ClearUserSession deletes the stored session.
func (s *Store) ClearUserSession(ctx context.Context) error {
	return s.DeleteItem(ctx, KeyUserSession)
}

func identity(profile map[string]any) string {
	v, ok := profile[fieldUserID]
	if !ok || v == nil {
		return ""
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprint(v)
}
