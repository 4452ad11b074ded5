package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/dmitrijs2005/securestore/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUserSession_AugmentsProfile(t *testing.T) {
	s, fv, _ := setupStore(t)
	ctx := context.Background()

	profile := map[string]any{"id": "u-42", "email": "jane@example.com", "name": "Jane"}
	sess, err := s.StoreUserSession(ctx, profile)
	require.NoError(t, err)

	assert.Equal(t, epoch.UnixMilli(), sess.LoginTime)
	want := cryptox.Digest("u-42:" + strconv.FormatInt(epoch.UnixMilli(), 10))
	assert.Equal(t, want, sess.SessionID)
	assert.Equal(t, "u-42", sess.UserID())
	assert.True(t, epoch.Equal(sess.LoginAt()))
	assert.NotContains(t, profile, "loginTime", "caller's map is not modified")

	env, err := decodeEnvelope(fv.raw(t, KeyUserSession))
	require.NoError(t, err)
	var flat map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.Value), &flat))
	assert.Equal(t, "jane@example.com", flat["email"])
	assert.Equal(t, float64(epoch.UnixMilli()), flat["loginTime"])
	assert.Equal(t, want, flat["sessionId"])
}

func TestStoreUserSession_OverridesCallerBookkeeping(t *testing.T) {
	s, _, _ := setupStore(t)

	sess, err := s.StoreUserSession(context.Background(), map[string]any{
		"id": "u1", "loginTime": 1, "sessionId": "forged",
	})
	require.NoError(t, err)
	assert.Equal(t, epoch.UnixMilli(), sess.LoginTime)
	assert.NotEqual(t, "forged", sess.SessionID)
	assert.NotContains(t, sess.Profile, "loginTime")
}

func TestGetUserSession_RoundTrip(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	stored, err := s.StoreUserSession(ctx, map[string]any{"id": float64(7), "roles": []any{"customer"}})
	require.NoError(t, err)

	got, ok := s.GetUserSession(ctx)
	require.True(t, ok)
	assert.Equal(t, stored.SessionID, got.SessionID)
	assert.Equal(t, stored.LoginTime, got.LoginTime)
	assert.Equal(t, "7", got.UserID())
	assert.Equal(t, []any{"customer"}, got.Profile["roles"])
}

func TestGetUserSession_ExpirationBoundary(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		present bool
	}{
		{name: "23h59m", elapsed: 23*time.Hour + 59*time.Minute, present: true},
		{name: "exactly 24h", elapsed: 24 * time.Hour, present: true},
		{name: "24h and 1ms", elapsed: 24*time.Hour + time.Millisecond, present: false},
		{name: "two days", elapsed: 48 * time.Hour, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fv, clock := setupStore(t)
			ctx := context.Background()

			_, err := s.StoreUserSession(ctx, map[string]any{"id": "u1"})
			require.NoError(t, err)

			clock.Advance(tt.elapsed)

			_, ok := s.GetUserSession(ctx)
			assert.Equal(t, tt.present, ok)
			if !tt.present {
				assert.Nil(t, fv.raw(t, KeyUserSession), "expired session must be deleted")
			}
		})
	}
}

func TestGetUserSession_LoginTimeFromRecord(t *testing.T) {
	s, fv, _ := setupStore(t)

	// A freshly written envelope whose session record is a day and a
	// millisecond old: only the session TTL can reject it.
	loginTime := epoch.Add(-24*time.Hour - time.Millisecond).UnixMilli()
	record := `{"id":"u1","loginTime":` + strconv.FormatInt(loginTime, 10) + `,"sessionId":"x"}`
	fv.putEnvelope(t, KeyUserSession, newEnvelope(record, epoch.UnixMilli()))

	_, ok := s.GetUserSession(context.Background())
	assert.False(t, ok)
	assert.Nil(t, fv.raw(t, KeyUserSession))
}

func TestGetUserSession_NonPositiveLoginTimeIsExpired(t *testing.T) {
	for _, lt := range []string{"0", "-1", "-9223372036854775808"} {
		t.Run(lt, func(t *testing.T) {
			s, fv, _ := setupStore(t)
			record := `{"id":"u1","loginTime":` + lt + `,"sessionId":"x"}`
			fv.putEnvelope(t, KeyUserSession, newEnvelope(record, epoch.UnixMilli()))

			_, ok := s.GetUserSession(context.Background())
			assert.False(t, ok)
			assert.Nil(t, fv.raw(t, KeyUserSession))
		})
	}
}

func TestGetUserSession_SessionTTLBindsBeforeGenericTTL(t *testing.T) {
	s, _, clock := setupStore(t)
	ctx := context.Background()

	_, err := s.StoreUserSession(ctx, map[string]any{"id": "u1"})
	require.NoError(t, err)
	clock.Advance(25 * time.Hour)

	_, ok := s.GetItem(ctx, KeyUserSession)
	assert.True(t, ok, "generic TTL still accepts the envelope")

	_, ok = s.GetUserSession(ctx)
	assert.False(t, ok, "session TTL rejects it")
}

func TestGetUserSession_GenericTTLBindsWhenShorter(t *testing.T) {
	s, _, clock := setupStore(t, WithGenericTTL(time.Hour))
	ctx := context.Background()

	_, err := s.StoreUserSession(ctx, map[string]any{"id": "u1"})
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)

	_, ok := s.GetUserSession(ctx)
	assert.False(t, ok)
}

func TestGetUserSession_MalformedRecordIsPurged(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "not json", record: "definitely not json"},
		{name: "missing loginTime", record: `{"id":"u1","sessionId":"x"}`},
		{name: "string loginTime", record: `{"id":"u1","loginTime":"yesterday"}`},
		{name: "null", record: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fv, _ := setupStore(t)
			fv.putEnvelope(t, KeyUserSession, newEnvelope(tt.record, epoch.UnixMilli()))

			_, ok := s.GetUserSession(context.Background())
			assert.False(t, ok)
			assert.Nil(t, fv.raw(t, KeyUserSession))
		})
	}
}

func TestSessionID_Uniqueness(t *testing.T) {
	s, _, clock := setupStore(t)
	ctx := context.Background()

	a, err := s.StoreUserSession(ctx, map[string]any{"id": "u1"})
	require.NoError(t, err)
	clock.Advance(time.Millisecond)
	b, err := s.StoreUserSession(ctx, map[string]any{"id": "u1"})
	require.NoError(t, err)
	assert.NotEqual(t, a.SessionID, b.SessionID, "one millisecond apart")

	c, err := s.StoreUserSession(ctx, map[string]any{"id": "u2"})
	require.NoError(t, err)
	assert.NotEqual(t, b.SessionID, c.SessionID, "same instant, different ids")
}

func TestStoreUserSession_WriteFailure(t *testing.T) {
	s, fv, _ := setupStore(t)
	fv.setErr[KeyUserSession] = errors.New("denied")

	sess, err := s.StoreUserSession(context.Background(), map[string]any{"id": "u1"})
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, ErrWriteFailed)

	_, ok := s.GetUserSession(context.Background())
	assert.False(t, ok)
}

func TestStoreUserSession_UnencodableProfile(t *testing.T) {
	s, _, _ := setupStore(t)

	_, err := s.StoreUserSession(context.Background(), map[string]any{"id": "u1", "cb": func() {}})
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestClearUserSession(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	_, err := s.StoreUserSession(ctx, map[string]any{"id": "u1"})
	require.NoError(t, err)
	require.NoError(t, s.ClearUserSession(ctx))
	require.NoError(t, s.ClearUserSession(ctx))

	_, ok := s.GetUserSession(ctx)
	assert.False(t, ok)
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, "", identity(nil))
	assert.Equal(t, "", identity(map[string]any{"id": nil}))
	assert.Equal(t, "abc", identity(map[string]any{"id": "abc"}))
	assert.Equal(t, "12", identity(map[string]any{"id": 12}))
	assert.Equal(t, "12", identity(map[string]any{"id": float64(12)}))
}
