package redisvault

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestVault connects to the Redis instance named by
// SECURESTORE_TEST_REDIS_ADDR and isolates the test under a random prefix.
func newTestVault(t *testing.T) *Vault {
	t.Helper()
	addr := os.Getenv("SECURESTORE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SECURESTORE_TEST_REDIS_ADDR not set")
	}
	v, err := Dial(context.Background(), addr, "", 0, "securestore-test:"+uuid.NewString()+":")
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })
	return v
}

func TestNew_DefaultPrefix(t *testing.T) {
	v := New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), "")
	defer v.Close()

	assert.Equal(t, "securestore:user_session", v.key("user_session"))
}

func TestVault_SetGetDelete(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()

	got, err := v.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, v.Set(ctx, "payment_token", []byte("tok")))
	got, err = v.Get(ctx, "payment_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok"), got)

	require.NoError(t, v.Delete(ctx, "payment_token"))
	require.NoError(t, v.Delete(ctx, "payment_token"))

	got, err = v.Get(ctx, "payment_token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVault_SetMany(t *testing.T) {
	v := newTestVault(t)
	ctx := context.Background()

	require.NoError(t, v.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))

	a, err := v.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), a)
	require.NoError(t, v.Delete(ctx, "a"))
	require.NoError(t, v.Delete(ctx, "b"))
}
