package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkStore exercises the get/set/remove contract shared by every backend.
func checkStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	for _, key := range Keys {
		_, ok, err := s.Lookup(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	require.NoError(t, s.Put(ctx, KeyToken, "Bearer abc"))
	require.NoError(t, s.Put(ctx, KeyRawToken, "abc"))
	require.NoError(t, s.Put(ctx, KeyFormat, "raw"))

	value, ok, err := s.Lookup(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bearer abc", value)

	require.NoError(t, s.Put(ctx, KeyFormat, "token"))
	value, _, _ = s.Lookup(ctx, KeyFormat)
	assert.Equal(t, "token", value)

	for _, key := range Keys {
		require.NoError(t, s.Remove(ctx, key))
		_, ok, err = s.Lookup(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	require.NoError(t, s.Remove(ctx, KeyToken))
}

func TestMemoryStore(t *testing.T) {
	checkStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	checkStore(t, newFileStore(t, filepath.Join(t.TempDir(), "session.json")))
}

func TestFileStore_Reload(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "session.json")
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "agent", "exp": expiry.Unix()}).SignedString([]byte("secret"))
	require.NoError(t, err)

	s := newFileStore(t, location)
	require.NoError(t, s.Put(ctx, KeyToken, token))
	require.NoError(t, s.Put(ctx, KeyRawToken, token))
	require.NoError(t, s.Put(ctx, KeyFormat, "raw"))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	snap := fileSnapshot{}
	require.NoError(t, json.Unmarshal(data, &snap))
	require.NotNil(t, snap.Token)
	assert.Equal(t, "raw", snap.Token.TokenType)
	assert.True(t, expiry.Equal(snap.Token.Expiry))

	reloaded := newFileStore(t, location)
	for _, key := range []Key{KeyToken, KeyRawToken} {
		value, ok, err := reloaded.Lookup(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, token, value)
	}
	format, _, _ := reloaded.Lookup(ctx, KeyFormat)
	assert.Equal(t, "raw", format)
}

func TestFileStore_Invalid(t *testing.T) {
	location := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(location, []byte("{not json"), 0o600))
	_, err := NewFileStore(context.Background(), location)
	assert.Error(t, err)
}

func newFileStore(t *testing.T, location string) *FileStore {
	t.Helper()
	s, err := NewFileStore(context.Background(), location)
	require.NoError(t, err)
	return s
}

func TestBoltStore(t *testing.T) {
	location := filepath.Join(t.TempDir(), "db", "session.db")
	s, err := NewBoltStore(location)
	require.NoError(t, err)
	checkStore(t, s)

	require.NoError(t, s.Put(context.Background(), KeyFormat, "bearer"))
	require.NoError(t, s.Close())

	reopened, err := NewBoltStore(location)
	require.NoError(t, err)
	defer reopened.Close()
	value, ok, err := reopened.Lookup(context.Background(), KeyFormat)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bearer", value)
}

func TestRedisStore(t *testing.T) {
	server := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer rdb.Close()
	s := NewRedisStore(rdb, "")
	checkStore(t, s)

	require.NoError(t, s.Put(context.Background(), KeyToken, "abc"))
	value, err := server.Get("policyadmin:session:auth_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
}
