package session_test

import (
	"context"
	"testing"
	"time"

	"pospenjualan/internal/model"
	"pospenjualan/internal/session"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRedis is an in-memory stand-in for the slice of go-redis the store uses.
type memRedis struct {
	data map[string]string
}

func newMemRedis() *memRedis { return &memRedis{data: make(map[string]string)} }

func (m *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func testUser() *model.User {
	return &model.User{ID: uuid.New(), Username: "kasir1", Name: "Kasir Satu", Level: model.RoleKasir}
}

func TestSessionRoundtrip(t *testing.T) {
	rdb := newMemRedis()
	store := session.NewStore(rdb, 30*time.Minute, 5*time.Minute)

	created, err := store.Create(context.Background(), testUser())
	require.NoError(t, err)
	require.NotEmpty(t, created.Token)
	require.NotEmpty(t, created.CartID)
	assert.NotEqual(t, created.Token, created.CartID)

	got, err := store.Get(context.Background(), created.Token)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, got.UserID)
	assert.Equal(t, created.Username, got.Username)
	assert.Equal(t, created.CartID, got.CartID)
	assert.Equal(t, model.RoleKasir, got.Level)
}

func TestSessionGetUnknownToken(t *testing.T) {
	store := session.NewStore(newMemRedis(), 30*time.Minute, 5*time.Minute)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionRotate(t *testing.T) {
	rdb := newMemRedis()
	store := session.NewStore(rdb, 30*time.Minute, 5*time.Minute)

	sess, err := store.Create(context.Background(), testUser())
	require.NoError(t, err)
	oldToken := sess.Token

	// Fresh session: the rotation interval has not elapsed yet.
	rotated, err := store.Rotate(context.Background(), sess)
	require.NoError(t, err)
	assert.False(t, rotated)
	assert.Equal(t, oldToken, sess.Token)

	// Backdate the last rotation past the interval.
	sess.LastRotation = time.Now().Add(-6 * time.Minute)
	rotated, err = store.Rotate(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, rotated)
	assert.NotEqual(t, oldToken, sess.Token)

	// Old token is dead, new token resolves, cart id survives.
	_, err = store.Get(context.Background(), oldToken)
	assert.ErrorIs(t, err, session.ErrNotFound)
	got, err := store.Get(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.CartID, got.CartID)
}

func TestSessionTouch(t *testing.T) {
	rdb := newMemRedis()
	store := session.NewStore(rdb, 30*time.Minute, 5*time.Minute)

	sess, err := store.Create(context.Background(), testUser())
	require.NoError(t, err)
	before := sess.LastActivity

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, store.Touch(context.Background(), sess))
	assert.True(t, sess.LastActivity.After(before))
}

func TestSessionDestroyIdempotent(t *testing.T) {
	rdb := newMemRedis()
	store := session.NewStore(rdb, 30*time.Minute, 5*time.Minute)

	sess, err := store.Create(context.Background(), testUser())
	require.NoError(t, err)

	require.NoError(t, store.Destroy(context.Background(), sess.Token))
	_, err = store.Get(context.Background(), sess.Token)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Destroying again is a no-op.
	assert.NoError(t, store.Destroy(context.Background(), sess.Token))
}
