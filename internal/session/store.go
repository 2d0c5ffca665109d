// Package session keeps server-side sessions in Redis. The value under
// "sess:<token>" is the JSON-encoded model.Session; the key TTL doubles as
// the inactivity timeout, so an idle session simply disappears.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"pospenjualan/internal/model"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned for a missing or expired session token.
var ErrNotFound = errors.New("session not found or expired")

const keyPrefix = "sess:"

// commands is the slice of the go-redis API the store needs; *redis.Client
// satisfies it, and tests provide an in-memory implementation.
type commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store manages session lifecycle: create at login, touch on every request,
// rotate the identifier periodically, destroy at logout.
type Store struct {
	rdb     commands
	timeout time.Duration
	rotate  time.Duration
}

func NewStore(rdb commands, timeout, rotate time.Duration) *Store {
	return &Store{rdb: rdb, timeout: timeout, rotate: rotate}
}

func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failing means the process cannot run safely
	}
	return hex.EncodeToString(b)
}

// Create opens a fresh session for a verified user.
func (s *Store) Create(ctx context.Context, user *model.User) (*model.Session, error) {
	now := time.Now().UTC()
	sess := &model.Session{
		Token:        newToken(),
		CartID:       newToken(),
		UserID:       user.ID,
		Username:     user.Username,
		Name:         user.Name,
		Level:        user.Level,
		LoginAt:      now,
		LastActivity: now,
		LastRotation: now,
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads the session for a token. Missing or expired keys report
// ErrNotFound, never a raw redis error.
func (s *Store) Get(ctx context.Context, token string) (*model.Session, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	sess := &model.Session{}
	if err := json.Unmarshal(raw, sess); err != nil {
		return nil, ErrNotFound
	}
	sess.Token = token
	return sess, nil
}

// Touch records activity and renews the inactivity TTL.
func (s *Store) Touch(ctx context.Context, sess *model.Session) error {
	sess.LastActivity = time.Now().UTC()
	return s.save(ctx, sess)
}

// Rotate issues a new session identifier when the rotation interval has
// elapsed, writing the new key before deleting the old one. Reports whether
// the token changed so the caller can re-set the cookie.
func (s *Store) Rotate(ctx context.Context, sess *model.Session) (bool, error) {
	if time.Since(sess.LastRotation) < s.rotate {
		return false, nil
	}
	old := sess.Token
	sess.Token = newToken()
	sess.LastRotation = time.Now().UTC()
	if err := s.save(ctx, sess); err != nil {
		sess.Token = old
		return false, err
	}
	_ = s.rdb.Del(ctx, keyPrefix+old).Err()
	return true, nil
}

// Destroy removes a session. Idempotent — destroying an unknown token is a
// no-op.
func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

func (s *Store) save(ctx context.Context, sess *model.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+sess.Token, b, s.timeout).Err()
}
