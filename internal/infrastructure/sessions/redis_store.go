// Package sessions keeps login sessions in Redis so tokens can be revoked
// before they expire.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrSessionNotFound = errors.New("session not found")

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Create(ctx context.Context, sessionID, userID string) error {
	return s.rdb.Set(ctx, key(sessionID), userID, s.ttl).Err()
}

// Get returns the user id behind a live session.
func (s *Store) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.rdb.Get(ctx, key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID)).Err()
}

func key(sessionID string) string {
	return "session:" + sessionID
}
