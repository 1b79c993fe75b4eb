package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON values keyed by token, expiring with the session.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Redis-backed store. An empty prefix defaults to "session:".
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return s.client.Set(ctx, s.key(session.Token), data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// UpdateActivity rewrites the session with the new activity time, keeping its TTL.
func (s *RedisStore) UpdateActivity(ctx context.Context, token string, lastActivity time.Time) error {
	session, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	session.LastActivityAt = lastActivity

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// KeepTTL leaves the expiry set on Create untouched.
	if err := s.client.SetArgs(ctx, s.key(token), data, redis.SetArgs{KeepTTL: true, Mode: "XX"}).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
