package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinic-portal/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session records in Redis so multiple portal
// instances share one session space. Records carry the store TTL and
// are refreshed on every write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("portal_session:%s", id)
}

func (s *RedisStore) Get(ctx context.Context, id string) (entity.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return entity.Session{}, ErrNotFound
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("session get: %w", err)
	}

	var sess entity.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return entity.Session{}, fmt.Errorf("session decode: %w", err)
	}
	// A corrupted role string must degrade to anonymous, never to a
	// privileged role.
	sess.Role = entity.ParseRole(string(sess.Role))
	return sess, nil
}

func (s *RedisStore) Put(ctx context.Context, sess entity.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
