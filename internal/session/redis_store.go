package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis under a TTL matching the session
// lifetime, so abandoned sessions expire eagerly instead of lingering until
// the next read.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Create(ctx context.Context, identityID, token string) (Session, error) {
	now := time.Now()
	s := Session{
		ID:         uuid.NewString(),
		IdentityID: identityID,
		Token:      token,
		CreatedAt:  now,
		ExpiresAt:  now.Add(TTL),
	}

	data, err := json.Marshal(s)
	if err != nil {
		return Session{}, fmt.Errorf("session: failed to marshal: %w", err)
	}

	if err := r.client.Set(ctx, r.key(token), data, TTL).Err(); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	// TTL normally evicts first; the double check covers clock drift
	// between writer and reader.
	if !time.Now().Before(s.ExpiresAt) {
		_ = r.client.Del(ctx, r.key(token)).Err()
		return nil, nil
	}

	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Del(ctx, r.key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
