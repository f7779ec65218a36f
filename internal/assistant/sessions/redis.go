package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"salesspark_backend/platform/apperr"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "salesspark:chat:session:"

// RedisStore keeps sessions as JSON documents. A zero ttl never expires.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redisURL (redis:// or rediss://).
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisStoreWithClient(redis.NewClient(opt), ttl), nil
}

func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Ping verifies the connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Get(ctx context.Context, id string) (Session, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, apperr.Unavailable("session store unavailable", err).WithOp("sessions.get")
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return Session{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return session.Clone(), true, nil
}

func (r *RedisStore) Put(ctx context.Context, session Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, keyPrefix+session.ID, raw, r.ttl).Err(); err != nil {
		return apperr.Unavailable("session store unavailable", err).WithOp("sessions.put")
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
