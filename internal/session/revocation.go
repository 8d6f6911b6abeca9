package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revocations remembers signed-out token ids until the token would have
// expired anyway.
type Revocations interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	Revoked(ctx context.Context, jti string) (bool, error)
}

type MemoryRevocations struct {
	mu  sync.Mutex
	ids map[string]time.Time
	now func() time.Time
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{ids: map[string]time.Time{}, now: time.Now}
}

func (m *MemoryRevocations) Revoke(_ context.Context, jti string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, exp := range m.ids {
		if !exp.After(now) {
			delete(m.ids, id)
		}
	}
	if until.After(now) {
		m.ids[jti] = until
	}
	return nil
}

func (m *MemoryRevocations) Revoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.ids[jti]
	return ok && exp.After(m.now()), nil
}

const revokedNamespace = "portal:revoked"

type RedisRevocations struct {
	client redis.UniversalClient
}

func NewRedisRevocations(addr, password string) *RedisRevocations {
	return &RedisRevocations{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})}
}

func NewRedisRevocationsFromClient(c redis.UniversalClient) *RedisRevocations {
	return &RedisRevocations{client: c}
}

func (r *RedisRevocations) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedNamespace+":"+jti, 1, ttl).Err()
}

func (r *RedisRevocations) Revoked(ctx context.Context, jti string) (bool, error) {
	err := r.client.Get(ctx, revokedNamespace+":"+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisRevocations) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }

func (r *RedisRevocations) Close() error { return r.client.Close() }
