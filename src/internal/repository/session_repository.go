package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"rider-client/src/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

var ErrNilSession = errors.New("session is nil")

type MemorySessionRepository struct {
	Validate *validator.Validate

	mu      sync.RWMutex
	session *entity.RiderSession
}

func NewMemorySessionRepository(validate *validator.Validate) *MemorySessionRepository {
	return &MemorySessionRepository{Validate: validate}
}

func (r *MemorySessionRepository) Get(ctx context.Context) (*entity.RiderSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.session == nil {
		return nil, nil
	}
	s := *r.session
	return &s, nil
}

func (r *MemorySessionRepository) Set(ctx context.Context, session *entity.RiderSession) error {
	if err := validateSession(r.Validate, session); err != nil {
		return err
	}
	s := *session
	r.mu.Lock()
	r.session = &s
	r.mu.Unlock()
	return nil
}

func (r *MemorySessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	r.session = nil
	r.mu.Unlock()
	return nil
}

// sessionKV is the part of redis.UniversalClient the session store uses.
type sessionKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisSessionRepository struct {
	Redis    sessionKV
	Validate *validator.Validate
	Key      string
	TTL      time.Duration
}

func NewRedisSessionRepository(client redis.UniversalClient, validate *validator.Validate, deviceID string, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{
		Redis:    client,
		Validate: validate,
		Key:      fmt.Sprintf("RIDER:SESSION:%s", deviceID),
		TTL:      ttl,
	}
}

func (r *RedisSessionRepository) Get(ctx context.Context) (*entity.RiderSession, error) {
	data, err := r.Redis.Get(ctx, r.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var session entity.RiderSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (r *RedisSessionRepository) Set(ctx context.Context, session *entity.RiderSession) error {
	if err := validateSession(r.Validate, session); err != nil {
		return err
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.Redis.Set(ctx, r.Key, data, r.TTL).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) Clear(ctx context.Context) error {
	if err := r.Redis.Del(ctx, r.Key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func validateSession(validate *validator.Validate, session *entity.RiderSession) error {
	if session == nil {
		return ErrNilSession
	}
	if validate == nil {
		return nil
	}
	if err := validate.Struct(session); err != nil {
		return fmt.Errorf("invalid session: %w", err)
	}
	return nil
}
