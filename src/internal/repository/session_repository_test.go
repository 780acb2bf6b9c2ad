package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"rider-client/src/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	values map[string]string
	ttl    time.Duration
	err    error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	f.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func testSession() *entity.RiderSession {
	return &entity.RiderSession{
		UserID:      "r-1",
		DisplayName: "Rider One",
		Email:       "rider@example.com",
		AuthToken:   "tok",
	}
}

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(validator.New())

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	session := testSession()
	require.NoError(t, repo.Set(ctx, session))
	session.UserID = "mutated"

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r-1", got.UserID)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionRepositoryRejectsInvalid(t *testing.T) {
	repo := NewMemorySessionRepository(validator.New())

	assert.ErrorIs(t, repo.Set(context.Background(), nil), ErrNilSession)
	assert.Error(t, repo.Set(context.Background(), &entity.RiderSession{}))
	assert.Error(t, repo.Set(context.Background(), &entity.RiderSession{UserID: "1", Email: "not-an-email"}))
}

func TestRedisSessionRepository(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	repo := &RedisSessionRepository{Redis: kv, Validate: validator.New(), Key: "RIDER:SESSION:dev-1", TTL: time.Hour}

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, testSession()))
	assert.Contains(t, kv.values, "RIDER:SESSION:dev-1")
	assert.Equal(t, time.Hour, kv.ttl)

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testSession(), got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	repo := &RedisSessionRepository{Redis: kv, Key: "k"}

	kv.values["k"] = "{not json"
	_, err := repo.Get(ctx)
	assert.Error(t, err)

	kv.err = errors.New("connection refused")
	_, err = repo.Get(ctx)
	assert.ErrorContains(t, err, "connection refused")
	assert.Error(t, repo.Set(ctx, testSession()))
}
