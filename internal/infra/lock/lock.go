package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ReleaseFunc освобождает захваченную блокировку
type ReleaseFunc func(ctx context.Context) error

// client подмножество redis.Cmdable, нужное блокировке
type client interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// releaseScript удаляет ключ, только если он всё ещё принадлежит владельцу
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker распределённая блокировка на SET NX PX.
// Нужна, чтобы фоновые задачи не выполнялись одновременно на нескольких инстансах
type RedisLocker struct {
	rdb    client
	prefix string
}

// NewRedisLocker создает блокировку поверх redis клиента
func NewRedisLocker(rdb client, prefix string) *RedisLocker {
	if prefix == "" {
		prefix = "reservation-engine:lock"
	}
	return &RedisLocker{rdb: rdb, prefix: prefix}
}

// TryLock пытается захватить ключ на ttl. ok=false означает, что ключ держит кто-то другой
func (l *RedisLocker) TryLock(ctx context.Context, name string, ttl time.Duration) (ReleaseFunc, bool, error) {
	key := l.prefix + ":" + name
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrAcquire, key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRelease, key, err)
		}
		return nil
	}

	return release, true, nil
}

// NoopLocker всегда захватывает блокировку. Используется при одном инстансе без redis
type NoopLocker struct{}

// TryLock всегда успешен
func (NoopLocker) TryLock(ctx context.Context, name string, ttl time.Duration) (ReleaseFunc, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}
