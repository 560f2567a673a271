// cache содержит read-through кэш журнала отзыва токенов поверх Redis.
// Источник истины — PostgreSQL; кэш хранит только положительные ответы
// (jti отозван), поэтому его потеря не приводит к пропуску отозванного токена.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=../mocks/mock_cache.go -package=mocks github.com/pribylovaa/go-tracks-api/internal/cache RevocationCache

// DefaultPrefix — префикс ключей по умолчанию.
const DefaultPrefix = "tracks:revoked:"

// RevocationCache — минимальный контракт кэша отозванных jti.
type RevocationCache interface {
	// IsRevoked сообщает, известен ли кэшу отзыв jti. false означает
	// «не знаю», а не «не отозван».
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// MarkRevoked запоминает отзыв jti на ttl (остаток жизни токена).
	MarkRevoked(ctx context.Context, jti string, ttl time.Duration) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется DefaultPrefix.
func NewRedisCache(ctx context.Context, redisURL, prefix string) (RevocationCache, error) {
	const op = "cache.NewRedisCache"

	if prefix == "" {
		prefix = DefaultPrefix
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(jti string) string { return c.prefix + jti }

func (c *redisCache) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := c.rdb.Get(ctx, c.key(jti)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, err
	}
}

func (c *redisCache) MarkRevoked(ctx context.Context, jti string, ttl time.Duration) error {
	// Истёкший токен и так не пройдёт проверку срока, хранить нечего.
	if ttl <= 0 {
		return nil
	}

	return c.rdb.Set(ctx, c.key(jti), "1", ttl).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
