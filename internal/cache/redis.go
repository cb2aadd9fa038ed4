// Package cache реализует сессионную стратегию хранения в Redis.
//
// Каждое значение пишется с TTL, поэтому состояние посетителя живёт не дольше
// окна сессии и пропадает само, как sessionStorage вкладки браузера.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/apsaracreations/saree-shop/internal/config"
	"github.com/apsaracreations/saree-shop/internal/storage"
)

type Cache struct {
	Db  *redis.Client
	ttl time.Duration
}

// InitServer подключается к Redis и проверяет соединение.
// ttl задаёт время жизни каждого ключа, ноль означает хранение без срока.
func InitServer(ctx context.Context, cfg config.RedisConnection, ttl time.Duration) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{Db: db, ttl: ttl}, nil
}

func (c *Cache) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "cache.Load"
	val, err := c.Db.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return val, nil
}

func (c *Cache) Save(ctx context.Context, key string, value []byte) error {
	const op = "cache.Save"
	if err := c.Db.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Cache) Clear(ctx context.Context, key string) error {
	const op = "cache.Clear"
	if err := c.Db.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.Db.Close()
}
