package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Cirillio/DonationApp/internal/config"
	"github.com/Cirillio/DonationApp/internal/domain"
	"github.com/Cirillio/DonationApp/pkg/e"
)

// Redis — session-store мастера пожертвований: снапшоты сеансов
// в JSON под фиксированным ключом с TTL.
type Redis struct {
	client redis.UniversalClient
	logger *slog.Logger
}

func NewRedis(config *config.RedisConfig, logger *slog.Logger) (*Redis, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    config.Addrs,
		Password: config.Password,
		DB:       config.DBRedis,
	})

	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis.NewRedis failed: %w", err)
	}

	return &Redis{
		client: client,
		logger: logger,
	}, nil
}

func (r *Redis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return e.Wrap("storage.redis.Set marshal", err)
	}
	return r.client.Set(ctx, key, jsonValue, exp).Err()
}

func (r *Redis) Get(ctx context.Context, key string, dest *domain.SessionSnapshot) error {
	result, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return e.ErrSessionNotFound
	} else if err != nil {
		return e.Wrap("storage.redis.Get", err)
	}

	if err := json.Unmarshal([]byte(result), dest); err != nil {
		return e.Wrap("storage.redis.Get unmarshal", err)
	}

	return nil
}

func (r *Redis) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Redis) Close() error {
	err := r.client.Close()
	if err != nil {
		r.logger.Error("storage.redis.Close", slog.String("error", err.Error()))
		return e.Wrap("failed to close redis", err)
	}
	return nil
}
