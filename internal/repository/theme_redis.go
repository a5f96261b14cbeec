package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisTheme struct {
	client *redis.Client
}

func NewRedisThemeRepository(client *redis.Client) ThemeRepository {
	return &redisTheme{
		client: client,
	}
}

func (that *redisTheme) Load(ctx context.Context) (string, error) {
	response, err := that.client.Get(ctx, ThemeKey).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrThemeNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}

	return response, nil
}

func (that *redisTheme) Save(ctx context.Context, theme string) error {
	err := that.client.Set(ctx, ThemeKey, theme, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	return nil
}
