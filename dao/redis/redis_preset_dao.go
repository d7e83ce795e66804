package redis

import (
	"context"
	"errors"
	"fmt"

	"tourism-server/config"
	"tourism-server/db"
)

// RedisPresetDAO stores the last chosen date-range preset key.
type RedisPresetDAO struct {
	client db.RedisClient
}

func NewRedisPresetDAO(client db.RedisClient) *RedisPresetDAO {
	return &RedisPresetDAO{client: client}
}

// GetPreset returns the stored key, or "" when nothing was saved yet.
func (dao *RedisPresetDAO) GetPreset(ctx context.Context) (string, error) {
	v, err := dao.client.Get(ctx, config.DATE_RANGE_PRESET_KEY)
	if errors.Is(err, db.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preset: %w", err)
	}
	return v, nil
}

func (dao *RedisPresetDAO) SetPreset(ctx context.Context, key string) error {
	if err := dao.client.Set(ctx, config.DATE_RANGE_PRESET_KEY, key); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}
