package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-server/db"
)

func TestRedisPresetDAO(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisPresetDAO(db.NewMockRedisClient())

	got, err := dao.GetPreset(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, dao.SetPreset(ctx, "90d"))
	got, err = dao.GetPreset(ctx)
	require.NoError(t, err)
	assert.Equal(t, "90d", got)
}

func TestRedisPresetDAO_ReadError(t *testing.T) {
	client := db.NewMockRedisClient()
	client.Err = errors.New("down")
	dao := NewRedisPresetDAO(client)

	_, err := dao.GetPreset(context.Background())

	assert.Error(t, err)
}
