package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("переопределения", func(t *testing.T) {
		t.Setenv("CD_SEED", "42")
		t.Setenv("CD_MAX_DT", "0.05")
		t.Setenv("CD_TILE_SIZE", "16")

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 0.05, cfg.MaxFrameDT)
		assert.Equal(t, 16.0, cfg.TileSize)
		assert.True(t, cfg.RecordReplay)
	})

	t.Run("сид не число", func(t *testing.T) {
		t.Setenv("CD_SEED", "forty-two")
		_, err := ConfigFromEnv()
		assert.ErrorContains(t, err, "CD_SEED")
	})

	t.Run("отрицательный dt", func(t *testing.T) {
		t.Setenv("CD_MAX_DT", "-1")
		_, err := ConfigFromEnv()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.ErrorIs(t, Config{MaxFrameDT: math.NaN()}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Config{TileSize: math.Inf(1)}.Validate(), ErrInvalidConfig)
}

func TestNewInstance_RulesDefaults(t *testing.T) {
	inst := newTestInstance(t, 1)
	assert.Equal(t, testRegistry.Rules().TileSize, inst.TileSize())

	custom := NewInstance(Config{Seed: 1, TileSize: 16, MaxFrameDT: 0.02}, testRegistry, inst.Grid)
	assert.Equal(t, 16.0, custom.TileSize())
	assert.Equal(t, 0.02, custom.Step(1, nil).DT)
	assert.Nil(t, custom.Replay)
}
