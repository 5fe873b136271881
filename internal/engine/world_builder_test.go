package engine

import (
	"math/rand"
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/dungeon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArenaInstance(t *testing.T) {
	arena := dungeon.NewLevel(rand.New(rand.NewSource(7))).
		WithRooms(dungeon.MaxRooms).
		SpawnEnemy("goblin", 3).
		SpawnEnemy("plague_shaman", 1).
		Build()

	inst, party, err := NewArenaInstance(Config{Seed: 7}, testRegistry, arena, []string{"warrior", "mage"}, true)
	require.NoError(t, err)

	require.Len(t, party, 2)
	assert.Len(t, inst.Actors(), 2+len(arena.Spawns))
	assert.Equal(t, arena.TileSize, inst.TileSize())
	for _, p := range party {
		assert.Equal(t, TeamPlayers, p.Team)
		assert.Equal(t, arena.Start, p.Center())
		assert.True(t, inst.IsControlled(p.ID))
	}
	assert.Equal(t, len(arena.Spawns), inst.Hostiles(TeamPlayers))

	_, _, err = NewArenaInstance(Config{Seed: 7}, testRegistry, arena, []string{"paladin"}, true)
	assert.ErrorIs(t, err, registry.ErrUnknownClass)
}
