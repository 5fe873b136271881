package systems

import (
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickStatusEffects(t *testing.T) {
	burning := newTestActor(t, "goblin", "enemies", 1, tc(1, 1))
	healing := newTestActor(t, "warrior", "players", 2, tc(3, 3))
	healing.Health.Current = 10

	require.True(t, burning.AddStatus(domain.NewStatusEffect(
		registry.EffectDef{Kind: enums.EffectBurn, Duration: 3, TickInterval: 0.5, TickAmount: 2}, healing.ID)))
	require.True(t, healing.AddStatus(domain.NewStatusEffect(
		registry.EffectDef{Kind: enums.EffectRegen, Duration: 3, TickInterval: 0.5, TickAmount: 4}, healing.ID)))

	before := burning.Health.Current
	results := TickStatusEffects([]*domain.Actor{burning, healing}, 0.5)

	require.Len(t, results, 2)
	assert.Equal(t, CombatResult{TargetID: burning.ID, SourceID: healing.ID, Amount: 2, Kind: ResultTick}, results[0])
	assert.Equal(t, CombatResult{TargetID: healing.ID, SourceID: healing.ID, Amount: 4, Kind: ResultHeal}, results[1])
	assert.Equal(t, before-2, burning.Health.Current)
	assert.Equal(t, 14.0, healing.Health.Current)
}

func TestTickStatusEffects_KillReported(t *testing.T) {
	victim := newTestActor(t, "goblin", "enemies", 1, tc(1, 1))
	victim.Health.Current = 3
	require.True(t, victim.AddStatus(domain.NewStatusEffect(
		registry.EffectDef{Kind: enums.EffectPoison, Duration: 4, TickInterval: 1, TickAmount: 3}, victim.ID)))

	results := TickStatusEffects([]*domain.Actor{victim}, 1)

	require.Len(t, results, 1)
	assert.True(t, results[0].Killed)
	assert.True(t, victim.IsDead())
	assert.Empty(t, TickStatusEffects([]*domain.Actor{victim}, 1), "the dead do not tick")
}
