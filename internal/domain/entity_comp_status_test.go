package domain

import (
	"math"
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTable_RefreshReplaces(t *testing.T) {
	var table StatusTable

	require.True(t, table.Add(StatusEffect{Kind: enums.EffectBurn, Magnitude: 1, Duration: 3}))
	require.True(t, table.Add(StatusEffect{Kind: enums.EffectBurn, Magnitude: 2, Duration: 5}))

	active := table.Active()
	require.Len(t, active, 1)
	assert.Equal(t, 5.0, active[0].Duration)
	assert.Equal(t, 2.0, active[0].Magnitude)
}

func TestStatusTable_RefreshKeepsLongerDuration(t *testing.T) {
	var table StatusTable

	require.True(t, table.Add(StatusEffect{Kind: enums.EffectBurn, Magnitude: 1, Duration: 5}))
	require.True(t, table.Add(StatusEffect{Kind: enums.EffectBurn, Magnitude: 2, Duration: 3}))

	active := table.Active()
	require.Len(t, active, 1)
	assert.Equal(t, 5.0, active[0].Duration)
	assert.Equal(t, 2.0, active[0].Magnitude)
}

func TestStatusTable_RejectsEmptyBlockShield(t *testing.T) {
	var table StatusTable

	assert.False(t, table.Add(StatusEffect{Kind: enums.EffectBlockShield, Magnitude: 0, Duration: 5}))
	assert.False(t, table.Add(StatusEffect{Kind: enums.EffectBlockShield, Magnitude: 0.5, Duration: 5}))
	assert.False(t, table.Has(enums.EffectBlockShield))
}

func TestStatusTable_RejectsInvalid(t *testing.T) {
	var table StatusTable

	assert.False(t, table.Add(StatusEffect{Kind: enums.EffectUnknown, Duration: 1}))
	assert.False(t, table.Add(StatusEffect{Kind: enums.EffectBurn, Duration: 0}))
	assert.False(t, table.Add(StatusEffect{Kind: enums.EffectBurn, Duration: math.NaN()}))
	assert.Empty(t, table.Active())
}

func TestStatusTable_TickFiresAndExpires(t *testing.T) {
	var table StatusTable
	table.Add(StatusEffect{Kind: enums.EffectPoison, Duration: 2, TickInterval: 0.5, TickAmount: 3})
	table.Add(StatusEffect{Kind: enums.EffectRegen, Duration: 1, TickInterval: 1, TickAmount: 4})

	ticks, dropped := table.Tick(1.0)
	assert.Empty(t, dropped)
	require.Len(t, ticks, 3)
	assert.Equal(t, enums.EffectPoison, ticks[0].Kind)
	assert.Equal(t, enums.EffectPoison, ticks[1].Kind)
	assert.Equal(t, enums.EffectRegen, ticks[2].Kind)
	assert.True(t, ticks[2].Heal)

	assert.False(t, table.Has(enums.EffectRegen), "regen should expire")
	assert.True(t, table.Has(enums.EffectPoison))

	// Оставшаяся секунда даёт ровно два тика, дальше эффект снимается.
	ticks, _ = table.Tick(5.0)
	assert.Len(t, ticks, 2)
	assert.False(t, table.Has(enums.EffectPoison))
}

func TestStatusTable_DropsCorrupted(t *testing.T) {
	var table StatusTable
	table.Add(StatusEffect{Kind: enums.EffectSlow, Magnitude: 0.5, Duration: 2})

	e, ok := table.Get(enums.EffectSlow)
	require.True(t, ok)
	e.Magnitude = math.NaN()

	_, dropped := table.Tick(0.1)
	assert.Equal(t, []enums.EffectKind{enums.EffectSlow}, dropped)
	assert.False(t, table.Has(enums.EffectSlow))
}
