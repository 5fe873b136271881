package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileKind_IsBlocking(t *testing.T) {
	tests := []struct {
		tile TileKind
		want bool
	}{
		{TileWall, true},
		{TileVoid, true},
		{TileFloor, false},
		{TileDoor, false},
		{TileWater, false},
		{TileLava, false},
		{TileTrap, false},
		{TileChest, false},
	}

	for _, tt := range tests {
		t.Run(tt.tile.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tile.IsBlocking())
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	var kind AttackKind
	require.NoError(t, kind.UnmarshalText([]byte("projectile")))
	assert.Equal(t, AttackProjectile, kind)

	var effect EffectKind
	require.NoError(t, effect.UnmarshalText([]byte("ABSORB_SHIELD")))
	assert.Equal(t, EffectAbsorbShield, effect)
	assert.True(t, effect.IsShield())

	var slot EquipSlot
	assert.Error(t, slot.UnmarshalText([]byte("tail")))

	var el Element
	require.NoError(t, el.UnmarshalText([]byte("fire")))
	assert.Equal(t, ElementFire, el)
	assert.Error(t, el.UnmarshalText([]byte("plasma")))
}

func TestParseRoundTrip(t *testing.T) {
	for k := EffectBurn; k < EffectKindCount; k++ {
		assert.Equal(t, k, ParseEffectKind(k.String()), k.String())
	}
	for s := SlotWeapon; s < EquipSlotCount; s++ {
		assert.Equal(t, s, ParseEquipSlot(s.String()), s.String())
	}
}
