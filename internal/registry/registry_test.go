package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Loads(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	mage, ok := reg.Class("mage")
	require.True(t, ok)
	assert.Equal(t, "mage", mage.ID)
	assert.Equal(t, enums.EntityKindPlayer, mage.Kind)
	assert.True(t, mage.CanTeleport)
	assert.False(t, mage.CanDash)
	assert.Equal(t, []string{"fireball", "frost_bolt"}, mage.Spells)

	fireball, ok := reg.Ability("fireball")
	require.True(t, ok)
	require.NotNil(t, fireball.Attack)
	assert.Equal(t, enums.AttackProjectile, fireball.Attack.Kind)
	assert.Equal(t, enums.ElementFire, fireball.Attack.Element)
	require.NotNil(t, fireball.Attack.OnExpire)
	assert.Equal(t, enums.AttackZone, fireball.Attack.OnExpire.Kind)

	barrier, ok := reg.Ability("arcane_barrier")
	require.True(t, ok)
	assert.Equal(t, AbilityBuff, barrier.Kind)
	assert.Equal(t, enums.EffectAbsorbShield, barrier.Effect.Kind)

	axe, ok := reg.Item("war_axe")
	require.True(t, ok)
	assert.Equal(t, enums.SlotWeapon, axe.Slot)
	assert.Equal(t, 2.0, axe.Bonuses.Stats.Strength)

	assert.Equal(t, DefaultRules(), reg.Rules())
}

func TestParse_PartialRulesKeepDefaults(t *testing.T) {
	reg, err := Parse([]byte("rules:\n  hit_invulnerability: 0.5\n  dash:\n    stamina_cost: 30\n"))
	require.NoError(t, err)

	rules := reg.Rules()
	assert.Equal(t, 0.5, rules.HitInvulnerability)
	assert.Equal(t, 30.0, rules.Dash.StaminaCost)
	assert.Equal(t, DefaultRules().Dash.ChainWindow, rules.Dash.ChainWindow)
	assert.Equal(t, DefaultRules().Parry, rules.Parry)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "Unknown ability on class",
			yaml: `
classes:
  hero:
    kind: player
    size: 20
    abilities: [nope]
`,
			wantErr: "classes.hero.abilities[0]",
		},
		{
			name: "Unknown enum value",
			yaml: `
abilities:
  zap:
    kind: lightning_storm
`,
			wantErr: "unknown ability kind",
		},
		{
			name: "Projectile without reach",
			yaml: `
abilities:
  dart:
    kind: attack
    attack: { kind: projectile, speed: 100, radius: 2 }
`,
			wantErr: "projectile needs lifetime or range",
		},
		{
			name: "Skill cycle",
			yaml: `
skills:
  a: { requires: [b] }
  b: { requires: [a] }
`,
			wantErr: "prerequisite cycle",
		},
		{
			name: "Spell is not an attack",
			yaml: `
abilities:
  calm: { kind: heal, heal: 5 }
classes:
  monk:
    kind: player
    size: 20
    spells: [calm]
`,
			wantErr: "must be an attack ability",
		},
		{
			name: "Zero tile size",
			yaml: `
rules:
  tile_size: 0
`,
			wantErr: "tile_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classes:\n  dummy: { kind: enemy, size: 10 }\n"), 0o644))

	reg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dummy"}, reg.ClassIDs())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDashRules_ChainCost(t *testing.T) {
	d := DefaultRules().Dash
	assert.Equal(t, 15.0, d.ChainCost(1))
	assert.Equal(t, 10.0, d.ChainCost(2))
	assert.Equal(t, 5.0, d.ChainCost(3))
	assert.Equal(t, 5.0, d.ChainCost(7))
}
