package systems

import (
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNPCIntent(t *testing.T) {
	npcPos := domain.Vec2{X: 200, Y: 200}

	walled := openGrid(20, 20)
	for y := 0; y < 20; y++ {
		walled.Set(8, y, enums.TileWall)
	}

	tests := []struct {
		name      string
		npcClass  string
		playerPos *domain.Vec2
		grid      domain.TileGrid
		stun      bool
		want      domain.ActionType
	}{
		{"No target", "goblin", nil, openGrid(20, 20), false, domain.ActionWait},
		{"Target out of aggro", "goblin", &domain.Vec2{X: 560, Y: 200}, openGrid(20, 20), false, domain.ActionWait},
		{"Target behind wall", "goblin", &domain.Vec2{X: 320, Y: 200}, walled, false, domain.ActionWait},
		{"Target in attack range", "goblin", &domain.Vec2{X: 230, Y: 200}, openGrid(20, 20), false, domain.ActionAttack},
		{"Pursue target", "goblin", &domain.Vec2{X: 350, Y: 200}, openGrid(20, 20), false, domain.ActionMove},
		{"Stunned", "goblin", &domain.Vec2{X: 230, Y: 200}, openGrid(20, 20), true, domain.ActionWait},
		{"Ability ready", "orc", &domain.Vec2{X: 240, Y: 200}, openGrid(20, 20), false, domain.ActionUseAbility},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			npc := newTestActor(t, tt.npcClass, "enemies", 1, npcPos)
			actors := []*domain.Actor{npc}
			var player *domain.Actor
			if tt.playerPos != nil {
				player = newTestActor(t, "warrior", "players", 2, *tt.playerPos)
				actors = append(actors, player)
			}
			if tt.stun {
				require.True(t, npc.AddStatus(domain.NewStatusEffect(
					registry.EffectDef{Kind: enums.EffectStun, Duration: 1}, npc.ID)))
			}

			cmd := ComputeNPCIntent(npc, actors, tt.grid, testTile)

			assert.Equal(t, tt.want, cmd.Action)
			assert.Equal(t, npc.ID, cmd.Actor)
			assert.NoError(t, cmd.Validate())

			switch cmd.Action {
			case domain.ActionAttack, domain.ActionUseAbility:
				assert.Equal(t, player.Center(), cmd.Target)
			case domain.ActionMove:
				assert.Greater(t, cmd.Dir.X, 0.9, "moves toward the target")
			}
		})
	}
}

func TestCalculateSmartMove(t *testing.T) {
	grid := openGrid(10, 10)
	for y := 0; y < 4; y++ {
		grid.Set(3, y, enums.TileWall)
	}
	npc := newTestActor(t, "goblin", "enemies", 1, domain.Vec2{X: 80, Y: 80})

	t.Run("slides around wall", func(t *testing.T) {
		dir := calculateSmartMove(npc, domain.Vec2{X: 300, Y: 90}, grid, testTile)
		assert.Equal(t, domain.Vec2{Y: 1}, dir)
	})

	t.Run("dead end", func(t *testing.T) {
		dir := calculateSmartMove(npc, domain.Vec2{X: 300, Y: 80}, grid, testTile)
		assert.True(t, dir.IsZero())
	})

	t.Run("direct path", func(t *testing.T) {
		dir := calculateSmartMove(npc, domain.Vec2{X: 80, Y: 200}, grid, testTile)
		assert.Equal(t, domain.Vec2{Y: 1}, dir)
	})
}
