package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/registry"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/systems"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/dungeon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameDT = 1.0 / 60

var testRegistry = registry.MustDefault()

// newTestInstance — открытое поле 20x10 клеток (пол x 32..608, y 32..288).
func newTestInstance(t *testing.T, seed int64) *Instance {
	t.Helper()
	arena := dungeon.NewLevel(rand.New(rand.NewSource(seed))).WithSize(20, 10).Build()
	cfg := Config{Seed: seed, Generation: 1, RecordReplay: true}
	return NewInstance(cfg, testRegistry, arena.Grid)
}

func spawn(t *testing.T, inst *Instance, classID string, pos domain.Vec2, team string, controlled bool) *domain.Actor {
	t.Helper()
	a, err := inst.SpawnActor(classID, pos, team, controlled)
	require.NoError(t, err)
	return a
}

func TestSpawnActor(t *testing.T) {
	inst := newTestInstance(t, 1)

	hero := spawn(t, inst, "warrior", domain.Vec2{X: 100, Y: 100}, TeamPlayers, true)
	gob := spawn(t, inst, "goblin", domain.Vec2{X: 200, Y: 100}, TeamMonsters, false)

	require.NotNil(t, hero.Equipment[enums.SlotWeapon])
	assert.Equal(t, "rusty_sword", hero.Equipment[enums.SlotWeapon].ID)
	assert.Equal(t, hero.Health.Max, hero.Health.Current)

	assert.NotEqual(t, hero.ID, gob.ID)
	assert.Equal(t, uint8(enums.EntityKindPlayer), hero.ID.Kind())
	assert.Equal(t, uint8(enums.EntityKindEnemy), gob.ID.Kind())
	assert.Equal(t, uint8(0), hero.ID.Team())
	assert.Equal(t, uint8(1), gob.ID.Team())

	assert.True(t, inst.IsControlled(hero.ID))
	assert.False(t, inst.IsControlled(gob.ID))
	assert.Same(t, gob, inst.Actor(gob.ID))
	assert.Equal(t, 1, inst.Hostiles(TeamPlayers))

	_, err := inst.SpawnActor("dragon", domain.Vec2{}, TeamMonsters, false)
	assert.ErrorIs(t, err, registry.ErrUnknownClass)

	_, err = inst.SpawnActor("goblin", domain.Vec2{X: math.NaN()}, TeamMonsters, false)
	assert.Error(t, err)
}

func TestStep_ClampsDT(t *testing.T) {
	inst := newTestInstance(t, 1)

	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"обычный кадр", frameDT, frameDT},
		{"длинный кадр зажат", 5, testRegistry.Rules().MaxFrameDT},
		{"отрицательный", -1, 0},
		{"NaN", math.NaN(), 0},
		{"бесконечность", math.Inf(1), 0},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := inst.Step(tt.dt, nil)
			assert.Equal(t, tt.want, report.DT)
			assert.Equal(t, i+1, report.Frame)
		})
	}
}

func TestStep_KillAwardsExperience(t *testing.T) {
	inst := newTestInstance(t, 3)
	hero := spawn(t, inst, "warrior", domain.Vec2{X: 100, Y: 100}, TeamPlayers, true)
	gob := spawn(t, inst, "goblin", domain.Vec2{X: 140, Y: 100}, TeamMonsters, false)
	gob.Health.Current = 1
	hero.ExpToNext = 10

	report := inst.Step(frameDT, []domain.Command{
		{Actor: hero.ID, Action: domain.ActionAttack, Target: gob.Center()},
	})

	require.Len(t, report.Deaths, 1)
	assert.Equal(t, Death{ActorID: gob.ID, KillerID: hero.ID, ClassID: "goblin"}, report.Deaths[0])
	assert.NotEmpty(t, report.Spawned)

	killed := false
	for _, res := range report.Results {
		if res.TargetID == gob.ID && res.Killed {
			killed = true
			assert.Equal(t, hero.ID, res.SourceID)
		}
	}
	assert.True(t, killed)
	assert.Equal(t, 1.0, report.Damage(gob.ID))

	// 25 опыта при пороге 10: один уровень, остаток 15
	require.Len(t, report.LevelUps, 1)
	assert.Equal(t, LevelUp{ActorID: hero.ID, Gained: 1, Level: 2}, report.LevelUps[0])
	assert.Equal(t, 15.0, hero.Experience)

	// Снимок мёртвого есть в отчёте кадра, но из инстанса он уже удалён
	view, ok := report.View(gob.ID)
	require.True(t, ok)
	assert.True(t, view.IsDead)
	assert.Nil(t, inst.Actor(gob.ID))
	assert.Equal(t, 0, inst.Hostiles(TeamPlayers))

	next := inst.Step(frameDT, nil)
	assert.Empty(t, next.Deaths)
	_, ok = next.View(gob.ID)
	assert.False(t, ok)
}

func TestStep_ControlledDeadActorStays(t *testing.T) {
	inst := newTestInstance(t, 4)
	hero := spawn(t, inst, "mage", domain.Vec2{X: 100, Y: 100}, TeamPlayers, true)

	hero.ApplyDirect(hero.Health.Max*2, hero.ID)
	report := inst.Step(frameDT, []domain.Command{
		{Actor: hero.ID, Action: domain.ActionMove, Dir: domain.Vec2{X: 1}},
	})

	require.Len(t, report.Deaths, 1)
	assert.Empty(t, report.LevelUps, "опыт за самоубийство не начисляется")
	assert.Same(t, hero, inst.Actor(hero.ID))
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "cannot move", report.Rejected[0].Reason)
}

func TestStep_RejectsCommands(t *testing.T) {
	inst := newTestInstance(t, 5)
	hero := spawn(t, inst, "warrior", domain.Vec2{X: 100, Y: 100}, TeamPlayers, true)
	ghost := hero.ID + 1000

	report := inst.Step(frameDT, []domain.Command{
		{Actor: hero.ID, Action: domain.ActionAttack, Target: domain.Vec2{X: 200, Y: 100}},
		{Actor: hero.ID, Action: domain.ActionAttack, Target: domain.Vec2{X: 200, Y: 100}},
		{Actor: ghost, Action: domain.ActionWait},
		{Actor: hero.ID, Action: domain.ActionMove, Dir: domain.Vec2{X: math.NaN()}},
		{Actor: hero.ID, Action: domain.ActionType(200)},
		{Actor: hero.ID, Action: domain.ActionEquip, ItemID: "excalibur"},
		{Actor: hero.ID, Action: domain.ActionLearnSkill, SkillID: "toughness"},
		{Actor: hero.ID, Action: domain.ActionAllocateStat, Stat: enums.StatLuck},
		{Actor: hero.ID, Action: domain.ActionTeleport, Dir: domain.Vec2{X: 1}},
	})

	require.Len(t, report.Spawned, 1, "вторая атака в том же кадре отклонена")
	require.Len(t, report.Rejected, 8)

	reasons := make([]string, 0, len(report.Rejected))
	for _, r := range report.Rejected {
		reasons = append(reasons, r.Reason)
	}
	assert.Equal(t, "attack not ready", reasons[0])
	assert.Contains(t, reasons[1], "not found")
	assert.Contains(t, reasons[2], "invalid command")
	assert.Equal(t, "unknown action", reasons[3])
	assert.Contains(t, reasons[4], "unknown item")
	assert.Equal(t, "cannot learn toughness", reasons[5])
	assert.Equal(t, "no stat points", reasons[6])
	assert.Equal(t, "cannot teleport", reasons[7])
}

func TestStep_ProgressionCommands(t *testing.T) {
	inst := newTestInstance(t, 6)
	hero := spawn(t, inst, "warrior", domain.Vec2{X: 100, Y: 100}, TeamPlayers, true)
	hero.SkillPoints = 1
	hero.StatPoints = 1
	baseHealth := hero.Health.Max
	baseLuck := hero.Base.Luck

	report := inst.Step(frameDT, []domain.Command{
		{Actor: hero.ID, Action: domain.ActionEquip, ItemID: "war_axe"},
		{Actor: hero.ID, Action: domain.ActionLearnSkill, SkillID: "toughness"},
		{Actor: hero.ID, Action: domain.ActionAllocateStat, Stat: enums.StatLuck},
		{Actor: hero.ID, Action: domain.ActionUnequip, Slot: enums.SlotBoots},
	})

	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "UNEQUIP", report.Rejected[0].Action)

	assert.Equal(t, "war_axe", hero.Equipment[enums.SlotWeapon].ID)
	assert.True(t, hero.Skills["toughness"])
	assert.Equal(t, baseHealth+20, hero.Health.Max)
	assert.Equal(t, baseLuck+1, hero.Base.Luck)
	assert.Equal(t, 0, hero.SkillPoints)
	assert.Equal(t, 0, hero.StatPoints)
}

func TestStep_HealAbilityReported(t *testing.T) {
	inst := newTestInstance(t, 7)
	hero := spawn(t, inst, "warrior", domain.Vec2{X: 100, Y: 100}, TeamPlayers, true)
	hero.Health.Current = 10
	want := min(25.0, hero.Health.Max-10)

	report := inst.Step(frameDT, []domain.Command{
		{Actor: hero.ID, Action: domain.ActionUseAbility, Index: 2, Target: hero.Center()},
	})

	require.Len(t, report.Results, 1)
	assert.Equal(t, systems.CombatResult{
		TargetID: hero.ID,
		SourceID: hero.ID,
		Amount:   want,
		Kind:     systems.ResultHeal,
	}, report.Results[0])
	assert.Equal(t, 0.0, report.Damage(hero.ID))

	view, ok := report.View(hero.ID)
	require.True(t, ok)
	require.Len(t, view.Cooldowns, 1)
	assert.Equal(t, "second_wind", view.Cooldowns[0].ID)
}

func TestStep_AIPursuesHostile(t *testing.T) {
	inst := newTestInstance(t, 8)
	hero := spawn(t, inst, "warrior", domain.Vec2{X: 100, Y: 100}, TeamPlayers, true)
	gob := spawn(t, inst, "goblin", domain.Vec2{X: 300, Y: 100}, TeamMonsters, false)

	start := gob.Center().DistanceTo(hero.Center())
	for k := 0; k < 30; k++ {
		inst.Step(frameDT, nil)
	}

	assert.Less(t, gob.Center().DistanceTo(hero.Center()), start)
	assert.Equal(t, 30, inst.Frame())
	assert.InDelta(t, 0.5, inst.Time(), 1e-9)
}

// scriptedRun гоняет одинаковый сценарий на свежем инстансе.
func scriptedRun(t *testing.T, seed int64) (*Instance, []FrameReport) {
	t.Helper()
	inst := newTestInstance(t, seed)
	hero := spawn(t, inst, "ranger", domain.Vec2{X: 100, Y: 150}, TeamPlayers, true)
	spawn(t, inst, "goblin", domain.Vec2{X: 260, Y: 120}, TeamMonsters, false)
	spawn(t, inst, "orc", domain.Vec2{X: 300, Y: 200}, TeamMonsters, false)
	spawn(t, inst, "skeleton_archer", domain.Vec2{X: 420, Y: 150}, TeamMonsters, false)

	var reports []FrameReport
	for k := 0; k < 120; k++ {
		var cmds []domain.Command
		switch {
		case k%15 == 0:
			cmds = append(cmds, domain.Command{Actor: hero.ID, Action: domain.ActionAttack, Target: domain.Vec2{X: 300, Y: 150}})
		case k == 40:
			cmds = append(cmds, domain.Command{Actor: hero.ID, Action: domain.ActionUseAbility, Index: 0, Target: domain.Vec2{X: 300, Y: 150}})
		case k == 70:
			cmds = append(cmds, domain.Command{Actor: hero.ID, Action: domain.ActionDash, Dir: domain.Vec2{Y: 1}})
		default:
			cmds = append(cmds, domain.Command{Actor: hero.ID, Action: domain.ActionMove, Dir: domain.Vec2{X: -1}})
		}
		reports = append(reports, inst.Step(frameDT, cmds))
	}
	return inst, reports
}

func TestStep_Deterministic(t *testing.T) {
	first, a := scriptedRun(t, 99)
	_, b := scriptedRun(t, 99)

	require.Len(t, b, len(a))
	for k := range a {
		require.Equal(t, a[k], b[k], "кадр %d", k+1)
	}

	require.NotNil(t, first.Replay)
	assert.Len(t, first.Replay.Frames, 120)
	assert.Equal(t, int64(99), first.Replay.Seed)
}

func TestPlayback_ReproducesRun(t *testing.T) {
	recorded, original := scriptedRun(t, 2024)

	fresh := newTestInstance(t, 2024)
	spawn(t, fresh, "ranger", domain.Vec2{X: 100, Y: 150}, TeamPlayers, true)
	spawn(t, fresh, "goblin", domain.Vec2{X: 260, Y: 120}, TeamMonsters, false)
	spawn(t, fresh, "orc", domain.Vec2{X: 300, Y: 200}, TeamMonsters, false)
	spawn(t, fresh, "skeleton_archer", domain.Vec2{X: 420, Y: 150}, TeamMonsters, false)

	replayed := fresh.Playback(recorded.Replay)

	require.Len(t, replayed, len(original))
	assert.Equal(t, original[len(original)-1], replayed[len(replayed)-1])
}
