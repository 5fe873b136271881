package systems

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ComputeNPCIntent решает, что делать NPC в этом кадре.
//
// NPC преследует ближайшего видимого врага в радиусе агро. В радиусе атаки
// применяет первую готовую способность, иначе бьёт базовой атакой.
// Если цели нет или путь перекрыт — ждёт.
func ComputeNPCIntent(npc *domain.Actor, actors []*domain.Actor, grid domain.TileGrid, tileSize float64) domain.Command {
	aiLogger := logger.For("ai_system").WithFields(logrus.Fields{
		"npc_id": npc.ID,
		"class":  npc.Class.ID,
	})
	wait := domain.Command{Actor: npc.ID, Action: domain.ActionWait}

	if npc.IsDead() || npc.IsStunned() {
		return wait
	}

	aggro := npc.Class.AggroRadius
	if aggro <= 0 {
		aggro = domain.DefaultAggroRadius
	}
	attackRange := npc.Class.AttackRange
	if attackRange <= 0 {
		attackRange = domain.DefaultAttackRange
	}

	target := NearestHostile(actors, npc.Center(), npc.Team, npc.ID, aggro)
	if target == nil {
		return wait
	}

	check := ValidateInteraction(npc, target, aggro, true, grid, tileSize)
	if !check.Valid {
		aiLogger.WithField("reason", check.Message).Debug("Target not reachable. Action: WAIT")
		return wait
	}

	aim := target.Center()
	if npc.Center().DistanceTo(aim) <= attackRange+target.Body.Radius() {
		for i := range npc.Abilities {
			if npc.CanUseAbility(i) {
				aiLogger.WithField("ability", npc.Abilities[i]).Debug("Target in range. Action: USE_ABILITY")
				return domain.Command{Actor: npc.ID, Action: domain.ActionUseAbility, Index: i, Target: aim}
			}
		}
		aiLogger.Debug("Target in range. Action: ATTACK")
		return domain.Command{Actor: npc.ID, Action: domain.ActionAttack, Target: aim}
	}

	dir := calculateSmartMove(npc, aim, grid, tileSize)
	if dir.IsZero() {
		aiLogger.Debug("Path is blocked. Action: WAIT")
		return wait
	}
	return domain.Command{Actor: npc.ID, Action: domain.ActionMove, Dir: dir}
}

// calculateSmartMove выбирает направление к цели. Если прямой путь упирается
// в стену, пробует скольжение по приоритетной оси, затем по другой.
func calculateSmartMove(npc *domain.Actor, target domain.Vec2, grid domain.TileGrid, tileSize float64) domain.Vec2 {
	delta := target.Sub(npc.Center())
	direct := delta.Normalize()

	// Попытка 1: прямой путь
	if checkMove(npc, direct, grid, tileSize) {
		return direct
	}

	// Попытка 2: скольжение вдоль стены
	stepX := domain.Vec2{X: float64(signf(delta.X))}
	stepY := domain.Vec2{Y: float64(signf(delta.Y))}
	axes := [2]domain.Vec2{stepY, stepX}
	if math.Abs(delta.X) > math.Abs(delta.Y) {
		axes = [2]domain.Vec2{stepX, stepY}
	}
	for _, axis := range axes {
		if !axis.IsZero() && checkMove(npc, axis, grid, tileSize) {
			return axis
		}
	}

	return domain.Vec2{} // Тупик
}

// checkMove пробует тело на полклетки вперёд по направлению dir.
func checkMove(npc *domain.Actor, dir domain.Vec2, grid domain.TileGrid, tileSize float64) bool {
	if dir.IsZero() {
		return false
	}
	probe := npc.Center().Add(dir.Scale(tileSize / 2))
	return !domain.IsBoxBlocked(grid, probe, npc.Body.Half(), tileSize)
}

func signf(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
