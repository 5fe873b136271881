package systems

import (
	"math"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
)

// IsCandidate — можно ли бить цель атакой владельца ownerID из команды team.
// Владелец и его команда исключаются, мёртвые и неактивные тоже.
func IsCandidate(target *domain.Actor, ownerID types.EntityID, team string) bool {
	if target == nil || target.IsDead() || !target.Body.Active {
		return false
	}
	if target.ID == ownerID {
		return false
	}
	return team == "" || !target.Body.HasTag(team)
}

// NearestHostile ищет ближайшую цель для команды team в радиусе maxRange.
// maxRange <= 0 — без ограничения. При равенстве выигрывает первый в списке.
func NearestHostile(actors []*domain.Actor, from domain.Vec2, team string, ownerID types.EntityID, maxRange float64) *domain.Actor {
	var best *domain.Actor
	bestDist := math.Inf(1)
	for _, a := range actors {
		if !IsCandidate(a, ownerID, team) {
			continue
		}
		d := a.Center().DistanceTo(from)
		if maxRange > 0 && d > maxRange {
			continue
		}
		if d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}

// ValidationResult — результат проверки цели
type ValidationResult struct {
	Target  *domain.Actor
	Valid   bool
	Message string // Причина отказа, если Valid == false
}

// ValidateInteraction проверяет, может ли actor достать цель.
//
// Параметры:
// - rangeLimit: максимальная дистанция между центрами.
// - needLOS: нужна ли прямая видимость (для дальних атак).
func ValidateInteraction(actor, target *domain.Actor, rangeLimit float64, needLOS bool, grid domain.TileGrid, tileSize float64) ValidationResult {
	// 1. Цель должна существовать и быть живой
	if target == nil || target.IsDead() {
		return ValidationResult{Valid: false, Message: "target not found"}
	}

	// 2. Дистанция
	dist := actor.Center().DistanceTo(target.Center())
	if dist > rangeLimit {
		return ValidationResult{Valid: false, Message: "target out of range"}
	}

	// 3. Видимость
	if needLOS && dist > 0 && !HasLineOfSight(grid, tileSize, actor.Center(), target.Center()) {
		return ValidationResult{Valid: false, Message: "target not visible"}
	}

	return ValidationResult{Target: target, Valid: true}
}
