package actions

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
)

// HandleAttack начинает базовую атаку в сторону точки и отдаёт её резолверу.
func HandleAttack(ctx handlers.Context, target domain.Vec2) (handlers.Result, error) {
	spec := ctx.Actor.Attack(target)
	if spec == nil {
		return handlers.Rejected("attack not ready"), nil
	}
	return spawn(ctx, *spec)
}

func spawn(ctx handlers.Context, spec domain.AttackSpec) (handlers.Result, error) {
	id, ok := ctx.Spawn(spec)
	if !ok {
		// Ресурсы уже списаны актёром: отказ резолвера - это аномалия данных, а не правило.
		return handlers.Result{Accepted: true, Msg: "attack dropped by resolver"}, nil
	}
	return handlers.Result{Accepted: true, Spawned: id}, nil
}
