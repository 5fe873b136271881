package actions

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
)

func HandleDash(ctx handlers.Context, dir domain.Vec2) (handlers.Result, error) {
	if !ctx.Actor.Dash(dir.X, dir.Y) {
		return handlers.Rejected("cannot dash"), nil
	}
	return handlers.Accepted(), nil
}

func HandleTeleport(ctx handlers.Context, dir domain.Vec2) (handlers.Result, error) {
	if !ctx.Actor.Teleport(dir.X, dir.Y) {
		return handlers.Rejected("cannot teleport"), nil
	}
	return handlers.Accepted(), nil
}

// HandleParry открывает окно парирования.
func HandleParry(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Actor.StartParry() {
		return handlers.Rejected("cannot parry"), nil
	}
	return handlers.Accepted(), nil
}
