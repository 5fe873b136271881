package actions

import (
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine/handlers"
)

// HandleMove задаёт направление разгона на кадр. Нулевое направление - остановка.
func HandleMove(ctx handlers.Context, dir domain.Vec2) (handlers.Result, error) {
	if ctx.Actor.Move(dir) || dir.IsZero() {
		return handlers.Accepted(), nil
	}
	return handlers.Rejected("cannot move"), nil
}
